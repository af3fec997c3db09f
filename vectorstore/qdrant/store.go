// Package qdrant implements vectorstore.Store on the Qdrant vector
// database over gRPC. Points are keyed by a deterministic UUID derived
// from the document identity, the original identity travels in the
// payload, and metadata filters become Filter.Must match conditions
// evaluated server-side before ranking.
package qdrant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/vectorstore"
)

const backendName = "qdrant"

// DefaultCollection is the collection used when none is configured.
const DefaultCollection = "documents"

// DefaultPort is Qdrant's standard gRPC port.
const DefaultPort = 6334

// Config holds connection parameters for the Qdrant backend.
type Config struct {
	// Host is the Qdrant server hostname or IP.
	Host string

	// Port is the gRPC port. Defaults to DefaultPort.
	Port int

	// Collection is the point collection name. Defaults to DefaultCollection.
	Collection string
}

// Store implements vectorstore.Store backed by Qdrant.
type Store struct {
	conn       *grpc.ClientConn
	points     pb.PointsClient
	collection string
	embedder   ai.Embedder
	params     vectorstore.Params
	logger     *slog.Logger
}

var _ vectorstore.Store = (*Store)(nil)

// New creates a Qdrant-backed store.
//
// The gRPC client connects lazily on first RPC, so construction performs
// no network I/O. Missing connection parameters are rejected here, before
// any dial can happen.
//
// Returns vectorstore.Store interface to enforce abstraction.
func New(cfg *Config, embedder ai.Embedder, params vectorstore.Params) (vectorstore.Store, error) {
	if cfg == nil {
		return nil, vectorstore.ErrConfigRequired
	}
	if embedder == nil {
		return nil, vectorstore.ErrEmbedderRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: QDRANT_HOST is not set", vectorstore.ErrMissingCredentials)
	}
	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}
	collection := cfg.Collection
	if collection == "" {
		collection = DefaultCollection
	}

	conn, err := grpc.NewClient(
		fmt.Sprintf("%s:%d", cfg.Host, port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, vectorstore.NewBackendError(backendName, "connect", err)
	}

	return &Store{
		conn:       conn,
		points:     pb.NewPointsClient(conn),
		collection: collection,
		embedder:   embedder,
		params:     params,
		logger:     slog.Default().With("component", "qdrant-store"),
	}, nil
}

// AddDocuments embeds and upserts the documents keyed by identity.
// Qdrant only accepts integer or UUID point IDs, so each point gets a
// UUID derived deterministically from the document identity; re-adding
// an identity therefore lands on the same point.
func (s *Store) AddDocuments(ctx context.Context, docs []core.Document) error {
	if len(docs) == 0 {
		return nil
	}

	normalized := make([]core.Document, len(docs))
	texts := make([]string, len(docs))
	for i, doc := range docs {
		norm := doc.Normalize()
		if err := core.ValidateDocument(&norm); err != nil {
			return err
		}
		normalized[i] = norm
		texts[i] = norm.Content
	}

	vectors, err := s.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return vectorstore.NewBackendError(backendName, "embed", err)
	}
	if len(vectors) != len(normalized) {
		return vectorstore.NewBackendError(backendName, "embed",
			fmt.Errorf("embedder returned %d vectors for %d documents", len(vectors), len(normalized)))
	}

	points := make([]*pb.PointStruct, len(normalized))
	for i, doc := range normalized {
		points[i] = &pb.PointStruct{
			Id: &pb.PointId{
				PointIdOptions: &pb.PointId_Uuid{Uuid: pointID(doc.ID)},
			},
			Vectors: &pb.Vectors{
				VectorsOptions: &pb.Vectors_Vector{
					Vector: &pb.Vector{Data: vectors[i]},
				},
			},
			Payload: documentPayload(doc),
		}
	}

	wait := true
	_, err = s.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: s.collection,
		Wait:           &wait,
		Points:         points,
	})
	if err != nil {
		return vectorstore.NewBackendError(backendName, "upsert", err)
	}

	s.logger.Debug("points upserted", "count", len(points), "collection", s.collection)
	return nil
}

// Retrieve embeds the query and searches the collection. The metadata
// filter travels inside the search request as must-match conditions, so
// Qdrant narrows candidates before ranking.
func (s *Store) Retrieve(ctx context.Context, query string) ([]core.Match, error) {
	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, vectorstore.NewBackendError(backendName, "embed", err)
	}

	resp, err := s.points.Search(ctx, &pb.SearchPoints{
		CollectionName: s.collection,
		Vector:         vector,
		Limit:          uint64(s.params.Limit),
		Filter:         buildFilter(s.params.Filter),
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, vectorstore.NewBackendError(backendName, "retrieve", err)
	}

	matches := make([]core.Match, 0, len(resp.GetResult()))
	for _, point := range resp.GetResult() {
		matches = append(matches, core.Match{
			Document: documentFromPayload(point.GetPayload()),
			Score:    vectorstore.ClampScore(point.GetScore()),
		})
	}

	s.logger.Debug("retrieval complete", "matches", len(matches), "limit", s.params.Limit)
	return matches, nil
}

// Close releases the gRPC connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// pointID derives the stable UUID for a document identity.
func pointID(id string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(id)).String()
}
