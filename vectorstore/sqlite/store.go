// Package sqlite implements vectorstore.Store on an embedded SQLite
// database via the pure-Go modernc.org driver. SQLite has no server-side
// vector search, so retrieval decodes the stored embeddings and ranks the
// filtered candidates in-process with cosine similarity.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/vectorstore"
)

const backendName = "sqlite"

// DefaultTable is the document table used when none is configured.
const DefaultTable = "documents"

// Config holds connection parameters for the SQLite backend.
type Config struct {
	// Path is the database file path, or ":memory:" for an in-memory store.
	Path string

	// Table is the document table name. Defaults to DefaultTable.
	Table string
}

// Store implements vectorstore.Store backed by an embedded SQLite file.
type Store struct {
	db       *sql.DB
	table    string
	embedder ai.Embedder
	params   vectorstore.Params
	logger   *slog.Logger
}

var _ vectorstore.Store = (*Store)(nil)

// New creates a SQLite-backed store and bootstraps its schema, the same
// way the collection-style backends are provisioned before use. A single
// connection is kept because the driver serializes writers anyway.
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
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: SQLITE_PATH is not set", vectorstore.ErrMissingCredentials)
	}
	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, vectorstore.NewBackendError(backendName, "open", err)
	}
	db.SetMaxOpenConns(1)

	if err := EnsureSchema(context.Background(), db, table); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:       db,
		table:    table,
		embedder: embedder,
		params:   params,
		logger:   slog.Default().With("component", "sqlite-store"),
	}, nil
}

// AddDocuments embeds and upserts the documents keyed by identity.
// Re-adding an existing identity replaces the stored row.
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

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return vectorstore.NewBackendError(backendName, "begin", err)
	}
	defer tx.Rollback()

	upsert := fmt.Sprintf(`INSERT INTO %s (id, content, metadata, embedding)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET content = excluded.content,
		    metadata = excluded.metadata,
		    embedding = excluded.embedding`, s.table)

	for i, doc := range normalized {
		metadata, err := marshalMetadata(doc.Metadata)
		if err != nil {
			return vectorstore.NewBackendError(backendName, "encode_metadata", err)
		}
		if _, err := tx.ExecContext(ctx, upsert, doc.ID, doc.Content, metadata, EncodeEmbedding(vectors[i])); err != nil {
			return vectorstore.NewBackendError(backendName, "upsert", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return vectorstore.NewBackendError(backendName, "commit", err)
	}

	s.logger.Debug("documents upserted", "count", len(normalized), "table", s.table)
	return nil
}

// Retrieve embeds the query, filters candidates by metadata, and ranks
// them in-process by cosine similarity against the stored embeddings.
func (s *Store) Retrieve(ctx context.Context, query string) ([]core.Match, error) {
	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, vectorstore.NewBackendError(backendName, "embed", err)
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT id, content, metadata, embedding FROM %s", s.table))
	if err != nil {
		return nil, vectorstore.NewBackendError(backendName, "retrieve", err)
	}
	defer rows.Close()

	var matches []core.Match
	for rows.Next() {
		var (
			doc          core.Document
			metadataText string
			blob         []byte
		)
		if err := rows.Scan(&doc.ID, &doc.Content, &metadataText, &blob); err != nil {
			return nil, vectorstore.NewBackendError(backendName, "scan", err)
		}
		if metadataText != "" && metadataText != "{}" {
			if err := json.Unmarshal([]byte(metadataText), &doc.Metadata); err != nil {
				return nil, vectorstore.NewBackendError(backendName, "decode_metadata", err)
			}
		}

		if !matchesFilter(doc.Metadata, s.params.Filter) {
			continue
		}

		stored, err := DecodeEmbedding(blob)
		if err != nil {
			return nil, vectorstore.NewBackendError(backendName, "decode_embedding", err)
		}
		score, err := cosineSimilarity(vector, stored)
		if err != nil {
			return nil, vectorstore.NewBackendError(backendName, "score", err)
		}

		matches = append(matches, core.Match{
			Document: doc,
			Score:    vectorstore.ClampScore(score),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, vectorstore.NewBackendError(backendName, "retrieve", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > s.params.Limit {
		matches = matches[:s.params.Limit]
	}

	s.logger.Debug("retrieval complete", "matches", len(matches), "limit", s.params.Limit)
	return matches, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// marshalMetadata encodes metadata as JSON text, mapping an absent
// mapping to the empty object.
func marshalMetadata(metadata map[string]any) (string, error) {
	if len(metadata) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// matchesFilter reports whether metadata satisfies every filter entry.
// An empty filter matches everything.
func matchesFilter(metadata, filter map[string]any) bool {
	for key, want := range filter {
		got, ok := metadata[key]
		if !ok || !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

// valuesEqual compares scalars, treating all numeric types as float64 so
// JSON-decoded metadata matches filters built from Go integers.
func valuesEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, bok := toFloat(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
