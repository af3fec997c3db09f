package qdrant

import (
	"context"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/vectorstore"
)

// EnsureCollection provisions the point collection with cosine vector
// params and a keyword payload index over the namespace. The collection
// listing is the existence probe; creation losing a race to another
// provisioner is tolerated via the AlreadyExists status. Nothing is ever
// dropped or mutated.
func EnsureCollection(ctx context.Context, conn *grpc.ClientConn, collection string, dimensions int) error {
	if collection == "" {
		collection = DefaultCollection
	}
	if dimensions < 1 {
		return fmt.Errorf("%w: embedding dimensions must be at least 1", vectorstore.ErrConfigRequired)
	}

	collections := pb.NewCollectionsClient(conn)

	listResp, err := collections.List(ctx, &pb.ListCollectionsRequest{})
	if err != nil {
		return vectorstore.NewBackendError(backendName, "probe", err)
	}

	exists := false
	for _, col := range listResp.GetCollections() {
		if col.GetName() == collection {
			exists = true
			break
		}
	}

	if !exists {
		_, err := collections.Create(ctx, &pb.CreateCollection{
			CollectionName: collection,
			VectorsConfig: &pb.VectorsConfig{
				Config: &pb.VectorsConfig_Params{
					Params: &pb.VectorParams{
						Size:     uint64(dimensions),
						Distance: pb.Distance_Cosine,
					},
				},
			},
		})
		if err != nil && status.Code(err) != codes.AlreadyExists {
			return vectorstore.NewBackendError(backendName, "create_collection", err)
		}
	}

	// Index the namespace payload field used by metadata filters.
	points := pb.NewPointsClient(conn)
	_, err = points.CreateFieldIndex(ctx, &pb.CreateFieldIndexCollection{
		CollectionName: collection,
		FieldName:      payloadMetadata + "." + core.MetadataNamespaceKey,
		FieldType:      pb.FieldType_FieldTypeKeyword.Enum(),
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return vectorstore.NewBackendError(backendName, "create_index", err)
	}

	return nil
}
