package vectorstore

import (
	"context"
	"fmt"

	"github.com/poiesic/indexit/core"
)

// Store persists documents with their embeddings and retrieves them by
// semantic similarity. Implementations must be thread-safe for concurrent use.
type Store interface {
	// AddDocuments embeds and persists the given documents.
	// Documents are keyed by identity: adding a document whose ID already
	// exists replaces the stored content, metadata, and embedding.
	AddDocuments(ctx context.Context, docs []core.Document) error

	// Retrieve returns the stored documents most similar to the query.
	// Candidates are restricted to those matching the configured metadata
	// filter before ranking, ordered by descending relevance, and capped
	// at the configured result limit. Scores are normalized to [0, 1].
	Retrieve(ctx context.Context, query string) ([]core.Match, error)

	// Close releases the backend connection.
	Close() error
}

// Params holds the retrieval behavior shared by every backend.
type Params struct {
	// Limit is the maximum number of matches Retrieve returns.
	Limit int

	// Filter restricts retrieval to documents whose metadata contains
	// every listed key/value pair. A nil or empty filter matches all
	// documents.
	Filter map[string]any
}

// Validate checks that the parameters are usable.
func (p Params) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	return nil
}

// ClampScore normalizes a backend similarity score into [0, 1].
// Cosine scores can land slightly outside the unit interval due to
// floating point error in backend distance arithmetic.
func ClampScore(score float32) float32 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
