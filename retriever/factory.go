// Package retriever constructs the configured vector store backend.
//
// The factory is a pure switch over the provider key. It owns no
// connection knowledge of its own; each adapter constructor alone knows
// its backend's connection shape. Adding a backend means one new case
// and one new adapter package.
package retriever

import (
	"fmt"

	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/config"
	"github.com/poiesic/indexit/vectorstore"
	"github.com/poiesic/indexit/vectorstore/pgvector"
	"github.com/poiesic/indexit/vectorstore/qdrant"
	"github.com/poiesic/indexit/vectorstore/sqlite"
)

// New constructs the vector store for the configured provider.
//
// The provider key is checked before anything else, so an unset or
// unknown provider never causes a connection attempt. The adapter
// constructors validate their own connection parameters and connect
// lazily, which keeps this function free of network I/O.
func New(cfg *config.Config, embedder ai.Embedder) (vectorstore.Store, error) {
	if cfg == nil {
		return nil, vectorstore.ErrConfigRequired
	}

	params := vectorstore.Params{
		Limit:  cfg.DocumentCount,
		Filter: cfg.Filter,
	}

	switch cfg.Provider {
	case "":
		return nil, vectorstore.ErrProviderRequired
	case config.ProviderPgvector:
		return pgvector.New(&pgvector.Config{
			URL:   cfg.Pgvector.URL,
			Table: cfg.Pgvector.Table,
		}, embedder, params)
	case config.ProviderQdrant:
		return qdrant.New(&qdrant.Config{
			Host:       cfg.Qdrant.Host,
			Port:       cfg.Qdrant.Port,
			Collection: cfg.Qdrant.Collection,
		}, embedder, params)
	case config.ProviderSQLite:
		return sqlite.New(&sqlite.Config{
			Path:  cfg.SQLite.Path,
			Table: cfg.SQLite.Table,
		}, embedder, params)
	default:
		return nil, fmt.Errorf("%w: %q", vectorstore.ErrUnknownProvider, cfg.Provider)
	}
}
