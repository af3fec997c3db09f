package retriever

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/indexit/ai/mock"
	"github.com/poiesic/indexit/config"
	"github.com/poiesic/indexit/vectorstore"
	"github.com/poiesic/indexit/vectorstore/pgvector"
	"github.com/poiesic/indexit/vectorstore/qdrant"
	"github.com/poiesic/indexit/vectorstore/sqlite"
)

// baseConfig returns a config with every backend's connection parameters
// populated, so dispatch tests only vary the provider.
func baseConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DocumentCount: 4,
		Pgvector: config.PgvectorConfig{
			URL:   "postgres://nobody@localhost:1/nowhere?sslmode=disable",
			Table: "documents",
		},
		Qdrant: config.QdrantConfig{
			Host:       "localhost",
			Port:       6334,
			Collection: "documents",
		},
		SQLite: config.SQLiteConfig{
			Path:  filepath.Join(t.TempDir(), "indexit.db"),
			Table: "documents",
		},
	}
}

func TestNew_ProviderDispatch(t *testing.T) {
	tests := []struct {
		provider config.Provider
		want     any
	}{
		{config.ProviderPgvector, &pgvector.Store{}},
		{config.ProviderQdrant, &qdrant.Store{}},
		{config.ProviderSQLite, &sqlite.Store{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			cfg := baseConfig(t)
			cfg.Provider = tt.provider

			store, err := New(cfg, mock.NewMockEmbedder())
			require.NoError(t, err)
			assert.IsType(t, tt.want, store)
			assert.NoError(t, store.Close())
		})
	}
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, vectorstore.ErrConfigRequired)
}

func TestNew_EmptyProvider(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Provider = ""

	_, err := New(cfg, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, vectorstore.ErrProviderRequired)
}

func TestNew_UnknownProvider(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Provider = "unknown-db"

	_, err := New(cfg, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, vectorstore.ErrUnknownProvider)
	assert.Contains(t, err.Error(), "unknown-db")
}

func TestNew_MissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		provider config.Provider
		strip    func(*config.Config)
	}{
		{"pgvector without URL", config.ProviderPgvector, func(c *config.Config) { c.Pgvector.URL = "" }},
		{"qdrant without host", config.ProviderQdrant, func(c *config.Config) { c.Qdrant.Host = "" }},
		{"sqlite without path", config.ProviderSQLite, func(c *config.Config) { c.SQLite.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(t)
			cfg.Provider = tt.provider
			tt.strip(cfg)

			_, err := New(cfg, mock.NewMockEmbedder())
			assert.ErrorIs(t, err, vectorstore.ErrMissingCredentials)
		})
	}
}

func TestNew_NilEmbedder(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Provider = config.ProviderSQLite

	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, vectorstore.ErrEmbedderRequired)
}
