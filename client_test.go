package indexit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/indexit/ai/mock"
	"github.com/poiesic/indexit/config"
	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/ingestion"
	"github.com/poiesic/indexit/vectorstore"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Provider:      config.ProviderSQLite,
		DocumentCount: 5,
		Embedding: config.EmbeddingConfig{
			Host:       config.DefaultEmbeddingHost,
			Model:      config.DefaultEmbeddingModel,
			APIKey:     config.DefaultEmbeddingAPIKey,
			Dimensions: config.DefaultEmbeddingDimensions,
		},
		SQLite: config.SQLiteConfig{
			Path: filepath.Join(t.TempDir(), "client.db"),
		},
	}
}

func TestNewClient(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		client, err := NewClient(nil)
		assert.Nil(t, client)
		assert.ErrorIs(t, err, vectorstore.ErrConfigRequired)
	})

	t.Run("builds embedder from config", func(t *testing.T) {
		client, err := NewClient(sqliteConfig(t))
		require.NoError(t, err)
		require.NotNil(t, client)
		defer client.Close()

		assert.NotNil(t, client.embedder)
		assert.NotNil(t, client.pipeline)
		assert.NotNil(t, client.logger)
	})

	t.Run("rejects invalid embedding config", func(t *testing.T) {
		cfg := sqliteConfig(t)
		cfg.Embedding.Model = ""

		client, err := NewClient(cfg)
		assert.Nil(t, client)
		assert.Error(t, err)
	})

	t.Run("accepts injected embedder", func(t *testing.T) {
		cfg := sqliteConfig(t)
		cfg.Embedding = config.EmbeddingConfig{} // would fail without the override

		embedder := mock.NewMockEmbedder()
		client, err := NewClient(cfg, WithEmbedder(embedder))
		require.NoError(t, err)
		defer client.Close()

		assert.Equal(t, embedder, client.embedder)
	})
}

func TestClient_IngestAndSearch(t *testing.T) {
	cfg := sqliteConfig(t)
	client, err := NewClient(cfg, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	err = client.Ingest(ctx,
		core.Document{ID: "doc-1", Content: "the lighthouse keeper trimmed the wick at dusk"},
		core.Document{ID: "doc-2", Content: "container orchestration schedules workloads across nodes"},
		core.Document{ID: "doc-3", Content: "sourdough starters need regular feeding"},
	)
	require.NoError(t, err)

	matches, err := client.Search(ctx, "the lighthouse keeper trimmed the wick at dusk")
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.LessOrEqual(t, len(matches), cfg.DocumentCount)

	// Identical text embeds identically, so doc-1 ranks first.
	assert.Equal(t, "doc-1", matches[0].Document.ID)
	assert.InDelta(t, 1.0, float64(matches[0].Score), 1e-5)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestClient_Ingest_NoDocuments(t *testing.T) {
	client, err := NewClient(sqliteConfig(t), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer client.Close()

	err = client.Ingest(context.Background())
	assert.ErrorIs(t, err, ingestion.ErrNoDocuments)
}

func TestClient_Ingest_SampleCorpus(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.UseSampleDocs = true
	cfg.DocumentCount = 50

	client, err := NewClient(cfg, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Ingest(ctx))

	matches, err := client.Search(ctx, "landmarks")
	require.NoError(t, err)
	assert.NotEmpty(t, matches)
}

func TestClient_Search_EmptyStore(t *testing.T) {
	client, err := NewClient(sqliteConfig(t), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer client.Close()

	matches, err := client.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestClient_Provision(t *testing.T) {
	client, err := NewClient(sqliteConfig(t), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer client.Close()

	report, err := client.Provision(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, config.ProviderSQLite, report[0].Provider)
	assert.NoError(t, report[0].Err)
}
