package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEmbedding(t *testing.T) {
	tests := []struct {
		name   string
		vector []float32
	}{
		{"empty", []float32{}},
		{"single", []float32{0.5}},
		{"typical", []float32{0.1, -0.2, 0.3, 1.0, -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := EncodeEmbedding(tt.vector)
			require.Len(t, data, len(tt.vector)*4)

			decoded, err := DecodeEmbedding(data)
			require.NoError(t, err)
			assert.Equal(t, tt.vector, decoded)
		})
	}
}

func TestDecodeEmbedding_CorruptBlob(t *testing.T) {
	_, err := DecodeEmbedding([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrCorruptEmbedding)
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.3, 0.4, 0.5}
		score, err := cosineSimilarity(v, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, float64(score), 0.0001)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		score, err := cosineSimilarity([]float32{1, 0}, []float32{0, 1})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, float64(score), 0.0001)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		score, err := cosineSimilarity([]float32{1, 0}, []float32{-1, 0})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, float64(score), 0.0001)
	})

	t.Run("zero vector", func(t *testing.T) {
		score, err := cosineSimilarity([]float32{0, 0}, []float32{1, 1})
		require.NoError(t, err)
		assert.Equal(t, float32(0), score)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "schema.db"))
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, db, "documents"))
	require.NoError(t, EnsureSchema(ctx, db, "documents"))

	var name string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'documents'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "documents", name)
}
