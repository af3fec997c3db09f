package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	assert.Equal(t, "embeddinggemma", cfg.Model)
	assert.Equal(t, "none", cfg.APIKey)
	assert.Equal(t, 768, cfg.Dimensions)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
		assert.Equal(t, "embeddinggemma", cfg.Model)
		assert.Equal(t, 768, cfg.Dimensions)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.Host)
	})

	t.Run("with custom model", func(t *testing.T) {
		cfg := NewConfig(WithModel("text-embedding-3-small"))

		assert.Equal(t, "text-embedding-3-small", cfg.Model)
	})

	t.Run("with custom api key", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("sk-test"))

		assert.Equal(t, "sk-test", cfg.APIKey)
	})

	t.Run("with custom dimensions", func(t *testing.T) {
		cfg := NewConfig(WithDimensions(1536))

		assert.Equal(t, 1536, cfg.Dimensions)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("http://custom:8080/v1"),
			WithModel("custom-embed"),
			WithAPIKey("sk-custom"),
			WithDimensions(1024),
		)

		assert.Equal(t, "http://custom:8080/v1", cfg.Host)
		assert.Equal(t, "custom-embed", cfg.Model)
		assert.Equal(t, "sk-custom", cfg.APIKey)
		assert.Equal(t, 1024, cfg.Dimensions)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{
			name:     "already has /v1",
			host:     "http://localhost:11434/v1",
			expected: "http://localhost:11434/v1",
		},
		{
			name:     "missing /v1",
			host:     "http://localhost:11434",
			expected: "http://localhost:11434/v1",
		},
		{
			name:     "has trailing slash",
			host:     "http://localhost:11434/",
			expected: "http://localhost:11434/v1",
		},
		{
			name:     "empty host",
			host:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}

			cfg.Normalize()

			assert.Equal(t, tt.expected, cfg.Host)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &Config{
			Host:       "http://localhost:11434",
			Model:      "embeddinggemma",
			APIKey:     "none",
			Dimensions: 768,
		}

		err := cfg.Validate()
		assert.NoError(t, err)

		// Should also normalize
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := &Config{
			Model:      "embeddinggemma",
			APIKey:     "none",
			Dimensions: 768,
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Host")
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := &Config{
			Host:       "http://localhost:11434/v1",
			APIKey:     "none",
			Dimensions: 768,
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Model")
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := &Config{
			Host:       "http://localhost:11434/v1",
			Model:      "embeddinggemma",
			Dimensions: 768,
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "APIKey")
	})

	t.Run("dimensions too low", func(t *testing.T) {
		cfg := &Config{
			Host:       "http://localhost:11434/v1",
			Model:      "embeddinggemma",
			APIKey:     "none",
			Dimensions: 0,
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Dimensions")
	})

	t.Run("dimensions at lower boundary", func(t *testing.T) {
		cfg := &Config{
			Host:       "http://localhost:11434/v1",
			Model:      "embeddinggemma",
			APIKey:     "none",
			Dimensions: 1,
		}

		err := cfg.Validate()
		assert.NoError(t, err)
	})
}

func TestConfigOptions(t *testing.T) {
	t.Run("WithHost", func(t *testing.T) {
		cfg := &Config{}
		opt := WithHost("http://test:8080/v1")
		opt(cfg)

		assert.Equal(t, "http://test:8080/v1", cfg.Host)
	})

	t.Run("WithModel", func(t *testing.T) {
		cfg := &Config{}
		opt := WithModel("test-model")
		opt(cfg)

		assert.Equal(t, "test-model", cfg.Model)
	})

	t.Run("WithAPIKey", func(t *testing.T) {
		cfg := &Config{}
		opt := WithAPIKey("sk-test")
		opt(cfg)

		assert.Equal(t, "sk-test", cfg.APIKey)
	})

	t.Run("WithDimensions", func(t *testing.T) {
		cfg := &Config{}
		opt := WithDimensions(512)
		opt(cfg)

		assert.Equal(t, 512, cfg.Dimensions)
	})
}

func TestConfigValidate_Integration(t *testing.T) {
	// Test that NewConfig produces a valid configuration
	cfg := NewConfig()
	err := cfg.Validate()
	require.NoError(t, err)

	// Test that DefaultConfig produces a valid configuration
	cfg = DefaultConfig()
	err = cfg.Validate()
	require.NoError(t, err)
}
