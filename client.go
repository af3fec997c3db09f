// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package indexit

import (
	"context"
	"log/slog"

	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/ai/openai"
	"github.com/poiesic/indexit/config"
	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/ingestion"
	"github.com/poiesic/indexit/provision"
	"github.com/poiesic/indexit/retriever"
	"github.com/poiesic/indexit/vectorstore"
)

// Client bundles the indexing operations behind a single handle: ingest
// documents into the configured backend, search them, and provision
// backend schemas. Store handles are opened and closed per operation, so
// a Client is cheap to hold for the life of the process.
type Client struct {
	cfg      *config.Config
	embedder ai.Embedder
	pipeline *ingestion.Pipeline
	logger   *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	embedder ai.Embedder
}

// WithEmbedder substitutes the embedder built from the configuration's
// embedding settings.
func WithEmbedder(embedder ai.Embedder) ClientOption {
	return func(o *clientOptions) {
		o.embedder = embedder
	}
}

func NewClient(cfg *config.Config, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		return nil, vectorstore.ErrConfigRequired
	}

	// Apply options
	options := &clientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	embedder := options.embedder
	if embedder == nil {
		aiConfig := ai.NewConfig(
			ai.WithHost(cfg.Embedding.Host),
			ai.WithModel(cfg.Embedding.Model),
			ai.WithAPIKey(cfg.Embedding.APIKey),
			ai.WithDimensions(cfg.Embedding.Dimensions),
		)

		var err error
		embedder, err = openai.NewEmbedder(aiConfig)
		if err != nil {
			return nil, err
		}
	}

	pipeline, err := ingestion.NewPipeline(embedder)
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:      cfg,
		embedder: embedder,
		pipeline: pipeline,
		logger:   slog.Default(),
	}, nil
}

// Ingest embeds and persists documents into the configured backend,
// upserting by identity. Called without documents it falls back to the
// configured sample sources (UseSampleDocs, DocsFile).
func (c *Client) Ingest(ctx context.Context, docs ...core.Document) error {
	state := ingestion.State{Documents: docs}
	_, err := c.pipeline.Ingest(ctx, state, c.cfg)
	return err
}

// Search embeds the query and returns the closest documents, at most
// DocumentCount of them, scored in [0,1] and filtered by the configured
// metadata predicate.
func (c *Client) Search(ctx context.Context, query string) ([]core.Match, error) {
	store, err := retriever.New(c.cfg, c.embedder)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			c.logger.Error("error closing store", "err", cerr)
		}
	}()

	return store.Retrieve(ctx, query)
}

// Provision creates the schema objects for every backend the
// configuration carries connection parameters for. Safe to re-run.
func (c *Client) Provision(ctx context.Context) (provision.Report, error) {
	return provision.Run(ctx, c.cfg)
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return nil
}
