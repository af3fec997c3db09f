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


package ingestion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/poiesic/indexit/ai"
	"github.com/poiesic/indexit/config"
	"github.com/poiesic/indexit/core"
	"github.com/poiesic/indexit/retriever"
	"github.com/poiesic/indexit/vectorstore"
)

// State carries the documents flowing through a pipeline invocation.
// After a successful ingest the returned state holds the clear sentinel.
type State struct {
	Documents []core.Document
}

// StoreFactory constructs the vector store handle for one invocation.
type StoreFactory func(cfg *config.Config, embedder ai.Embedder) (vectorstore.Store, error)

// Pipeline loads documents into the configured vector store.
type Pipeline struct {
	embedder ai.Embedder
	factory  StoreFactory
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithStoreFactory overrides how the persist stage obtains its backend.
// Default is retriever.New. Tests use this to inject failing stores.
func WithStoreFactory(factory StoreFactory) Option {
	return func(p *Pipeline) error {
		if factory == nil {
			factory = retriever.New
		}
		p.factory = factory
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	p := &Pipeline{
		embedder: embedder,
		factory:  retriever.New,
		logger:   slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Ingest runs one pipeline invocation: load documents, persist them,
// and return the cleared state.
//
// The load stage takes the state's documents when present, falls back to
// the sample corpus when cfg.UseSampleDocs is set, and fails with
// ErrNoDocuments otherwise. The persist stage opens the configured
// backend, upserts the documents keyed by identity, and closes it. On
// any failure the input state is returned unchanged so the caller can
// re-invoke.
func (p *Pipeline) Ingest(ctx context.Context, state State, cfg *config.Config) (State, error) {
	if cfg == nil {
		return state, ErrConfigRequired
	}

	logger := p.logger.With("run_id", uuid.NewString())

	// Load stage.
	var docs []core.Document
	switch {
	case len(state.Documents) > 0 && !core.IsClear(state.Documents):
		docs = core.Reduce(nil, state.Documents)
		logger.Debug("loaded documents from state", "count", len(docs))
	case cfg.UseSampleDocs:
		loaded, err := LoadSampleDocuments(cfg.DocsFile)
		if err != nil {
			return state, err
		}
		docs = core.Reduce(nil, loaded)
		logger.Debug("loaded sample documents", "count", len(docs), "file", cfg.DocsFile)
	default:
		return state, ErrNoDocuments
	}
	if len(docs) == 0 {
		return state, ErrNoDocuments
	}

	// Persist stage.
	store, err := p.factory(cfg, p.embedder)
	if err != nil {
		return state, err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("failed to close store", "err", cerr)
		}
	}()

	if err := store.AddDocuments(ctx, docs); err != nil {
		return state, err
	}

	logger.Info("ingest complete", "documents", len(docs), "provider", cfg.Provider)
	return State{Documents: core.Clear()}, nil
}
