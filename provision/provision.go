package provision

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/indexit/config"
)

// Result is the provisioning outcome for a single backend.
// Err is nil on success; "already provisioned" is success.
type Result struct {
	Provider config.Provider
	Err      error
}

// Report collects per-backend results, ordered by provider key.
type Report []Result

// Failed returns the results that carry an error.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// provisioner holds the knobs Run accepts through options.
type provisioner struct {
	logger   *slog.Logger
	poolSize int
}

// Option configures a provisioning run.
type Option func(*provisioner) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *provisioner) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent provisioning.
// Default is one worker per configured backend.
func WithPoolSize(size int) Option {
	return func(p *provisioner) error {
		if size < 1 {
			size = 1
		}
		p.poolSize = size
		return nil
	}
}

// target pairs a provider key with its provisioning routine.
type target struct {
	provider config.Provider
	run      func(ctx context.Context) error
}

// Run provisions every backend cfg carries connection parameters for.
//
// Backends are provisioned concurrently on a worker pool and in
// isolation: one failure never blocks the others. The returned Report
// holds one Result per configured backend, sorted by provider key. The
// error is non-nil iff at least one backend failed, wrapping
// ErrProvisioningFailed; inspect the Report for per-backend causes.
// With no backend configured, Run returns an empty report and nil.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (Report, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	p := &provisioner{
		logger: slog.Default().With("component", "provision"),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	targets := assembleTargets(cfg)
	if len(targets) == 0 {
		p.logger.Info("no backends configured, nothing to provision")
		return Report{}, nil
	}

	poolSize := p.poolSize
	if poolSize < 1 {
		poolSize = len(targets)
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report = make(Report, 0, len(targets))
	)

	record := func(provider config.Provider, err error) {
		mu.Lock()
		report = append(report, Result{Provider: provider, Err: err})
		mu.Unlock()
	}

	for _, t := range targets {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			p.logger.Debug("provisioning backend", "provider", t.provider)
			err := t.run(ctx)
			if err != nil {
				p.logger.Error("provisioning backend failed", "provider", t.provider, "err", err)
			} else {
				p.logger.Info("backend provisioned", "provider", t.provider)
			}
			record(t.provider, err)
		})
		if submitErr != nil {
			wg.Done()
			record(t.provider, submitErr)
		}
	}
	wg.Wait()

	sort.Slice(report, func(i, j int) bool {
		return report[i].Provider < report[j].Provider
	})

	if failed := report.Failed(); len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for _, res := range failed {
			names = append(names, string(res.Provider))
		}
		return report, fmt.Errorf("%w: %s", ErrProvisioningFailed, strings.Join(names, ", "))
	}
	return report, nil
}

// assembleTargets maps the configured connection parameters to
// provisioning routines. A backend with no connection parameters set is
// not a target.
func assembleTargets(cfg *config.Config) []target {
	var targets []target
	if cfg.Pgvector.URL != "" {
		targets = append(targets, target{
			provider: config.ProviderPgvector,
			run: func(ctx context.Context) error {
				return provisionPgvector(ctx, cfg.Pgvector, cfg.Embedding.Dimensions)
			},
		})
	}
	if cfg.Qdrant.Host != "" {
		targets = append(targets, target{
			provider: config.ProviderQdrant,
			run: func(ctx context.Context) error {
				return provisionQdrant(ctx, cfg.Qdrant, cfg.Embedding.Dimensions)
			},
		})
	}
	if cfg.SQLite.Path != "" {
		targets = append(targets, target{
			provider: config.ProviderSQLite,
			run: func(ctx context.Context) error {
				return provisionSQLite(ctx, cfg.SQLite)
			},
		})
	}
	return targets
}
