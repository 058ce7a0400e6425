// Package runtime hosts the shared animation engine: a process-wide Lua
// state bootstrapped once, plugin assets loaded by resolved filename, and
// the global timeline of active animations.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/animweave/animweave/internal/logging"
)

// Module is the runtime interface the lifecycle controller consumes.
// Initialize is idempotent with respect to the core engine and returns
// only after every requested asset loaded or one failed. CleanupAll stops
// every animation on the shared global timeline.
type Module interface {
	Initialize(ctx context.Context, assets []string) error
	CleanupAll()
}

// Runtime is the default Module implementation, backed by the shared
// engine.
type Runtime struct {
	engine *Engine
	source AssetSource
	logger *logging.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithEngine uses a specific engine instead of the shared one.
func WithEngine(e *Engine) Option {
	return func(r *Runtime) { r.engine = e }
}

// WithSource sets where plugin assets are read from.
func WithSource(src AssetSource) Option {
	return func(r *Runtime) { r.source = src }
}

// WithLogger sets the runtime logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runtime) { r.logger = l }
}

// DefaultAssetDir is where plugin assets live unless configured otherwise.
const DefaultAssetDir = "assets"

// New creates a Runtime. Without options it binds the process-wide shared
// engine and reads assets from DefaultAssetDir.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		engine: Shared(),
		source: DirSource(DefaultAssetDir),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Engine returns the engine this runtime is bound to.
func (r *Runtime) Engine() *Engine {
	return r.engine
}

// Initialize makes sure the core engine is present, then loads the given
// plugin assets. Asset loads fan out concurrently; the call returns once
// all have finished, with failures joined into one error.
func (r *Runtime) Initialize(ctx context.Context, assets []string) error {
	if err := r.engine.EnsureCore(); err != nil {
		return fmt.Errorf("core runtime: %w", err)
	}

	if len(assets) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(assets))
	for i, name := range assets {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			errs[i] = r.engine.LoadAsset(ctx, r.source, name)
		}(i, name)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("plugin assets: %w", err)
	}

	r.logger.Debug("runtime ready, %d plugin assets loaded", len(assets))
	return nil
}

// CleanupAll kills every animation on the global timeline. This affects
// the whole process, not just one component; that blast radius is part of
// the contract.
func (r *Runtime) CleanupAll() {
	n := r.engine.Timeline().KillAll()
	if n > 0 {
		r.logger.Debug("cleanup killed %d active animations", n)
	}
}
