package component

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/animweave/animweave/internal/capability"
	"github.com/animweave/animweave/internal/logging"
	"github.com/animweave/animweave/internal/runtime"
	"github.com/animweave/animweave/internal/script"
)

// coreLoader is implemented by runtime modules that can load the core
// engine separately from plugin assets. The controller uses it to report
// the core-loading phase distinctly; a module without it is driven through
// Initialize alone.
type coreLoader interface {
	EnsureCore() error
}

// engineProvider exposes the engine so the component module can be bound
// to the shared global timeline.
type engineProvider interface {
	Engine() *runtime.Engine
}

// Controller orchestrates one component instance's animation lifecycle:
// load the shared runtime on first visibility, load resolved plugin
// assets, load the component's script module, run the ready hook, and
// unwind everything on disposal.
//
// Load failures never propagate to the embedding component; the component
// keeps rendering without animations. Disposal never fails.
type Controller struct {
	mu sync.Mutex

	comp any
	name string

	phase Phase
	err   error

	rt            runtime.Module
	runtimeLoaded bool

	module *script.State
	bridge *script.Bridge

	scriptDir  string
	modulePath string
	extraCaps  []capability.Capability
	logger     *logging.Logger

	visibleOnce sync.Once
	disposeOnce sync.Once
}

// Option configures a Controller.
type Option func(*Controller)

// WithRuntime sets the runtime module. Defaults to the shared runtime.
func WithRuntime(m runtime.Module) Option {
	return func(c *Controller) { c.rt = m }
}

// WithScriptDir sets the directory the module path convention resolves
// against.
func WithScriptDir(dir string) Option {
	return func(c *Controller) { c.scriptDir = dir }
}

// WithModulePath pins the script module path, bypassing the convention.
func WithModulePath(path string) Option {
	return func(c *Controller) { c.modulePath = path }
}

// WithCapabilities requests capabilities in addition to whatever the
// component or its manifest declares.
func WithCapabilities(caps ...capability.Capability) Option {
	return func(c *Controller) { c.extraCaps = append(c.extraCaps, caps...) }
}

// WithLogger sets the controller logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a controller for one component instance.
func New(comp any, opts ...Option) *Controller {
	c := &Controller{
		comp:      comp,
		phase:     PhaseUninitialized,
		scriptDir: DefaultScriptDir,
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.name = Name(comp)
	if c.rt == nil {
		c.rt = runtime.New()
	}
	if c.modulePath == "" {
		c.modulePath = ModulePath(c.scriptDir, comp)
	}
	c.logger = c.logger.WithComponent(c.name)
	return c
}

// ComponentName returns the name the controller derived for the component.
func (c *Controller) ComponentName() string {
	return c.name
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Err returns the error that moved the lifecycle to Failed, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// OnVisible runs the load-and-initialize sequence the first time the
// component becomes visible. Later calls are no-ops. Nothing is returned:
// failures are logged and contained, and the phase moves to Failed.
func (c *Controller) OnVisible(ctx context.Context) {
	c.visibleOnce.Do(func() {
		c.initialize(ctx)
	})
}

func (c *Controller) initialize(ctx context.Context) {
	assets := capability.Resolve(c.requestedCapabilities()...)

	c.setPhase(PhaseCoreLoading)
	if cl, ok := c.rt.(coreLoader); ok {
		if err := cl.EnsureCore(); err != nil {
			c.fail("loading core runtime", err)
			return
		}
	}

	c.setPhase(PhasePluginsLoading)
	if err := c.rt.Initialize(ctx, assets); err != nil {
		c.fail("initializing runtime", err)
		return
	}
	c.mu.Lock()
	c.runtimeLoaded = true
	c.mu.Unlock()

	c.setPhase(PhaseModuleLoading)
	st, err := c.loadModule()
	if err != nil {
		c.fail("loading component module", err)
		return
	}
	c.mu.Lock()
	c.module = st
	c.bridge = script.NewBridge(st.L)
	c.phase = PhaseReady
	c.mu.Unlock()

	// The hook runs with Ready already entered so it can call module
	// entry points. A failing hook still aborts to Failed.
	if init, ok := c.comp.(Initializer); ok {
		if err := init.AnimationsReady(ctx); err != nil {
			c.fail("ready hook", err)
			return
		}
	}

	c.logger.Debug("animations ready, module %s", c.modulePath)
}

// loadModule reads the component's script module and executes it in a
// fresh Lua state with the anim API bound to the shared global timeline.
func (c *Controller) loadModule() (*script.State, error) {
	data, err := os.ReadFile(c.modulePath)
	if err != nil {
		return nil, fmt.Errorf("reading module %s: %w", c.modulePath, err)
	}

	st := script.NewState()
	if ep, ok := c.rt.(engineProvider); ok {
		eng := ep.Engine()
		st.RegisterModule("anim", runtime.AnimModule(eng.Timeline()))
		// Plugin queries go through the engine; the module state has no
		// plugins of its own.
		st.SetGlobal("has_plugin", st.L.NewFunction(func(L *lua.LState) int {
			L.Push(lua.LBool(eng.HasPlugin(L.CheckString(1))))
			return 1
		}))
	}

	if err := st.DoNamed(filepath.Base(c.modulePath), string(data)); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

// requestedCapabilities merges the component's declared capabilities, the
// optional JSON sidecar manifest, and any extras passed as options.
// Duplicates and unknowns are the resolver's problem.
func (c *Controller) requestedCapabilities() []capability.Capability {
	var caps []capability.Capability
	if cr, ok := c.comp.(CapabilityRequester); ok {
		caps = append(caps, cr.Capabilities()...)
	}
	caps = append(caps, manifestCapabilities(c.modulePath, c.logger)...)
	caps = append(caps, c.extraCaps...)
	return caps
}

// Call invokes a named entry point on the loaded component module.
func (c *Controller) Call(fn string, args ...any) ([]any, error) {
	c.mu.Lock()
	st, br, phase := c.module, c.bridge, c.phase
	c.mu.Unlock()

	if phase != PhaseReady || st == nil {
		return nil, ErrNotReady
	}

	luaArgs := make([]lua.LValue, len(args))
	for i, arg := range args {
		luaArgs[i] = br.ToLua(arg)
	}

	results, err := st.Call(fn, luaArgs...)
	if err != nil {
		return nil, err
	}

	out := make([]any, len(results))
	for i, r := range results {
		out[i] = br.ToGo(r)
	}
	return out, nil
}

// HasEntryPoint reports whether the loaded module defines the named
// function.
func (c *Controller) HasEntryPoint(fn string) bool {
	c.mu.Lock()
	st := c.module
	c.mu.Unlock()

	return st != nil && st.HasFunction(fn)
}

// Dispose unwinds the lifecycle: kill everything on the shared global
// timeline if the runtime was loaded, then release the component module.
// Each step runs independently and best-effort; teardown-time failures
// are swallowed. Dispose never returns an error, never panics, and is a
// no-op after the first call.
func (c *Controller) Dispose() {
	c.disposeOnce.Do(func() {
		c.mu.Lock()
		c.phase = PhaseDisposing
		loaded := c.runtimeLoaded
		c.runtimeLoaded = false
		mod := c.module
		c.module = nil
		c.bridge = nil
		c.mu.Unlock()

		if loaded {
			c.suppressed("runtime cleanup", func() {
				c.rt.CleanupAll()
			})
		}
		if mod != nil {
			c.suppressed("module release", func() {
				_ = mod.Close()
			})
		}

		c.mu.Lock()
		c.phase = PhaseDisposed
		c.mu.Unlock()
	})
}

// suppressed runs a teardown step, swallowing panics. Teardown races with
// host shutdown are expected and must not stop the remaining releases.
func (c *Controller) suppressed(step string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug("suppressed %s failure during dispose: %v", step, r)
		}
	}()
	fn()
}

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

func (c *Controller) fail(step string, err error) {
	c.mu.Lock()
	c.err = fmt.Errorf("%s: %w", step, err)
	c.phase = PhaseFailed
	c.mu.Unlock()

	c.logger.Error("animation setup aborted: %s: %v", step, err)
}
