package runtime

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/animweave/animweave/internal/script"
)

// coreScript is the embedded animation engine. It is the "underlying
// library" every component shares; injecting it is a process-wide,
// at-most-once side effect.
//
//go:embed engine.lua
var coreScript string

// coreGuard is the global the core script sets once injected. The script
// checks it too, so even a re-entrant injection is harmless.
const coreGuard = "__animweave_core"

// Engine is the shared animation runtime: one Lua state holding the core
// script and every loaded plugin asset, plus the global timeline.
type Engine struct {
	state    *script.State
	timeline *Timeline

	bootOnce sync.Once
	bootErr  error

	mu    sync.Mutex
	loads map[string]*assetLoad
}

// assetLoad memoizes one plugin asset injection. Concurrent requests for
// the same asset wait on the same load instead of racing a check-then-act
// on a flag.
type assetLoad struct {
	done chan struct{}
	err  error
}

var (
	sharedOnce sync.Once
	shared     *Engine
)

// Shared returns the process-wide engine, creating it on first use.
func Shared() *Engine {
	sharedOnce.Do(func() {
		shared = NewEngine()
	})
	return shared
}

// NewEngine creates an engine with its own Lua state and timeline. The
// process normally uses Shared; separate engines exist for tests.
func NewEngine() *Engine {
	e := &Engine{
		state:    script.NewState(),
		timeline: NewTimeline(),
		loads:    make(map[string]*assetLoad),
	}
	e.state.RegisterModule("anim", AnimModule(e.timeline))
	return e
}

// Timeline returns the engine's global timeline.
func (e *Engine) Timeline() *Timeline {
	return e.timeline
}

// State returns the engine's Lua state.
func (e *Engine) State() *script.State {
	return e.state
}

// EnsureCore injects the core script if it is not present. The injection
// happens at most once per engine; concurrent callers all observe the
// outcome of the single attempt.
func (e *Engine) EnsureCore() error {
	e.bootOnce.Do(func() {
		if e.state.GetGlobal(coreGuard) != lua.LNil {
			return // already present, injected out of band
		}
		if err := e.state.DoNamed("engine.lua", coreScript); err != nil {
			e.bootErr = fmt.Errorf("injecting core runtime: %w", err)
		}
	})
	return e.bootErr
}

// LoadAsset injects a plugin asset into the engine state, at most once per
// asset name. A second request for an in-flight asset waits for the first
// load; the outcome (success or failure) is memoized.
func (e *Engine) LoadAsset(ctx context.Context, src AssetSource, name string) error {
	e.mu.Lock()
	if al, ok := e.loads[name]; ok {
		e.mu.Unlock()
		select {
		case <-al.done:
			return al.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	al := &assetLoad{done: make(chan struct{})}
	e.loads[name] = al
	e.mu.Unlock()

	defer close(al.done)

	data, err := src.Open(name)
	if err != nil {
		al.err = err
		return al.err
	}
	if err := e.state.DoNamed(name, string(data)); err != nil {
		al.err = fmt.Errorf("loading asset %s: %w", name, err)
	}
	return al.err
}

// HasPlugin reports whether a loaded asset registered the named plugin.
// False until the core is injected.
func (e *Engine) HasPlugin(name string) bool {
	results, err := e.state.Call("has_plugin", lua.LString(name))
	if err != nil || len(results) == 0 {
		return false
	}
	return results[0] == lua.LTrue
}

// AssetLoaded reports whether the named asset finished loading
// successfully.
func (e *Engine) AssetLoaded(name string) bool {
	e.mu.Lock()
	al, ok := e.loads[name]
	e.mu.Unlock()

	if !ok {
		return false
	}
	select {
	case <-al.done:
		return al.err == nil
	default:
		return false
	}
}

// AnimModule builds the Lua-facing animation API bound to a timeline.
// Plugin assets and component modules create and destroy animations
// through these functions.
func AnimModule(tl *Timeline) map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"tween": func(L *lua.LState) int {
			target := L.CheckString(1)
			duration := float64(L.CheckNumber(2))
			id := tl.Add(&Tween{Target: target, Duration: duration})
			L.Push(lua.LNumber(id))
			return 1
		},
		"kill": func(L *lua.LState) int {
			L.Push(lua.LBool(tl.Kill(L.CheckInt(1))))
			return 1
		},
		"killAll": func(L *lua.LState) int {
			L.Push(lua.LNumber(tl.KillAll()))
			return 1
		},
		"active": func(L *lua.LState) int {
			L.Push(lua.LNumber(tl.Active()))
			return 1
		},
		"progress": func(L *lua.LState) int {
			p, ok := tl.Progress(L.CheckInt(1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(lua.LNumber(p))
			return 1
		},
	}
}
