// Package component binds a UI component's render lifecycle to the shared
// animation runtime and a per-component script module.
package component

import (
	"context"
	"path/filepath"
	"reflect"

	"github.com/animweave/animweave/internal/capability"
)

// CapabilityRequester is implemented by components that need optional
// animation features. Components without it get the core runtime only.
type CapabilityRequester interface {
	Capabilities() []capability.Capability
}

// Initializer is the optional ready hook. It runs once, after the runtime
// and the component's script module are both fully available. Components
// that don't implement it get a no-op.
type Initializer interface {
	AnimationsReady(ctx context.Context) error
}

// ModulePather overrides the convention-based script path for components
// whose module lives somewhere else.
type ModulePather interface {
	ModulePath() string
}

// Namer overrides the name used for the script path convention. Without
// it the component's Go type name is used.
type Namer interface {
	ComponentName() string
}

// Default script module location convention.
const (
	DefaultScriptDir = "scripts"
	ScriptExt        = ".lua"
)

// Name returns the component's conventional name: ComponentName() if
// implemented, otherwise the Go type name with any pointer stripped.
func Name(comp any) string {
	if n, ok := comp.(Namer); ok {
		return n.ComponentName()
	}

	t := reflect.TypeOf(comp)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

// ModulePath derives the script module path for a component:
// <dir>/<Name>.lua, unless the component overrides it via ModulePather.
func ModulePath(dir string, comp any) string {
	if mp, ok := comp.(ModulePather); ok {
		return mp.ModulePath()
	}
	return filepath.Join(dir, Name(comp)+ScriptExt)
}
