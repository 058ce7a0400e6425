package component

// Phase is the lifecycle state of one component's animation setup.
type Phase int

// Lifecycle phases.
const (
	// PhaseUninitialized - nothing has happened yet.
	PhaseUninitialized Phase = iota

	// PhaseCoreLoading - the shared core runtime is loading.
	PhaseCoreLoading

	// PhasePluginsLoading - the runtime is loading resolved plugin assets.
	PhasePluginsLoading

	// PhaseModuleLoading - the component's own script module is loading.
	PhaseModuleLoading

	// PhaseReady - everything loaded; the ready hook has run.
	PhaseReady

	// PhaseDisposing - teardown in progress.
	PhaseDisposing

	// PhaseDisposed - teardown finished.
	PhaseDisposed

	// PhaseFailed - a load step failed; animations stay unavailable but
	// the component keeps rendering.
	PhaseFailed
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseCoreLoading:
		return "core-loading"
	case PhasePluginsLoading:
		return "plugins-loading"
	case PhaseModuleLoading:
		return "module-loading"
	case PhaseReady:
		return "ready"
	case PhaseDisposing:
		return "disposing"
	case PhaseDisposed:
		return "disposed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further lifecycle transitions can happen.
func (p Phase) IsTerminal() bool {
	return p == PhaseDisposed || p == PhaseFailed
}
