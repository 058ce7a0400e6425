package runtime

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/animweave/animweave/internal/logging"
)

func newTestRuntime(t *testing.T, src AssetSource) *Runtime {
	t.Helper()
	return New(
		WithEngine(NewEngine()),
		WithSource(src),
		WithLogger(logging.Null),
	)
}

func TestInitializeNoAssets(t *testing.T) {
	r := newTestRuntime(t, testAssets())

	if err := r.Initialize(context.Background(), nil); err != nil {
		t.Fatalf("Initialize(nil) error = %v", err)
	}
	if err := r.Engine().EnsureCore(); err != nil {
		t.Fatalf("core not usable after Initialize: %v", err)
	}
}

func TestInitializeLoadsAllAssets(t *testing.T) {
	r := newTestRuntime(t, testAssets())

	assets := []string{"SplitText.min.js", "Flip.min.js"}
	if err := r.Initialize(context.Background(), assets); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	for _, name := range assets {
		if !r.Engine().AssetLoaded(name) {
			t.Errorf("AssetLoaded(%s) = false, want true", name)
		}
	}
}

func TestInitializeIdempotent(t *testing.T) {
	src := newCountingSource(testAssets())
	r := newTestRuntime(t, src)

	for i := 0; i < 3; i++ {
		if err := r.Initialize(context.Background(), []string{"Flip.min.js"}); err != nil {
			t.Fatalf("Initialize()[%d] error = %v", i, err)
		}
	}
	if n := src.count("Flip.min.js"); n != 1 {
		t.Errorf("asset opened %d times across initializations, want 1", n)
	}
}

func TestInitializeMissingAsset(t *testing.T) {
	r := newTestRuntime(t, testAssets())

	err := r.Initialize(context.Background(), []string{"Flip.min.js", "Nope.min.js"})
	if err == nil {
		t.Fatal("Initialize(with missing) error = nil, want error")
	}

	// The good asset still finished loading before the call returned.
	if !r.Engine().AssetLoaded("Flip.min.js") {
		t.Error("AssetLoaded(Flip.min.js) = false, want true")
	}
}

func TestCleanupAll(t *testing.T) {
	r := newTestRuntime(t, testAssets())
	if err := r.Initialize(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	tl := r.Engine().Timeline()
	tl.Add(&Tween{Target: "a", Duration: 5})
	tl.Add(&Tween{Target: "b", Duration: 5})

	r.CleanupAll()
	if tl.Active() != 0 {
		t.Errorf("Active() = %d after CleanupAll, want 0", tl.Active())
	}

	// Cleanup on an empty timeline is fine.
	r.CleanupAll()
}

func TestDefaultAssetDirWiring(t *testing.T) {
	// New without options binds the shared engine; make sure an isolated
	// source can still be layered over it for tests.
	r := New(
		WithEngine(NewEngine()),
		WithSource(NewFSSource(fstest.MapFS{})),
		WithLogger(logging.Null),
	)
	if err := r.Initialize(context.Background(), []string{"Ghost.min.js"}); err == nil {
		t.Error("Initialize(unknown asset, empty fs) error = nil, want error")
	}
}
