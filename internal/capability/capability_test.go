package capability

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestResolveEmpty(t *testing.T) {
	got := Resolve()
	if len(got) != 0 {
		t.Errorf("Resolve() = %v, want empty", got)
	}
}

func TestResolveUnknown(t *testing.T) {
	got := Resolve(Capability("jetpack"), Capability(""))
	if len(got) != 0 {
		t.Errorf("Resolve(unknown) = %v, want empty", got)
	}
}

func TestResolveSingle(t *testing.T) {
	got := Resolve(SplitText)
	want := []string{"SplitText.min.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(SplitText) = %v, want %v", got, want)
	}
}

func TestResolveSuffixNaming(t *testing.T) {
	got := Resolve(ScrollTo, Text)
	want := []string{"ScrollToPlugin.min.js", "TextPlugin.min.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(ScrollTo, Text) = %v, want %v", got, want)
	}
}

func TestResolveDependencyExpansion(t *testing.T) {
	got := Resolve(ScrollSmoother)
	want := []string{"ScrollSmoother.min.js", "ScrollTrigger.min.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(ScrollSmoother) = %v, want %v", got, want)
	}
}

func TestResolveSharedBase(t *testing.T) {
	// Both easing variants need CustomEase, but it appears once.
	got := Resolve(CustomBounce, CustomWiggle)
	want := []string{"CustomBounce.min.js", "CustomEase.min.js", "CustomWiggle.min.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(CustomBounce, CustomWiggle) = %v, want %v", got, want)
	}
}

func TestResolveBundle(t *testing.T) {
	got := Resolve(RoughEase, ExpoScaleEase, SlowMo)
	want := []string{"EasePack.min.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(ease helpers) = %v, want %v", got, want)
	}
}

func TestResolveDuplicates(t *testing.T) {
	got := Resolve(Draggable, Draggable, Draggable)
	want := []string{"Draggable.min.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(dup) = %v, want %v", got, want)
	}
}

func TestResolveOrderIndependent(t *testing.T) {
	caps := []Capability{ScrollSmoother, SplitText, CustomBounce, RoughEase, SlowMo, Draggable}
	want := Resolve(caps...)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]Capability(nil), caps...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := Resolve(shuffled...)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Resolve(%v) = %v, want %v", shuffled, got, want)
		}
	}
}

func TestResolveMixedKnownUnknown(t *testing.T) {
	got := Resolve(Flip, Capability("warp-drive"), Observer)
	want := []string{"Flip.min.js", "Observer.min.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(mixed) = %v, want %v", got, want)
	}
}

func TestKnown(t *testing.T) {
	if !Known(SplitText) {
		t.Error("Known(SplitText) = false, want true")
	}
	if Known(Capability("warp-drive")) {
		t.Error("Known(warp-drive) = true, want false")
	}
}

func TestParse(t *testing.T) {
	c, ok := Parse("split-text")
	if !ok || c != SplitText {
		t.Errorf("Parse(split-text) = %v, %v, want SplitText, true", c, ok)
	}
	if _, ok := Parse("nope"); ok {
		t.Error("Parse(nope) ok = true, want false")
	}
}

func TestAllSortedAndResolvable(t *testing.T) {
	caps := All()
	if len(caps) == 0 {
		t.Fatal("All() returned no capabilities")
	}
	if !sort.SliceIsSorted(caps, func(i, j int) bool { return caps[i] < caps[j] }) {
		t.Errorf("All() not sorted: %v", caps)
	}
	for _, c := range caps {
		if assets := Resolve(c); len(assets) == 0 {
			t.Errorf("Resolve(%s) = empty, every known capability needs at least one asset", c)
		}
	}
}
