// Package capability maps requested animation capabilities to the script
// assets that implement them.
package capability

import "sort"

// Capability identifies one optional animation feature a component may
// request. The set is closed; extending it means extending the asset table.
type Capability string

// Known capabilities.
const (
	Draggable      Capability = "draggable"
	Flip           Capability = "flip"
	Observer       Capability = "observer"
	ScrollTrigger  Capability = "scroll-trigger"
	ScrollSmoother Capability = "scroll-smoother"
	SplitText      Capability = "split-text"
	ScrollTo       Capability = "scroll-to"
	Text           Capability = "text"
	ScrambleText   Capability = "scramble-text"
	MotionPath     Capability = "motion-path"
	Physics2D      Capability = "physics-2d"
	PhysicsProps   Capability = "physics-props"
	Inertia        Capability = "inertia"
	DrawSVG        Capability = "draw-svg"
	CustomEase     Capability = "custom-ease"
	CustomBounce   Capability = "custom-bounce"
	CustomWiggle   Capability = "custom-wiggle"
	RoughEase      Capability = "rough-ease"
	ExpoScaleEase  Capability = "expo-scale-ease"
	SlowMo         Capability = "slow-mo"
	DevTools       Capability = "dev-tools"
)

// assetTable maps each capability to the asset filenames it needs.
// Filenames follow the upstream distribution names. Three shapes appear:
//
//   - plain or suffixed one-to-one entries (Flip.min.js, TextPlugin.min.js)
//   - dependency expansion: a capability that also needs a base asset
//     (scroll-smoother needs ScrollTrigger, the custom easing variants
//     need CustomEase)
//   - bundled entries: the three ease helpers ship in one EasePack file
var assetTable = map[Capability][]string{
	Draggable:      {"Draggable.min.js"},
	Flip:           {"Flip.min.js"},
	Observer:       {"Observer.min.js"},
	ScrollTrigger:  {"ScrollTrigger.min.js"},
	ScrollSmoother: {"ScrollSmoother.min.js", "ScrollTrigger.min.js"},
	SplitText:      {"SplitText.min.js"},
	ScrollTo:       {"ScrollToPlugin.min.js"},
	Text:           {"TextPlugin.min.js"},
	ScrambleText:   {"ScrambleTextPlugin.min.js"},
	MotionPath:     {"MotionPathPlugin.min.js"},
	Physics2D:      {"Physics2DPlugin.min.js"},
	PhysicsProps:   {"PhysicsPropsPlugin.min.js"},
	Inertia:        {"InertiaPlugin.min.js"},
	DrawSVG:        {"DrawSVGPlugin.min.js"},
	CustomEase:     {"CustomEase.min.js"},
	CustomBounce:   {"CustomBounce.min.js", "CustomEase.min.js"},
	CustomWiggle:   {"CustomWiggle.min.js", "CustomEase.min.js"},
	RoughEase:      {"EasePack.min.js"},
	ExpoScaleEase:  {"EasePack.min.js"},
	SlowMo:         {"EasePack.min.js"},
	DevTools:       {"GSDevTools.min.js"},
}

// Resolve translates requested capabilities into the deduplicated set of
// asset filenames needed, sorted for deterministic iteration.
//
// Resolution is pure: duplicates and request order do not affect the result,
// and unknown capabilities are silently ignored. It never fails.
func Resolve(caps ...Capability) []string {
	seen := make(map[string]bool)
	for _, c := range caps {
		for _, asset := range assetTable[c] {
			seen[asset] = true
		}
	}

	assets := make([]string, 0, len(seen))
	for asset := range seen {
		assets = append(assets, asset)
	}
	sort.Strings(assets)
	return assets
}

// Known reports whether c is a recognized capability.
func Known(c Capability) bool {
	_, ok := assetTable[c]
	return ok
}

// Parse returns the capability named by s and whether it is recognized.
func Parse(s string) (Capability, bool) {
	c := Capability(s)
	return c, Known(c)
}

// All returns every known capability, sorted by name.
func All() []Capability {
	caps := make([]Capability, 0, len(assetTable))
	for c := range assetTable {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}
