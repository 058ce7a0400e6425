package main

import (
	"context"

	"github.com/rivo/uniseg"

	"github.com/animweave/animweave/internal/capability"
	"github.com/animweave/animweave/internal/component"
)

// Banner is the demo's embedding component: a line of text revealed one
// grapheme at a time through the split-text capability.
type Banner struct {
	Text string

	ctrl     *component.Controller
	clusters []string
	tweenIDs []int
}

// Capabilities declares the optional animation features the banner needs.
func (b *Banner) Capabilities() []capability.Capability {
	return []capability.Capability{capability.SplitText}
}

// AnimationsReady is the lifecycle hook: the runtime and the Banner script
// module are both loaded, so split the text and start the reveal tweens.
func (b *Banner) AnimationsReady(ctx context.Context) error {
	b.clusters = b.clusters[:0]
	g := uniseg.NewGraphemes(b.Text)
	for g.Next() {
		b.clusters = append(b.clusters, g.Str())
	}

	results, err := b.ctrl.Call("init", len(b.clusters))
	if err != nil {
		return err
	}

	b.tweenIDs = b.tweenIDs[:0]
	if len(results) > 0 {
		if ids, ok := results[0].([]any); ok {
			for _, id := range ids {
				if n, ok := id.(int64); ok {
					b.tweenIDs = append(b.tweenIDs, int(n))
				}
			}
		}
	}
	return nil
}
