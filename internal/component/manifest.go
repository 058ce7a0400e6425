package component

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/animweave/animweave/internal/capability"
	"github.com/animweave/animweave/internal/logging"
)

// sidecarPath returns the JSON manifest path for a script module:
// the module path with its extension swapped for .json.
func sidecarPath(modulePath string) string {
	ext := filepath.Ext(modulePath)
	return strings.TrimSuffix(modulePath, ext) + ".json"
}

// manifestCapabilities reads the optional JSON sidecar next to a
// component's script module and returns the capabilities it declares:
//
//	{"capabilities": ["split-text", "scroll-trigger"]}
//
// A missing file is normal. Unrecognized names are kept - the resolver
// ignores them - but logged at debug so typos are findable.
func manifestCapabilities(modulePath string, logger *logging.Logger) []capability.Capability {
	data, err := os.ReadFile(sidecarPath(modulePath))
	if err != nil {
		return nil
	}

	if !gjson.ValidBytes(data) {
		logger.Warn("ignoring malformed manifest %s", sidecarPath(modulePath))
		return nil
	}

	var caps []capability.Capability
	gjson.GetBytes(data, "capabilities").ForEach(func(_, v gjson.Result) bool {
		c, known := capability.Parse(v.String())
		if !known {
			logger.Debug("manifest requests unknown capability %q", v.String())
		}
		caps = append(caps, c)
		return true
	})
	return caps
}
