package runtime

import "errors"

// Runtime errors.
var (
	// ErrBadAssetName is returned for empty asset names or names that
	// try to escape the asset directory.
	ErrBadAssetName = errors.New("invalid asset name")
)
