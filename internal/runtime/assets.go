package runtime

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// AssetSource resolves a plugin asset filename to its script bytes.
type AssetSource interface {
	Open(name string) ([]byte, error)
}

// FSSource serves assets from an fs.FS. Asset names are bare filenames;
// anything containing a path separator is rejected.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates an asset source backed by fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// DirSource creates an asset source reading from a directory on disk.
func DirSource(dir string) *FSSource {
	return &FSSource{fsys: os.DirFS(dir)}
}

// Open reads the named asset.
func (s *FSSource) Open(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrBadAssetName, name)
	}

	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", name, err)
	}
	return data, nil
}
