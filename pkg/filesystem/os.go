package filesystem

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the real OS filesystem
func NewOS() FS {
	return &aferoFS{
		fs:   afero.NewOsFs(),
		eval: filepath.EvalSymlinks,
	}
}
