package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/spf13/afero"
)

// maxLinkHops bounds symlink resolution, matching the usual ELOOP limit
const maxLinkHops = 40

// aferoFS implements FS using afero
type aferoFS struct {
	fs   afero.Fs
	eval func(string) (string, error)
}

// NewAfero creates a filesystem backed by any afero.Fs.
// Backends that do not implement afero.Symlinker (MemMapFs for instance)
// report ErrNoSymlink on link operations and treat Lstat as Stat.
func NewAfero(fsys afero.Fs) FS {
	a := &aferoFS{fs: fsys}
	a.eval = a.resolve
	return a
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	linker, ok := a.fs.(afero.Linker)
	if !ok {
		return errors.Wrapf(afero.ErrNoSymlink, errors.ErrNoSymlink, "cannot link %s", newname)
	}
	return linker.SymlinkIfPossible(oldname, newname)
}

func (a *aferoFS) Readlink(name string) (string, error) {
	reader, ok := a.fs.(afero.LinkReader)
	if !ok {
		return "", errors.Wrapf(afero.ErrNoReadlink, errors.ErrNoSymlink, "cannot read link %s", name)
	}
	return reader.ReadlinkIfPossible(name)
}

func (a *aferoFS) EvalSymlinks(path string) (string, error) {
	return a.eval(path)
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

// resolve follows links on the final path component only. Backends without
// link support just confirm the path exists.
func (a *aferoFS) resolve(path string) (string, error) {
	current := filepath.Clean(path)
	for i := 0; i < maxLinkHops; i++ {
		info, err := a.Lstat(current)
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			return current, nil
		}
		target, err := a.Readlink(current)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = filepath.Clean(target)
	}
	return "", &fs.PathError{Op: "evalsymlinks", Path: path, Err: fs.ErrInvalid}
}
