package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	tmpDir := t.TempDir()

	bundle := filepath.Join(tmpDir, "Plug-Ins", "JavaAppletPlugin.plugin")
	require.NoError(t, fsys.MkdirAll(filepath.Join(bundle, "Contents"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bundle, "Contents", "Info.plist"), []byte("<plist/>"), 0644))

	t.Run("read_file", func(t *testing.T) {
		content, err := fsys.ReadFile(filepath.Join(bundle, "Contents", "Info.plist"))
		require.NoError(t, err)
		assert.Equal(t, "<plist/>", string(content))
	})

	t.Run("read_directory_fails", func(t *testing.T) {
		_, err := fsys.ReadFile(bundle)
		assert.Error(t, err)
	})

	t.Run("symlink_and_lstat", func(t *testing.T) {
		link := filepath.Join(tmpDir, "link.plugin")
		require.NoError(t, fsys.Symlink(bundle, link))

		assert.True(t, IsSymlink(fsys, link))
		assert.True(t, IsDir(fsys, link))
		assert.False(t, IsSymlink(fsys, bundle))

		target, err := fsys.Readlink(link)
		require.NoError(t, err)
		assert.Equal(t, bundle, target)

		resolved, err := fsys.EvalSymlinks(link)
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(bundle)
		require.NoError(t, err)
		assert.Equal(t, want, resolved)
	})

	t.Run("rename_and_remove", func(t *testing.T) {
		disabled := filepath.Join(tmpDir, "Plug-Ins", "disabled")
		require.NoError(t, fsys.MkdirAll(disabled, 0755))

		moved := filepath.Join(disabled, "JavaAppletPlugin.plugin")
		require.NoError(t, fsys.Rename(bundle, moved))
		assert.False(t, Exists(fsys, bundle))
		assert.True(t, IsDir(fsys, moved))

		link := filepath.Join(tmpDir, "dangling")
		require.NoError(t, fsys.Symlink(filepath.Join(tmpDir, "nowhere"), link))
		assert.False(t, Exists(fsys, link), "dangling links do not exist when followed")
		require.NoError(t, fsys.Remove(link))
		_, err := fsys.Lstat(link)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestNewAferoMemMap(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/plugins/Info.plist", []byte("data"), 0644))
	fsys := NewAfero(mem)

	content, err := fsys.ReadFile("/plugins/Info.plist")
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))

	resolved, err := fsys.EvalSymlinks("/plugins/../plugins/Info.plist")
	require.NoError(t, err)
	assert.Equal(t, "/plugins/Info.plist", resolved)

	err = fsys.Symlink("/plugins", "/link")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoSymlink))

	_, err = fsys.Readlink("/plugins/Info.plist")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoSymlink))

	assert.False(t, IsSymlink(fsys, "/plugins/Info.plist"))
}

func TestNewAferoResolvesRelativeLinks(t *testing.T) {
	tmpDir := t.TempDir()
	fsys := NewAfero(afero.NewOsFs())

	target := filepath.Join(tmpDir, "real")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.Symlink("real", filepath.Join(tmpDir, "hop1")))
	require.NoError(t, os.Symlink("hop1", filepath.Join(tmpDir, "hop2")))

	resolved, err := fsys.EvalSymlinks(filepath.Join(tmpDir, "hop2"))
	require.NoError(t, err)
	assert.Equal(t, target, resolved)
}

func TestNewAferoDetectsLoops(t *testing.T) {
	tmpDir := t.TempDir()
	fsys := NewAfero(afero.NewOsFs())

	require.NoError(t, os.Symlink("b", filepath.Join(tmpDir, "a")))
	require.NoError(t, os.Symlink("a", filepath.Join(tmpDir, "b")))

	_, err := fsys.EvalSymlinks(filepath.Join(tmpDir, "a"))
	assert.Error(t, err)
}
