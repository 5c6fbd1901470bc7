package switcher

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/arthur-debert/javaswitch/pkg/filesystem"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationString(t *testing.T) {
	assert.Equal(t, "mkdir /d", Operation{Type: MakeDir, Target: "/d"}.String())
	assert.Equal(t, "move /a -> /b", Operation{Type: Move, Source: "/a", Target: "/b"}.String())
	assert.Equal(t, "unlink /p", Operation{Type: RemoveLink, Target: "/p"}.String())
	assert.Equal(t, "relink /t -> /usr/bin/javaws", Operation{Type: ReplaceLink, Source: "/t", Target: "/usr/bin/javaws"}.String())
	assert.Equal(t, "operation(42)", OperationType(42).String())
}

func TestExecutor(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()
	exec := NewExecutor(fsys, zerolog.Nop(), false)

	src := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(src, 0755))

	t.Run("move_and_link", func(t *testing.T) {
		moved := filepath.Join(dir, "parked", "src")
		link := filepath.Join(dir, "link")
		results, err := exec.Execute([]Operation{
			{Type: MakeDir, Target: filepath.Dir(moved)},
			{Type: Move, Source: src, Target: moved},
			{Type: CreateLink, Source: moved, Target: link},
		})
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.True(t, filesystem.IsDir(fsys, moved))
		assert.True(t, filesystem.IsSymlink(fsys, link))
	})

	t.Run("remove_link_refuses_directories", func(t *testing.T) {
		target := filepath.Join(dir, "realdir")
		require.NoError(t, os.Mkdir(target, 0755))

		results, err := exec.Execute([]Operation{{Type: RemoveLink, Target: target}})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFSOperation))
		assert.False(t, results[0].Success)
		assert.True(t, filesystem.IsDir(fsys, target))
	})

	t.Run("replace_link_creates_when_absent", func(t *testing.T) {
		target := filepath.Join(dir, "javaws")
		_, err := exec.Execute([]Operation{{Type: ReplaceLink, Source: "/first", Target: target}})
		require.NoError(t, err)
		_, err = exec.Execute([]Operation{{Type: ReplaceLink, Source: "/second", Target: target}})
		require.NoError(t, err)

		got, err := os.Readlink(target)
		require.NoError(t, err)
		assert.Equal(t, "/second", got)
	})

	t.Run("create_link_fails_when_target_exists", func(t *testing.T) {
		target := filepath.Join(dir, "occupied")
		require.NoError(t, os.WriteFile(target, nil, 0644))

		_, err := exec.Execute([]Operation{{Type: CreateLink, Source: "/x", Target: target}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrFSOperation))
	})

	t.Run("unknown_operation", func(t *testing.T) {
		_, err := exec.Execute([]Operation{{Type: OperationType(99)}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	})
}

func TestExecutorDryRun(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	exec := NewExecutor(filesystem.NewOS(), zerolog.New(&logs), true)

	results, err := exec.Execute([]Operation{
		{Type: MakeDir, Target: filepath.Join(dir, "new")},
		{Type: CreateLink, Source: "/x", Target: filepath.Join(dir, "link")},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Simulated)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, logs.String(), "Would execute")
}
