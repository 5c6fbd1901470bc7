package javaswitch

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/javaswitch/internal/version"
	"github.com/arthur-debert/javaswitch/pkg/config"
	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommand(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(f *fixture)
		expected    []string
		notExpected []string
	}{
		{
			name:  "oracle active",
			setup: func(f *fixture) { f.env.InstallOracle() },
			expected: []string{
				"Vendor:    Oracle",
				"Bundle:    com.oracle.java.JavaAppletPlugin",
				"Version:   Java 7 Update 45",
				"Symlink:   no",
				"Disabled:  none",
			},
			notExpected: []string{"Resolves:"},
		},
		{
			name:  "apple active with oracle parked",
			setup: func(f *fixture) { f.env.InstallAppleLink().ParkOracle() },
			expected: []string{
				"Vendor:    Apple",
				"Version:   Java 6",
				"Symlink:   yes",
				"Resolves:  ",
				"Disabled:  Oracle plug-in parked at ",
			},
		},
		{
			name: "unreadable metadata",
			setup: func(f *fixture) {
				f.env.WriteInfoPlist(f.env.Layout.PluginPath(), "bplist00garbage")
			},
			expected: []string{
				"Vendor:    Unknown",
				"Metadata:  ",
			},
			notExpected: []string{"Bundle:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			before := f.env.Snapshot()

			stdout, _, err := f.execute(t, "status")
			require.NoError(t, err)
			assert.Equal(t, before, f.env.Snapshot(), "status must not change anything")

			assert.Contains(t, stdout, "Plug-in:   "+f.env.Layout.PluginPath())
			for _, want := range tt.expected {
				assert.Contains(t, stdout, want)
			}
			for _, unwanted := range tt.notExpected {
				assert.NotContains(t, stdout, unwanted)
			}
		})
	}
}

func TestStatusCommand_MissingBundle(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.execute(t, "status")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPluginNotFound))
	assert.Equal(t, ExitError, ExitCode(err))
}

func TestVersionCommand(t *testing.T) {
	f := newFixture(t)

	stdout, _, err := f.execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "javaswitch version "+version.Version)
	assert.Contains(t, stdout, "commit: "+version.Commit)
}

func TestDefaultsCommand(t *testing.T) {
	f := newFixture(t)

	stdout, _, err := f.execute(t, "defaults")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultContent(), stdout)
	assert.Contains(t, stdout, "[dialog.text]")
}

func TestDefaultsCommand_IgnoresBrokenConfig(t *testing.T) {
	f := newFixture(t)
	cmd := NewRootCmd(f.deps)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "defaults"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "[paths]")
}

func TestCompletionCommand(t *testing.T) {
	f := newFixture(t)

	stdout, _, err := f.execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "javaswitch")

	_, _, err = f.execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
