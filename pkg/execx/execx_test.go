package execx

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func shell(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestOSRunner_Success(t *testing.T) {
	r := NewOSRunner(zerolog.Nop())

	result := r.Run(context.Background(), Command{
		Path: shell(t),
		Args: []string{"-c", "echo 'Hello, World!'"},
	})

	assert.True(t, result.Success())
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "Hello, World!\n", result.Stdout)
	assert.NoError(t, result.Err)
}

func TestOSRunner_NonZeroExit(t *testing.T) {
	r := NewOSRunner(zerolog.Nop())

	result := r.Run(context.Background(), Command{
		Path: shell(t),
		Args: []string{"-c", "echo nope >&2; exit 2"},
	})

	assert.False(t, result.Success())
	assert.Equal(t, 2, result.ExitCode)
	assert.Equal(t, "nope\n", result.Stderr)
	assert.NoError(t, result.Err, "a clean non-zero exit is not an execution error")
}

func TestOSRunner_ArgumentsAreNotShellParsed(t *testing.T) {
	r := NewOSRunner(zerolog.Nop())

	// The quote in the description would break a shell-built command line
	result := r.Run(context.Background(), Command{
		Path: shell(t),
		Args: []string{"-c", `printf '%s' "$1"`, "sh", "You'll need to restart"},
	})

	assert.True(t, result.Success())
	assert.Equal(t, "You'll need to restart", result.Stdout)
}

func TestOSRunner_MissingProgram(t *testing.T) {
	r := NewOSRunner(zerolog.Nop())

	result := r.Run(context.Background(), Command{Path: "/nonexistent/jamfHelper"})

	assert.False(t, result.Success())
	assert.Equal(t, -1, result.ExitCode)
	assert.Error(t, result.Err)
}

func TestOSRunner_Timeout(t *testing.T) {
	r := NewOSRunner(zerolog.Nop())

	result := r.Run(context.Background(), Command{
		Path:    shell(t),
		Args:    []string{"-c", "exec sleep 5"},
		Timeout: 100 * time.Millisecond,
	})

	assert.False(t, result.Success())
	assert.Equal(t, -1, result.ExitCode)
	assert.ErrorContains(t, result.Err, "timed out")
	assert.Less(t, result.Duration, 5*time.Second)
}

func TestRunnerFunc(t *testing.T) {
	var got Command
	r := RunnerFunc(func(_ context.Context, c Command) Result {
		got = c
		return Result{ExitCode: 2}
	})

	result := r.Run(context.Background(), Command{Path: "/bin/helper", Args: []string{"-x"}})
	assert.Equal(t, 2, result.ExitCode)
	assert.Equal(t, "/bin/helper", got.Path)
	assert.Equal(t, []string{"-x"}, got.Args)
}
