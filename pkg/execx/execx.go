// Package execx runs external programs and reports how they exited.
//
// Commands are executed directly, never through a shell, and the result
// carries the numeric exit code so callers branch on a value instead of
// parsing output.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/arthur-debert/javaswitch/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a command when Command.Timeout is zero
const DefaultTimeout = 10 * time.Minute

// waitDelay caps how long output pipes are drained after the process is killed
const waitDelay = 2 * time.Second

// Command describes a program invocation
type Command struct {
	Path    string
	Args    []string
	Timeout time.Duration
}

// Result contains the outcome of a command
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	// Err is set when the program could not be started or was killed.
	// A program that ran and exited non-zero has Err == nil.
	Err error
}

// Success reports whether the program ran and exited 0
func (r Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Runner executes commands
type Runner interface {
	Run(ctx context.Context, cmd Command) Result
}

// RunnerFunc adapts a function to the Runner interface
type RunnerFunc func(ctx context.Context, cmd Command) Result

// Run calls f
func (f RunnerFunc) Run(ctx context.Context, cmd Command) Result {
	return f(ctx, cmd)
}

// OSRunner runs commands as child processes
type OSRunner struct {
	Logger zerolog.Logger
}

// NewOSRunner creates a runner that logs through logger
func NewOSRunner(logger zerolog.Logger) *OSRunner {
	return &OSRunner{Logger: logger}
}

// Run starts the program and waits for it to exit
func (r *OSRunner) Run(ctx context.Context, c Command) Result {
	startTime := time.Now()
	result := Result{}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logging.LogCommand(r.Logger, c.Path, c.Args)

	//nolint:gosec // G204: the program path comes from configuration
	cmd := exec.CommandContext(execCtx, c.Path, c.Args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result.Duration = time.Since(startTime)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case execCtx.Err() == context.DeadlineExceeded:
			result.Err = fmt.Errorf("command timed out after %v", timeout)
			result.ExitCode = -1
		case ctx.Err() != nil:
			result.Err = ctx.Err()
			result.ExitCode = -1
		case errors.As(err, &exitErr):
			result.ExitCode = exitErr.ExitCode()
		default:
			result.Err = err
			result.ExitCode = -1
		}
	}

	r.Logger.Debug().
		Str("command", c.Path).
		Int("exitCode", result.ExitCode).
		Dur("duration", result.Duration).
		AnErr("error", result.Err).
		Msg("Command finished")

	return result
}
