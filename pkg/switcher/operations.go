package switcher

import (
	"fmt"
	"io/fs"

	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/arthur-debert/javaswitch/pkg/filesystem"
	"github.com/arthur-debert/javaswitch/pkg/logging"
	"github.com/rs/zerolog"
)

// OperationType is one of the filesystem changes a switch is made of
type OperationType int

const (
	// MakeDir creates Target and its parents
	MakeDir OperationType = iota
	// Move renames Source to Target. Target must not exist.
	Move
	// CreateLink makes Target a symlink to Source
	CreateLink
	// RemoveLink deletes the symlink at Target. Anything else is refused.
	RemoveLink
	// ReplaceLink points Target at Source, replacing a previous symlink
	ReplaceLink
)

func (t OperationType) String() string {
	switch t {
	case MakeDir:
		return "mkdir"
	case Move:
		return "move"
	case CreateLink:
		return "link"
	case RemoveLink:
		return "unlink"
	case ReplaceLink:
		return "relink"
	default:
		return fmt.Sprintf("operation(%d)", int(t))
	}
}

// Operation is a single filesystem change
type Operation struct {
	Type   OperationType
	Source string
	Target string
}

func (op Operation) String() string {
	switch op.Type {
	case MakeDir, RemoveLink:
		return fmt.Sprintf("%s %s", op.Type, op.Target)
	default:
		return fmt.Sprintf("%s %s -> %s", op.Type, op.Source, op.Target)
	}
}

// OperationResult captures the outcome of one operation
type OperationResult struct {
	Operation Operation
	Success   bool
	Simulated bool
	Error     error
}

// Executor applies operations to a filesystem
type Executor struct {
	fs     filesystem.FS
	logger zerolog.Logger
	dryRun bool
}

// NewExecutor creates an executor. In dry-run mode operations are only logged.
func NewExecutor(fsys filesystem.FS, logger zerolog.Logger, dryRun bool) *Executor {
	return &Executor{fs: fsys, logger: logger, dryRun: dryRun}
}

// Execute runs operations in order and stops at the first failure.
// The returned results cover every operation that was attempted.
func (e *Executor) Execute(operations []Operation) ([]OperationResult, error) {
	done := logging.LogOperationStart(e.logger, "execute")
	defer done()

	results := make([]OperationResult, 0, len(operations))
	for _, op := range operations {
		if e.dryRun {
			e.logger.Info().Str("operation", op.String()).Msg("Would execute")
			results = append(results, OperationResult{Operation: op, Success: true, Simulated: true})
			continue
		}

		e.logger.Debug().Str("operation", op.String()).Msg("Executing operation")
		err := e.executeOne(op)
		results = append(results, OperationResult{Operation: op, Success: err == nil, Error: err})
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (e *Executor) executeOne(op Operation) error {
	switch op.Type {
	case MakeDir:
		if err := e.fs.MkdirAll(op.Target, 0755); err != nil {
			return wrapOp(err, op)
		}
	case Move:
		if _, err := e.fs.Lstat(op.Target); err == nil {
			return errors.Newf(errors.ErrFSOperation, "cannot move %s: %s already exists", op.Source, op.Target).
				WithDetail("target", op.Target)
		}
		if err := e.fs.Rename(op.Source, op.Target); err != nil {
			return wrapOp(err, op)
		}
	case CreateLink:
		if err := e.fs.Symlink(op.Source, op.Target); err != nil {
			return wrapOp(err, op)
		}
	case RemoveLink:
		if !filesystem.IsSymlink(e.fs, op.Target) {
			return errors.Newf(errors.ErrFSOperation, "refusing to remove %s: not a symlink", op.Target).
				WithDetail("target", op.Target)
		}
		if err := e.fs.Remove(op.Target); err != nil {
			return wrapOp(err, op)
		}
	case ReplaceLink:
		if err := e.replaceLink(op); err != nil {
			return err
		}
	default:
		return errors.Newf(errors.ErrInternal, "unknown operation type %d", int(op.Type))
	}
	return nil
}

func (e *Executor) replaceLink(op Operation) error {
	info, err := e.fs.Lstat(op.Target)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink != 0:
		if err := e.fs.Remove(op.Target); err != nil {
			return wrapOp(err, op)
		}
	case err == nil:
		return errors.Newf(errors.ErrSymlinkExists, "cannot link %s: a non-symlink file is in the way", op.Target).
			WithDetail("target", op.Target)
	}
	if err := e.fs.Symlink(op.Source, op.Target); err != nil {
		return wrapOp(err, op)
	}
	return nil
}

func wrapOp(err error, op Operation) error {
	return errors.Wrapf(err, errors.ErrFSOperation, "%s failed", op).
		WithDetail("operation", op.Type.String())
}
