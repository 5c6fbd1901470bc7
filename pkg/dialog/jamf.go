package dialog

import (
	"context"
	"strconv"
	"time"

	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/arthur-debert/javaswitch/pkg/execx"
	"github.com/rs/zerolog"
)

// DefaultJamfHelperPath is where Jamf Pro installs its notification helper
const DefaultJamfHelperPath = "/Library/Application Support/JAMF/bin/jamfHelper.app/Contents/MacOS/jamfHelper"

// cancelButton is the button number jamfHelper reports for Cancel
const cancelButton = 2

// JamfHelper shows a utility window through the jamfHelper binary
type JamfHelper struct {
	Path       string
	WindowType string
	Timeout    time.Duration
	Runner     execx.Runner
	Logger     zerolog.Logger
}

// NewJamfHelper creates a jamfHelper confirmer using runner
func NewJamfHelper(path string, runner execx.Runner, logger zerolog.Logger) *JamfHelper {
	if path == "" {
		path = DefaultJamfHelperPath
	}
	return &JamfHelper{
		Path:       path,
		WindowType: "utility",
		Runner:     runner,
		Logger:     logger,
	}
}

// Args returns the helper arguments for req
func (j *JamfHelper) Args(req Request) []string {
	args := []string{"-windowType", j.WindowType}
	if req.Icon != "" {
		args = append(args, "-icon", req.Icon)
	}
	return append(args,
		"-title", req.Title,
		"-heading", req.Heading,
		"-description", req.Description,
		"-button1", req.OKLabel,
		"-button2", req.CancelLabel,
		"-cancelButton", strconv.Itoa(cancelButton),
	)
}

// Confirm runs the helper and maps its response to a decision.
// Button 1 (exit code 0) confirms; anything else declines.
func (j *JamfHelper) Confirm(ctx context.Context, req Request) (bool, error) {
	result := j.Runner.Run(ctx, execx.Command{
		Path:    j.Path,
		Args:    j.Args(req),
		Timeout: j.Timeout,
	})
	if result.Err != nil {
		return false, errors.Wrapf(result.Err, errors.ErrHelperExec, "cannot run %s", j.Path).
			WithDetail("path", j.Path)
	}

	j.Logger.Debug().Int("exitCode", result.ExitCode).Msg("Dialog closed")
	return result.ExitCode == 0, nil
}
