package dialog

import (
	"os"

	"github.com/arthur-debert/javaswitch/pkg/execx"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// SelectOptions controls which confirmer is used
type SelectOptions struct {
	HelperPath   string
	ForceConsole bool
	Runner       execx.Runner
	Logger       zerolog.Logger
	// HelperExists and Interactive default to checking the real system
	HelperExists func(path string) bool
	Interactive  func() bool
}

// Select picks the terminal confirmer when forced, or when the helper binary
// is missing and stdin is a terminal. Otherwise it returns the jamfHelper
// confirmer, which reports an error if the helper cannot run.
func Select(opts SelectOptions) Confirmer {
	helperExists := opts.HelperExists
	if helperExists == nil {
		helperExists = fileExists
	}
	interactive := opts.Interactive
	if interactive == nil {
		interactive = stdinIsTerminal
	}

	if opts.ForceConsole {
		return NewTerminal()
	}

	helperPath := opts.HelperPath
	if helperPath == "" {
		helperPath = DefaultJamfHelperPath
	}
	if !helperExists(helperPath) && interactive() {
		opts.Logger.Info().Str("helper", helperPath).Msg("Notification helper not found, asking on the terminal")
		return NewTerminal()
	}
	return NewJamfHelper(helperPath, opts.Runner, opts.Logger)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
