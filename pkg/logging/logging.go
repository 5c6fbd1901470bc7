package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the name of the per-user diagnostic log
const LogFileName = "java_switcher.log"

// FileTimeFormat is the timestamp layout written to the log file
const FileTimeFormat = "2006-01-02 15:04:05.000"

// Options controls logger setup
type Options struct {
	// Verbosity selects the console level: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int
	// FilePath is the diagnostic log file. Empty disables file logging.
	FilePath string
	// Console receives human-readable output. Defaults to os.Stderr.
	Console io.Writer
	// NoColor disables ANSI colors on the console
	NoColor bool
}

// Handle owns the process-wide logger and its log file
type Handle struct {
	Logger   zerolog.Logger
	FilePath string
	file     *os.File
}

// Close flushes and closes the log file, if one was opened
func (h *Handle) Close() error {
	if h == nil || h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	return err
}

// ConsoleLevel maps a verbosity count to a zerolog level
func ConsoleLevel(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup configures the global logger and returns it for injection.
// It writes to the console at the requested verbosity and to the log file
// at debug level or lower, so diagnostics land in the file even when the
// console is quiet. Call it once per process and Close the handle on exit.
func Setup(opts Options) *Handle {
	consoleLevel := ConsoleLevel(opts.Verbosity)
	fileLevel := zerolog.DebugLevel
	if consoleLevel < fileLevel {
		fileLevel = consoleLevel
	}

	out := opts.Console
	if out == nil {
		out = os.Stderr
	}

	// Configure console output with pretty printing
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter},
			Level:  consoleLevel,
		},
	}

	handle := &Handle{FilePath: opts.FilePath}
	var fileErr error
	if opts.FilePath != "" {
		handle.file, fileErr = setupLogFile(opts.FilePath)
		if fileErr == nil {
			fileWriter := zerolog.ConsoleWriter{
				Out:        handle.file,
				TimeFormat: FileTimeFormat,
				NoColor:    true,
			}
			writers = append(writers, &zerolog.FilteredLevelWriter{
				Writer: zerolog.LevelWriterAdapter{Writer: fileWriter},
				Level:  fileLevel,
			})
		}
	}

	zerolog.SetGlobalLevel(fileLevel)
	multi := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multi).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}

	log.Logger = logger
	handle.Logger = logger

	// If we couldn't create the log file, log the error now with the new logger
	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("path", opts.FilePath).Msg("Failed to create log file, logging to console only")
		handle.FilePath = ""
	}

	logger.Debug().Int("verbosity", opts.Verbosity).Str("logFile", handle.FilePath).Msg("Logger initialized")
	return handle
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// UserLogPath returns the diagnostic log path for a user's home directory:
// ~/Library/Logs/java_switcher.log. Without a home directory it falls back to
// the XDG state directory.
func UserLogPath(homeDir string) string {
	if homeDir == "" {
		return filepath.Join(xdg.StateHome, "javaswitch", LogFileName)
	}
	return filepath.Join(homeDir, "Library", "Logs", LogFileName)
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	// Create parent directories
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(logger zerolog.Logger, cmd string, args []string) {
	logger.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
