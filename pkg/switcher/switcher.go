package switcher

import (
	"context"

	"github.com/arthur-debert/javaswitch/pkg/dialog"
	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/arthur-debert/javaswitch/pkg/filesystem"
	"github.com/arthur-debert/javaswitch/pkg/plist"
	"github.com/arthur-debert/javaswitch/pkg/vendor"
	"github.com/rs/zerolog"
)

// Status summarizes how a run ended
type Status int

const (
	// StatusNothingToDo means no change was attempted
	StatusNothingToDo Status = iota
	// StatusSwitched means every operation succeeded
	StatusSwitched
	// StatusFailed means an operation failed; the error is in Result.Err
	StatusFailed
	// StatusPlanned means a dry run listed the operations without applying them
	StatusPlanned
)

func (s Status) String() string {
	switch s {
	case StatusNothingToDo:
		return "nothing to do"
	case StatusSwitched:
		return "switched"
	case StatusFailed:
		return "failed"
	case StatusPlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// State is what Detect found on disk
type State struct {
	PluginPath string
	// RealPath is PluginPath with symlinks resolved
	RealPath string
	// IsSymlink is true when PluginPath is itself a symlink
	IsSymlink bool
	BundleID  string
	Version   string
	Vendor    vendor.Vendor
	// DisabledPresent is true when a parked bundle exists under the disabled directory
	DisabledPresent bool
	// MetadataErr holds the Info.plist error when the vendor could not be read
	MetadataErr error
}

// Result reports the outcome of Run
type Result struct {
	Status     Status
	From       vendor.Vendor
	To         vendor.Vendor
	Reason     string
	Operations []OperationResult
	// Err is the swallowed filesystem error when Status is StatusFailed
	Err error
}

// Options configures a Switcher
type Options struct {
	Layout    Layout
	FS        filesystem.FS
	Confirmer dialog.Confirmer
	Texts     dialog.Texts
	Logger    zerolog.Logger
	// Username is the console user, used in diagnostics
	Username string
	DryRun   bool
}

// Switcher performs plug-in switches
type Switcher struct {
	layout    Layout
	fs        filesystem.FS
	confirmer dialog.Confirmer
	texts     dialog.Texts
	logger    zerolog.Logger
	username  string
	dryRun    bool
}

// New creates a Switcher
func New(opts Options) *Switcher {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	confirmer := opts.Confirmer
	if confirmer == nil || opts.DryRun {
		confirmer = dialog.AutoApprove{}
	}
	return &Switcher{
		layout:    opts.Layout,
		fs:        fsys,
		confirmer: confirmer,
		texts:     opts.Texts,
		logger:    opts.Logger.With().Str("component", "switcher").Logger(),
		username:  opts.Username,
		dryRun:    opts.DryRun,
	}
}

// Detect inspects the plug-in directory without changing it.
// A missing plug-in bundle is an ErrPluginNotFound error. Unreadable bundle
// metadata is logged and yields an unknown vendor.
func (s *Switcher) Detect(ctx context.Context) (*State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pluginPath := s.layout.PluginPath()
	state := &State{PluginPath: pluginPath}

	if !filesystem.Exists(s.fs, pluginPath) {
		return nil, errors.Newf(errors.ErrPluginNotFound, "unable to locate %s in %s", s.layout.PluginName, s.layout.PluginsDir).
			WithDetail("path", pluginPath)
	}

	realPath, err := s.fs.EvalSymlinks(pluginPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFSOperation, "cannot resolve %s", pluginPath)
	}
	state.RealPath = realPath
	state.IsSymlink = filesystem.IsSymlink(s.fs, pluginPath)
	state.DisabledPresent = filesystem.IsDir(s.fs, s.layout.DisabledPluginPath())

	infoPlist := InfoPlistPath(realPath)
	bundle, err := plist.ReadBundle(s.fs, infoPlist)
	if bundle != nil {
		state.BundleID = bundle.Identifier
		state.Version = bundle.Version
	}
	if err != nil {
		state.MetadataErr = err
		s.logger.Warn().Err(err).Str("plist", infoPlist).Msg("Cannot read plug-in metadata")
	}
	state.Vendor = vendor.FromBundleIdentifier(state.BundleID)

	s.logger.Debug().
		Str("plugin", pluginPath).
		Str("realPath", realPath).
		Bool("symlink", state.IsSymlink).
		Str("bundleID", state.BundleID).
		Str("vendor", state.Vendor.String()).
		Bool("disabledPresent", state.DisabledPresent).
		Msg("Detected plug-in")

	return state, nil
}

// Plan returns the operations that switch away from the detected vendor.
// An empty plan comes with the reason nothing will happen.
func (s *Switcher) Plan(state *State) ([]Operation, string) {
	l := s.layout
	switch state.Vendor {
	case vendor.Oracle:
		return []Operation{
			{Type: MakeDir, Target: l.DisabledRoot()},
			{Type: Move, Source: state.PluginPath, Target: l.DisabledPluginPath()},
			{Type: CreateLink, Source: l.SystemPlugin, Target: state.PluginPath},
			// Enable Java 6 Web Start
			{Type: ReplaceLink, Source: l.JavawsAppleTarget, Target: l.JavawsPath},
		}, ""
	case vendor.Apple:
		if !state.DisabledPresent {
			return nil, "Unable to switch Java Web plugin version. Could not locate " + l.DisabledPluginPath() + "."
		}
		return []Operation{
			{Type: RemoveLink, Target: state.PluginPath},
			{Type: Move, Source: l.DisabledPluginPath(), Target: state.PluginPath},
			// Enable Java 7 Web Start
			{Type: ReplaceLink, Source: l.JavawsOracleTarget, Target: l.JavawsPath},
		}, ""
	default:
		return nil, "Unknown Java vendor: " + state.Vendor.String() + "."
	}
}

// Run detects the active plug-in, asks the user, and switches vendors.
//
// Returned errors:
//   - ErrPluginNotFound when the bundle does not exist; nothing is changed
//   - ErrHelperExec when the confirmation dialog cannot be shown
//   - ErrUserCancelled when the user declines; nothing is changed
//
// Filesystem failures during the switch are logged and reported through
// Result.Status == StatusFailed with a nil error.
func (s *Switcher) Run(ctx context.Context) (*Result, error) {
	state, err := s.Detect(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Plug-in detection failed")
		return nil, err
	}

	result := &Result{From: state.Vendor, To: state.Vendor.Counterpart()}

	if !state.Vendor.Known() {
		result.Reason = "Unknown Java vendor: " + state.Vendor.String() + "."
		s.logger.Warn().Str("vendor", state.Vendor.String()).Msg(result.Reason)
		return result, nil
	}

	req := dialog.SwitchRequest(s.texts, result.From, result.To)
	ok, err := s.confirmer.Confirm(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("Cannot ask for confirmation")
		return nil, err
	}
	if !ok {
		s.logger.Warn().Str("user", s.username).Msgf("%s cancelled the operation. Exiting now.", s.username)
		return nil, errors.Newf(errors.ErrUserCancelled, "%s cancelled the operation", s.username).
			WithDetail("user", s.username)
	}

	ops, reason := s.Plan(state)
	if len(ops) == 0 {
		result.Reason = reason
		s.logger.Warn().Msg(reason)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	executor := NewExecutor(s.fs, s.logger, s.dryRun)
	results, err := executor.Execute(ops)
	result.Operations = results
	switch {
	case err != nil:
		result.Status = StatusFailed
		result.Err = err
		s.logger.Error().Err(err).Msgf("Error: %v", err)
	case s.dryRun:
		result.Status = StatusPlanned
	default:
		result.Status = StatusSwitched
		s.logger.Info().
			Str("from", result.From.String()).
			Str("to", result.To.String()).
			Msg("Switched Java web plug-in")
	}
	return result, nil
}
