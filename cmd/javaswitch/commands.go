package javaswitch

import (
	"fmt"
	"io"

	"github.com/arthur-debert/javaswitch/internal/version"
	"github.com/arthur-debert/javaswitch/pkg/config"
	"github.com/arthur-debert/javaswitch/pkg/consoleuser"
	"github.com/arthur-debert/javaswitch/pkg/dialog"
	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/arthur-debert/javaswitch/pkg/execx"
	"github.com/arthur-debert/javaswitch/pkg/filesystem"
	"github.com/arthur-debert/javaswitch/pkg/logging"
	"github.com/arthur-debert/javaswitch/pkg/switcher"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Deps are the collaborators the commands use. Zero values select the real
// system implementations.
type Deps struct {
	FS        filesystem.FS
	Runner    execx.Runner
	Confirmer dialog.Confirmer
	Users     consoleuser.Provider
	// SystemConfig overrides config.SystemConfigPath
	SystemConfig string
}

// app holds flag values and the state built in PersistentPreRunE
type app struct {
	deps Deps

	verbosity  int
	dryRun     bool
	configFile string
	console    bool
	username   string
	logFile    string

	cfg  *config.Config
	user *consoleuser.User
	log  *logging.Handle
}

// NewRootCmd creates and returns the root command
func NewRootCmd(deps Deps) *cobra.Command {
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:     "javaswitch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			return a.runSwitch(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.username, "user", "", MsgFlagUser)
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", MsgFlagLogFile)
	rootCmd.Flags().BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&a.console, "console", false, MsgFlagConsole)

	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDefaultsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads configuration, resolves the console user and initializes logging
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("console") {
		overrides["dialog.console"] = a.console
	}
	if a.logFile != "" {
		overrides["log.file"] = a.logFile
	}

	cfg, err := config.Load(config.LoadOptions{
		SystemFile: a.deps.SystemConfig,
		File:       a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	users := a.deps.Users
	switch {
	case a.username != "":
		users = consoleuser.Named(a.username)
	case users == nil:
		users = consoleuser.Auto()
	}
	u, userErr := users.ConsoleUser()

	logPath := cfg.Log.File
	if logPath == "" {
		home := ""
		if userErr == nil {
			home = u.HomeDir
		}
		logPath = logging.UserLogPath(home)
	}

	a.close()
	a.log = logging.Setup(logging.Options{
		Verbosity: a.verbosity,
		FilePath:  logPath,
		Console:   cmd.ErrOrStderr(),
		NoColor:   !isTerminal(cmd.ErrOrStderr()),
	})

	if userErr != nil {
		if a.username != "" {
			return userErr
		}
		a.log.Logger.Warn().Err(userErr).Msg("Cannot determine the console user")
		u = &consoleuser.User{Username: "unknown"}
	}
	a.user = u

	logging.LogCommand(a.logger("cmd"), cmd.CommandPath(), cmd.Flags().Args())
	return nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}

func (a *app) logger(component string) zerolog.Logger {
	return logging.GetLogger(component)
}

// logFailure records err with its code and details in the diagnostic log
func logFailure(logger zerolog.Logger, err error) {
	logger.Error().
		Err(err).
		Str("code", string(errors.GetErrorCode(err))).
		Fields(errors.GetErrorDetails(err)).
		Msg("Command failed")
}

func (a *app) fileSystem() filesystem.FS {
	if a.deps.FS != nil {
		return a.deps.FS
	}
	return filesystem.NewOS()
}

// confirmer returns the injected confirmer or selects one from configuration
func (a *app) confirmer() dialog.Confirmer {
	if a.deps.Confirmer != nil {
		return a.deps.Confirmer
	}

	logger := a.logger("dialog")
	runner := a.deps.Runner
	if runner == nil {
		runner = execx.NewOSRunner(logger)
	}
	c := dialog.Select(dialog.SelectOptions{
		HelperPath:   a.cfg.Dialog.Helper,
		ForceConsole: a.cfg.Dialog.Console,
		Runner:       runner,
		Logger:       logger,
	})
	if j, ok := c.(*dialog.JamfHelper); ok {
		j.WindowType = a.cfg.Dialog.WindowType
		j.Timeout = a.cfg.Dialog.Timeout
	}
	return c
}

func (a *app) newSwitcher(dryRun bool) *switcher.Switcher {
	opts := switcher.Options{
		Layout:   a.cfg.Paths,
		FS:       a.fileSystem(),
		Texts:    a.cfg.Dialog.Text,
		Logger:   a.log.Logger,
		Username: a.user.Username,
		DryRun:   dryRun,
	}
	if !dryRun {
		opts.Confirmer = a.confirmer()
	}
	return switcher.New(opts)
}

// runSwitch performs the switch and prints its outcome
func (a *app) runSwitch(cmd *cobra.Command) error {
	logger := a.logger("cmd.switch")
	done := logging.LogOperationStart(logger, "switch")
	defer done()

	logger.Info().
		Bool("dryRun", a.dryRun).
		Str("user", a.user.Username).
		Str("plugin", a.cfg.Paths.PluginPath()).
		Msg("Starting switch")

	result, err := a.newSwitcher(a.dryRun).Run(cmd.Context())
	if err != nil {
		if !IsCancelled(err) {
			logFailure(logger, err)
		}
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// printResult writes a human summary of a switch
func printResult(w io.Writer, result *switcher.Result) {
	from := formatVendor(w, result.From)
	to := formatVendor(w, result.To)

	switch result.Status {
	case switcher.StatusSwitched:
		fmt.Fprintf(w, MsgSwitchedFormat, from, to)
		for _, r := range result.Operations {
			fmt.Fprintf(w, MsgOperationItem, r.Operation)
		}
		fmt.Fprintln(w, render(w, successStyle, MsgRestartBrowser))
	case switcher.StatusPlanned:
		fmt.Fprintf(w, MsgPlannedFormat, from, to)
		for _, r := range result.Operations {
			fmt.Fprintf(w, MsgPlannedItem, r.Operation)
		}
		fmt.Fprintln(w, MsgDryRunNotice)
	case switcher.StatusFailed:
		fmt.Fprintf(w, MsgSwitchFailedFormat, from, to, result.Err)
		for _, r := range result.Operations {
			if r.Success {
				fmt.Fprintf(w, MsgOperationItem, r.Operation)
			} else {
				fmt.Fprintf(w, MsgFailedItem, r.Operation)
			}
		}
	default:
		fmt.Fprintln(w, render(w, warnStyle, result.Reason))
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		// Skip config and logging so version works on a broken setup
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: MsgDefaultsShort,
		Long:  MsgDefaultsLong,
		Args:  cobra.NoArgs,
		// Skip config and logging so a broken config file can be replaced
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(javaswitch completion bash)

Zsh:
  $ javaswitch completion zsh > "${fpath[1]}/_javaswitch"

Fish:
  $ javaswitch completion fish | source

PowerShell:
  PS> javaswitch completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		PersistentPreRun:      func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
