package javaswitch

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Switch the active Java web plug-in between Oracle and Apple"
	MsgRootLong  = `javaswitch swaps which vendor's Java browser plug-in is active.

It reads the bundle identifier of the installed JavaAppletPlugin.plugin and,
after the logged-in user confirms, either parks Oracle's plug-in under
"disabled/" and links Apple's Java 6 plug-in in its place, or restores the
parked Oracle plug-in. The Java Web Start launcher is relinked to match.

Diagnostics are appended to ~/Library/Logs/java_switcher.log of the console user.`
	MsgStatusShort     = "Show which Java web plug-in is active"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgDefaultsShort   = "Print the default configuration"
	MsgDefaultsLong    = "Print the built-in configuration as TOML. Save it as /Library/Preferences/javaswitch.toml and edit it to change paths or dialog wording."

	// Result messages
	MsgSwitchedFormat     = "Switched Java Web Plug-In from %s to %s.\n"
	MsgRestartBrowser     = "Restart your Web browser for the change to take effect."
	MsgDryRunNotice       = "\nDRY RUN MODE - No changes were made"
	MsgPlannedFormat      = "Would switch Java Web Plug-In from %s to %s:\n"
	MsgSwitchFailedFormat = "Switch from %s to %s failed: %v\n"
	MsgOperationItem      = "  ✓ %s\n"
	MsgPlannedItem        = "  • %s\n"
	MsgFailedItem         = "  ✗ %s\n"

	// Status output
	MsgStatusPlugin   = "Plug-in:   %s\n"
	MsgStatusResolved = "Resolves:  %s\n"
	MsgStatusVendor   = "Vendor:    %s\n"
	MsgStatusBundleID = "Bundle:    %s\n"
	MsgStatusVersion  = "Version:   %s\n"
	MsgStatusSymlink  = "Symlink:   %s\n"
	MsgStatusDisabled = "Disabled:  %s\n"
	MsgStatusMetadata = "Metadata:  %v\n"
	MsgStatusParked   = "Oracle plug-in parked at %s"
	MsgStatusNone     = "none"
	MsgYes            = "yes"
	MsgNo             = "no"

	// Version output
	MsgVersionFormat = "javaswitch version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Show the operations without asking or changing anything"
	MsgFlagConfig  = "Configuration file (TOML), layered over " + "/Library/Preferences/javaswitch.toml"
	MsgFlagConsole = "Ask on the terminal instead of through jamfHelper"
	MsgFlagUser    = "Act for this user instead of the console user"
	MsgFlagLogFile = "Write the diagnostic log to this file"
)
