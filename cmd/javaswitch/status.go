package javaswitch

import (
	"fmt"
	"io"

	"github.com/arthur-debert/javaswitch/pkg/switcher"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			state, err := a.newSwitcher(true).Detect(cmd.Context())
			if err != nil {
				logFailure(a.logger("cmd.status"), err)
				return err
			}
			printStatus(cmd.OutOrStdout(), a.cfg.Paths, state)
			return nil
		},
	}
}

// printStatus writes what Detect found
func printStatus(w io.Writer, layout switcher.Layout, state *switcher.State) {
	fmt.Fprintf(w, MsgStatusPlugin, formatBold(w, state.PluginPath))
	if state.RealPath != state.PluginPath {
		fmt.Fprintf(w, MsgStatusResolved, state.RealPath)
	}
	fmt.Fprintf(w, MsgStatusVendor, formatVendor(w, state.Vendor))
	if state.BundleID != "" {
		fmt.Fprintf(w, MsgStatusBundleID, state.BundleID)
	}
	if state.Version != "" {
		fmt.Fprintf(w, MsgStatusVersion, state.Version)
	}
	if state.MetadataErr != nil {
		fmt.Fprintf(w, MsgStatusMetadata, state.MetadataErr)
	}
	fmt.Fprintf(w, MsgStatusSymlink, yesNo(state.IsSymlink))

	disabled := MsgStatusNone
	if state.DisabledPresent {
		disabled = fmt.Sprintf(MsgStatusParked, layout.DisabledPluginPath())
	}
	fmt.Fprintf(w, MsgStatusDisabled, disabled)
}

func yesNo(b bool) string {
	if b {
		return MsgYes
	}
	return MsgNo
}
