package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/javaswitch/cmd/javaswitch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := javaswitch.NewRootCmd(javaswitch.Deps{})
	err := rootCmd.ExecuteContext(ctx)
	stop()

	// A cancelled switch is already logged
	if err != nil && !javaswitch.IsCancelled(err) {
		fmt.Fprintln(os.Stderr, javaswitch.FormatError(os.Stderr, err))
	}
	os.Exit(javaswitch.ExitCode(err))
}
