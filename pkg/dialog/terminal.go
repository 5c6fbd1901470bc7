package dialog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Terminal asks for confirmation on the controlling terminal.
// It is the fallback when no notification helper is installed.
type Terminal struct {
	Out io.Writer
	// Prompt asks a yes/no question. Defaults to pterm's interactive confirm.
	Prompt func(question string) (bool, error)
}

// NewTerminal creates a terminal confirmer writing to stderr
func NewTerminal() *Terminal {
	return &Terminal{Out: os.Stderr, Prompt: ptermPrompt}
}

// Confirm prints the request and waits for an answer
func (t *Terminal) Confirm(ctx context.Context, req Request) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	out := t.Out
	if out == nil {
		out = os.Stderr
	}
	prompt := t.Prompt
	if prompt == nil {
		prompt = ptermPrompt
	}

	fmt.Fprintln(out, pterm.Bold.Sprint(req.Heading))
	fmt.Fprintln(out, req.Description)
	fmt.Fprintln(out)

	return prompt(fmt.Sprintf("%s / %s", req.OKLabel, req.CancelLabel))
}

func ptermPrompt(question string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultText(question).
		WithDefaultValue(false).
		Show()
}
