package javaswitch

import (
	"io"
	"os"

	"github.com/arthur-debert/javaswitch/pkg/vendor"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

var (
	vendorStyles = map[vendor.Vendor]lipgloss.Style{
		vendor.Oracle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E76F00")),
		vendor.Apple:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A2AAAD")),
	}
	unknownStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	// ErrorStyle renders fatal errors on stderr
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// render applies style only when w is a terminal
func render(w io.Writer, style lipgloss.Style, s string) string {
	if !isTerminal(w) {
		return s
	}
	return style.Render(s)
}

// formatVendor returns the vendor display name styled for w
func formatVendor(w io.Writer, v vendor.Vendor) string {
	style, ok := vendorStyles[v]
	if !ok {
		style = unknownStyle
	}
	return render(w, style, v.DisplayName())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(w io.Writer, s string) string {
	if !isTerminal(w) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// FormatError renders err for stderr
func FormatError(w io.Writer, err error) string {
	return render(w, ErrorStyle, "Error: "+err.Error())
}
