// Package dialog asks the console user to confirm a plug-in switch.
package dialog

import (
	"context"
	"fmt"

	"github.com/arthur-debert/javaswitch/pkg/vendor"
)

// Texts holds the configurable wording of the confirmation dialog.
// DescriptionFormat receives the old and new vendor display names.
type Texts struct {
	Title             string `koanf:"title"`
	Heading           string `koanf:"heading"`
	DescriptionFormat string `koanf:"description"`
	Icon              string `koanf:"icon"`
	OKLabel           string `koanf:"ok_label"`
	CancelLabel       string `koanf:"cancel_label"`
}

// DefaultTexts returns the stock dialog wording
func DefaultTexts() Texts {
	return Texts{
		Title:   "Java Web Plug-In Switcher",
		Heading: "Switch Java Web Plug-In?",
		DescriptionFormat: "You are switching from %s's Java Plug-In to %s's Java Plug-In. " +
			"Are you sure you want to continue? " +
			"You'll need to restart your Web browser for the changes to take effect.",
		Icon:        "/Library/Application Support/JAMF/bin/jamfHelper.app/Contents/Resources/Message.png",
		OKLabel:     "OK",
		CancelLabel: "Cancel",
	}
}

// Request is a fully rendered confirmation dialog
type Request struct {
	Title       string
	Heading     string
	Description string
	Icon        string
	OKLabel     string
	CancelLabel string
}

// SwitchRequest renders the dialog for switching from one vendor to another
func SwitchRequest(texts Texts, from, to vendor.Vendor) Request {
	return Request{
		Title:       texts.Title,
		Heading:     texts.Heading,
		Description: fmt.Sprintf(texts.DescriptionFormat, from.DisplayName(), to.DisplayName()),
		Icon:        texts.Icon,
		OKLabel:     texts.OKLabel,
		CancelLabel: texts.CancelLabel,
	}
}

// Confirmer shows a request and reports whether the user accepted it
type Confirmer interface {
	Confirm(ctx context.Context, req Request) (bool, error)
}

// AutoApprove accepts every request without asking. Only used for dry runs.
type AutoApprove struct{}

// Confirm always returns true
func (AutoApprove) Confirm(context.Context, Request) (bool, error) {
	return true, nil
}
