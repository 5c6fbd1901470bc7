//go:build !unix

package consoleuser

import (
	"os"

	"github.com/arthur-debert/javaswitch/pkg/errors"
)

// ConsoleDeviceProvider reports the owner of a console device node
type ConsoleDeviceProvider struct {
	Device string
}

// ConsoleUser is not supported without a unix console device
func (p ConsoleDeviceProvider) ConsoleUser() (*User, error) {
	return nil, errors.New(errors.ErrConsoleUser, "console device ownership is only available on unix")
}

func effectiveUID() int {
	return os.Geteuid()
}
