// Package consoleuser determines the user logged into the graphical session.
//
// The switcher normally runs as root from a management agent, so the process
// identity says nothing about who is sitting at the machine. Providers
// abstract that lookup so commands and tests can substitute their own.
package consoleuser

import (
	"os/user"

	"github.com/arthur-debert/javaswitch/pkg/errors"
)

// ConsoleDevice is the device node owned by the logged-in user on macOS
const ConsoleDevice = "/dev/console"

// User is the subset of account information the switcher needs
type User struct {
	Username string
	HomeDir  string
}

// Provider resolves the console user
type Provider interface {
	ConsoleUser() (*User, error)
}

// Func adapts a plain function to the Provider interface
type Func func() (*User, error)

// ConsoleUser calls f
func (f Func) ConsoleUser() (*User, error) {
	return f()
}

// Static always returns the same user
type Static User

// ConsoleUser returns a copy of the static user
func (s Static) ConsoleUser() (*User, error) {
	u := User(s)
	return &u, nil
}

// ProcessProvider returns the user the process runs as
type ProcessProvider struct{}

// ConsoleUser returns the current process user
func (ProcessProvider) ConsoleUser() (*User, error) {
	u, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConsoleUser, "cannot determine current user")
	}
	return fromOSUser(u), nil
}

// Named looks up a user by login name, for explicit overrides
type Named string

// ConsoleUser resolves the named account
func (n Named) ConsoleUser() (*User, error) {
	u, err := user.Lookup(string(n))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConsoleUser, "unknown user %q", string(n))
	}
	return fromOSUser(u), nil
}

// Select returns the console device provider for root and the process
// provider for everyone else
func Select(euid int) Provider {
	if euid == 0 {
		return ConsoleDeviceProvider{Device: ConsoleDevice}
	}
	return ProcessProvider{}
}

// Auto selects a provider based on the effective uid of this process
func Auto() Provider {
	return Select(effectiveUID())
}

func fromOSUser(u *user.User) *User {
	return &User{Username: u.Username, HomeDir: u.HomeDir}
}
