//go:build unix

package consoleuser

import (
	"os/user"
	"strconv"

	"github.com/arthur-debert/javaswitch/pkg/errors"
	"golang.org/x/sys/unix"
)

// ConsoleDeviceProvider reports the owner of a console device node
type ConsoleDeviceProvider struct {
	Device string
}

// ConsoleUser stats the device and resolves its owning uid
func (p ConsoleDeviceProvider) ConsoleUser() (*User, error) {
	device := p.Device
	if device == "" {
		device = ConsoleDevice
	}

	var st unix.Stat_t
	if err := unix.Stat(device, &st); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConsoleUser, "cannot stat %s", device)
	}

	uid := strconv.FormatUint(uint64(st.Uid), 10)
	u, err := user.LookupId(uid)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConsoleUser, "no account for uid %s owning %s", uid, device)
	}
	return fromOSUser(u), nil
}

func effectiveUID() int {
	return unix.Geteuid()
}
