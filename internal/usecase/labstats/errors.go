package labstats

import (
	"errors"
	"fmt"
)

// ErrIPOutsideLab is returned for heartbeats from addresses outside the
// lab's networks. Rejected before any datastore access.
var ErrIPOutsideLab = errors.New("source address is not an OCF lab address")

// UnknownDesktopError is returned for in-range addresses that do not map to a
// registered workstation.
type UnknownDesktopError struct {
	IP string
}

func (e UnknownDesktopError) Error() string {
	return fmt.Sprintf("IP %s does not belong to a desktop", e.IP)
}
