package entity

import "net/netip"

// Desktop is one physical lab workstation as registered in the directory.
type Desktop struct {
	Hostname string
	IPv4     netip.Addr
}
