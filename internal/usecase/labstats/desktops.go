package labstats

import (
	"context"
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/ocf/api/internal/cache"
)

// DesktopRegistry maps source addresses (IPv4 and the lab's synthesized IPv6
// form) to workstation hostnames. Directory answers are cached for ten
// minutes.
type DesktopRegistry struct {
	dir          DesktopDirectory
	cache        *cache.Cache
	domainSuffix string
	v4Net        netip.Prefix
	v6Net        netip.Prefix
}

// NewDesktopRegistry -.
func NewDesktopRegistry(dir DesktopDirectory, c *cache.Cache, domainSuffix string, v4Net, v6Net netip.Prefix) *DesktopRegistry {
	return &DesktopRegistry{
		dir:          dir,
		cache:        c,
		domainSuffix: domainSuffix,
		v4Net:        v4Net,
		v6Net:        v6Net,
	}
}

// Resolve returns the workstation hostname registered for addr, or "" when
// the address does not belong to any desktop.
func (r *DesktopRegistry) Resolve(ctx context.Context, addr netip.Addr) (string, error) {
	mapping, err := r.mapping(ctx)
	if err != nil {
		return "", err
	}

	return mapping[addr.Unmap()], nil
}

func (r *DesktopRegistry) mapping(ctx context.Context) (map[netip.Addr]string, error) {
	if cached, ok := r.cache.Get(cache.KeyDesktopRegistry); ok {
		if m, ok := cached.(map[netip.Addr]string); ok {
			return m, nil
		}
	}

	desktops, err := r.dir.Desktops(ctx)
	if err != nil {
		return nil, fmt.Errorf("labstats - DesktopRegistry.mapping: %w", err)
	}

	mapping := make(map[netip.Addr]string, 2*len(desktops))

	for _, d := range desktops {
		fqdn := d.Hostname + "." + r.domainSuffix
		mapping[d.IPv4] = fqdn

		if v6, ok := r.synthesizeV6(d.IPv4); ok {
			mapping[v6] = fqdn
		}
	}

	r.cache.Set(cache.KeyDesktopRegistry, mapping, cache.DesktopRegistryTTL)

	return mapping, nil
}

// Desktop IPv6 addresses live in the ::1:0/112 slice of the lab v6 network.
const _v6HostSegment = 0x10000

// synthesizeV6 derives the lab IPv6 address for a lab IPv4 address: the host
// offset within the v4 network, carried into the low bits of the v6 network.
func (r *DesktopRegistry) synthesizeV6(v4 netip.Addr) (netip.Addr, bool) {
	if !r.v4Net.Contains(v4) || !r.v6Net.IsValid() {
		return netip.Addr{}, false
	}

	offset := binary.BigEndian.Uint32(addrBytes4(v4)) - binary.BigEndian.Uint32(addrBytes4(r.v4Net.Addr()))

	base := r.v6Net.Addr().As16()
	low := binary.BigEndian.Uint32(base[12:16]) + _v6HostSegment + offset
	binary.BigEndian.PutUint32(base[12:16], low)

	return netip.AddrFrom16(base), true
}

func addrBytes4(a netip.Addr) []byte {
	b := a.As4()

	return b[:]
}
