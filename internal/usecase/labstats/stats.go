package labstats

import (
	"context"
	"strings"

	"github.com/ocf/api/internal/cache"
)

// Stats answers lab usage queries (desktops in use, users in lab) from the
// open-session rows, with a short cache in front of the hot path.
type Stats struct {
	repo         SessionRepository
	dir          DesktopDirectory
	cache        *cache.Cache
	domainSuffix string
}

// NewStats -.
func NewStats(repo SessionRepository, dir DesktopDirectory, c *cache.Cache, domainSuffix string) *Stats {
	return &Stats{
		repo:         repo,
		dir:          dir,
		cache:        c,
		domainSuffix: domainSuffix,
	}
}

// DesktopUsage summarizes which workstations currently have an open session.
type DesktopUsage struct {
	InUse []string
	Total int
}

// DesktopUsage -.
func (s *Stats) DesktopUsage(ctx context.Context) (DesktopUsage, error) {
	inUse, err := s.hostsInUse(ctx)
	if err != nil {
		return DesktopUsage{}, err
	}

	desktops, err := s.dir.Desktops(ctx)
	if err != nil {
		return DesktopUsage{}, err
	}

	return DesktopUsage{InUse: inUse, Total: len(desktops)}, nil
}

// UsersInLab returns the number of distinct users with an open session.
func (s *Stats) UsersInLab(ctx context.Context) (int, error) {
	return s.repo.UsersInLab(ctx)
}

func (s *Stats) hostsInUse(ctx context.Context) ([]string, error) {
	if cached, ok := s.cache.Get(cache.KeyDesktopsInUse); ok {
		if hosts, ok := cached.([]string); ok {
			return hosts, nil
		}
	}

	fqdns, err := s.repo.HostsInUse(ctx)
	if err != nil {
		return nil, err
	}

	hosts := make([]string, 0, len(fqdns))
	for _, fqdn := range fqdns {
		hosts = append(hosts, strings.TrimSuffix(fqdn, "."+s.domainSuffix))
	}

	s.cache.Set(cache.KeyDesktopsInUse, hosts, cache.DesktopsInUseTTL)

	return hosts, nil
}
