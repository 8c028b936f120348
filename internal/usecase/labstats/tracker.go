package labstats

import (
	"context"
	"net/netip"

	"github.com/ocf/api/pkg/logger"
)

// SessionState is the state reported by a workstation heartbeat.
type SessionState string

const (
	StateActive  SessionState = "active"
	StateCleanup SessionState = "cleanup"
)

// Tracker maintains per-host login session state from workstation heartbeats.
// It holds no state of its own between requests; a race between two
// near-simultaneous pings for the same host is accepted as self-correcting
// because heartbeats repeat every minute.
type Tracker struct {
	repo     SessionRepository
	registry *DesktopRegistry
	networks []netip.Prefix
	log      logger.Interface
}

// NewTracker -.
func NewTracker(repo SessionRepository, registry *DesktopRegistry, networks []netip.Prefix, log logger.Interface) *Tracker {
	return &Tracker{
		repo:     repo,
		registry: registry,
		networks: networks,
		log:      log,
	}
}

// LogSession applies one heartbeat. Transitions per host:
//
//   - active with a user and no open session: open a new one (defensively
//     closing anything stale first)
//   - active with the same user: refresh last_update
//   - active with a different user: close, then open for the new user
//   - cleanup, or active with no user: close any open session (idempotent)
//
// The source address must be inside the lab networks (ErrIPOutsideLab,
// checked before touching the datastore) and must map to a registered
// workstation (UnknownDesktopError).
func (t *Tracker) LogSession(ctx context.Context, remote netip.Addr, state SessionState, user string) error {
	if !t.inLabNetwork(remote) {
		return ErrIPOutsideLab
	}

	host, err := t.registry.Resolve(ctx, remote)
	if err != nil {
		return err
	}

	if host == "" {
		return UnknownDesktopError{IP: remote.String()}
	}

	if state == StateCleanup || user == "" {
		// sessions are also swept periodically by an out-of-band cron job
		return t.repo.CloseSessions(ctx, host)
	}

	exists, err := t.repo.SessionExists(ctx, host, user)
	if err != nil {
		return err
	}

	if exists {
		return t.repo.RefreshSession(ctx, host, user)
	}

	// close must be issued before open so host never has two open rows
	if err := t.repo.CloseSessions(ctx, host); err != nil {
		return err
	}

	return t.repo.OpenSession(ctx, host, user)
}

func (t *Tracker) inLabNetwork(addr netip.Addr) bool {
	addr = addr.Unmap()

	for _, n := range t.networks {
		if n.Contains(addr) {
			return true
		}
	}

	return false
}
