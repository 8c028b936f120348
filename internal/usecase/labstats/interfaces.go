// Package labstats tracks workstation login sessions and lab usage statistics.
package labstats

import (
	"context"

	"github.com/ocf/api/internal/entity"
)

type (
	// SessionRepository persists workstation login sessions. The datastore is
	// the sole owner of session state; nothing is cached across requests.
	SessionRepository interface {
		// OpenSession inserts a new open session row for (host, user).
		OpenSession(ctx context.Context, host, user string) error
		// SessionExists reports whether an open session exists for (host, user).
		SessionExists(ctx context.Context, host, user string) (bool, error)
		// RefreshSession advances last_update on the open session for (host, user).
		RefreshSession(ctx context.Context, host, user string) error
		// CloseSessions closes every open session for host. Closing with
		// nothing open is a no-op.
		CloseSessions(ctx context.Context, host string) error
		// HostsInUse returns the hosts with an open session.
		HostsInUse(ctx context.Context) ([]string, error)
		// UsersInLab returns the number of distinct users with an open session.
		UsersInLab(ctx context.Context) (int, error)
	}

	// DesktopDirectory lists registered lab workstations from the directory
	// service.
	DesktopDirectory interface {
		Desktops(ctx context.Context) ([]entity.Desktop, error)
	}
)
