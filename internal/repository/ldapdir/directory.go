// Package ldapdir implements directory lookups against the OCF LDAP server.
package ldapdir

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/go-ldap/ldap/v3"

	"github.com/ocf/api/internal/entity"
	"github.com/ocf/api/pkg/logger"
)

// Directory queries hosts and accounts. Each call dials a fresh connection;
// callers are expected to cache results (directory data changes rarely).
type Directory struct {
	addr   string
	baseDN string
	log    logger.Interface
}

// New -.
func New(addr, baseDN string, log logger.Interface) *Directory {
	return &Directory{
		addr:   addr,
		baseDN: baseDN,
		log:    log,
	}
}

// Desktops lists registered lab workstations with their IPv4 addresses.
func (d *Directory) Desktops(ctx context.Context) ([]entity.Desktop, error) {
	conn, err := d.dial(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	req := ldap.NewSearchRequest(
		"ou=Hosts,"+d.baseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		"(type=desktop)",
		[]string{"cn", "ipHostNumber"},
		nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		return nil, fmt.Errorf("ldapdir - Desktops - Search: %w", err)
	}

	desktops := make([]entity.Desktop, 0, len(res.Entries))

	for _, e := range res.Entries {
		cn := e.GetAttributeValue("cn")

		addr, err := netip.ParseAddr(e.GetAttributeValue("ipHostNumber"))
		if err != nil {
			d.log.Warn("ldapdir - Desktops: host %s has unparseable address", cn)

			continue
		}

		desktops = append(desktops, entity.Desktop{Hostname: cn, IPv4: addr})
	}

	return desktops, nil
}

// IsGroupAccount reports whether username is a group account (group accounts
// carry a CalLink OID in the directory; personal accounts do not).
func (d *Directory) IsGroupAccount(ctx context.Context, username string) (bool, error) {
	conn, err := d.dial(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	req := ldap.NewSearchRequest(
		"ou=People,"+d.baseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 1, 0, false,
		fmt.Sprintf("(&(uid=%s)(callinkOid=*))", ldap.EscapeFilter(username)),
		[]string{"uid"},
		nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		return false, fmt.Errorf("ldapdir - IsGroupAccount - Search: %w", err)
	}

	return len(res.Entries) > 0, nil
}

func (d *Directory) dial(ctx context.Context) (*ldap.Conn, error) {
	conn, err := ldap.DialURL(d.addr)
	if err != nil {
		return nil, fmt.Errorf("ldapdir - dial: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetTimeout(time.Until(deadline))
	}

	return conn, nil
}
