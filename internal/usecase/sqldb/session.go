package sqldb

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/ocf/api/pkg/db"
	"github.com/ocf/api/pkg/logger"
)

// SessionRepo persists workstation login sessions in the session table.
type SessionRepo struct {
	*db.SQL
	log logger.Interface
}

// NewSessionRepo -.
func NewSessionRepo(database *db.SQL, log logger.Interface) *SessionRepo {
	return &SessionRepo{database, log}
}

// OpenSession inserts a new open session row for (host, user).
func (r *SessionRepo) OpenSession(ctx context.Context, host, user string) error {
	sqlQuery, args, err := r.Builder.
		Insert("session").
		Columns("host", `"user"`, "start", "last_update").
		Values(host, user, squirrel.Expr("now()"), squirrel.Expr("now()")).
		ToSql()
	if err != nil {
		return DatabaseError{Op: "SessionRepo - OpenSession - Builder", Err: err}
	}

	if _, err = r.Pool.ExecContext(ctx, sqlQuery, args...); err != nil {
		return DatabaseError{Op: "SessionRepo - OpenSession - Exec", Err: err}
	}

	return nil
}

// SessionExists reports whether an open session exists for (host, user).
func (r *SessionRepo) SessionExists(ctx context.Context, host, user string) (bool, error) {
	sqlQuery, args, err := r.Builder.
		Select("COUNT(*)").
		From("session").
		Where(squirrel.Eq{"host": host, `"user"`: user, `"end"`: nil}).
		ToSql()
	if err != nil {
		return false, DatabaseError{Op: "SessionRepo - SessionExists - Builder", Err: err}
	}

	var count int
	if err = r.Pool.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return false, DatabaseError{Op: "SessionRepo - SessionExists - Scan", Err: err}
	}

	return count > 0, nil
}

// RefreshSession advances last_update on the open session for (host, user).
func (r *SessionRepo) RefreshSession(ctx context.Context, host, user string) error {
	sqlQuery, args, err := r.Builder.
		Update("session").
		Set("last_update", squirrel.Expr("now()")).
		Where(squirrel.Eq{"host": host, `"user"`: user, `"end"`: nil}).
		ToSql()
	if err != nil {
		return DatabaseError{Op: "SessionRepo - RefreshSession - Builder", Err: err}
	}

	if _, err = r.Pool.ExecContext(ctx, sqlQuery, args...); err != nil {
		return DatabaseError{Op: "SessionRepo - RefreshSession - Exec", Err: err}
	}

	return nil
}

// CloseSessions closes every open session for host. A host with nothing open
// is a no-op, not an error.
func (r *SessionRepo) CloseSessions(ctx context.Context, host string) error {
	sqlQuery, args, err := r.Builder.
		Update("session").
		Set(`"end"`, squirrel.Expr("now()")).
		Set("last_update", squirrel.Expr("now()")).
		Where(squirrel.Eq{"host": host, `"end"`: nil}).
		ToSql()
	if err != nil {
		return DatabaseError{Op: "SessionRepo - CloseSessions - Builder", Err: err}
	}

	if _, err = r.Pool.ExecContext(ctx, sqlQuery, args...); err != nil {
		return DatabaseError{Op: "SessionRepo - CloseSessions - Exec", Err: err}
	}

	return nil
}

// HostsInUse returns the hosts with an open session.
func (r *SessionRepo) HostsInUse(ctx context.Context) ([]string, error) {
	sqlQuery, _, err := r.Builder.
		Select("DISTINCT host").
		From("session").
		Where(`"end" IS NULL`).
		ToSql()
	if err != nil {
		return nil, DatabaseError{Op: "SessionRepo - HostsInUse - Builder", Err: err}
	}

	rows, err := r.Pool.QueryContext(ctx, sqlQuery)
	if err != nil {
		return nil, DatabaseError{Op: "SessionRepo - HostsInUse - Query", Err: err}
	}
	defer rows.Close()

	hosts := []string{}

	for rows.Next() {
		var host string
		if err := rows.Scan(&host); err != nil {
			return nil, DatabaseError{Op: "SessionRepo - HostsInUse - Scan", Err: err}
		}

		hosts = append(hosts, host)
	}

	if err := rows.Err(); err != nil {
		return nil, DatabaseError{Op: "SessionRepo - HostsInUse - Rows", Err: err}
	}

	return hosts, nil
}

// UsersInLab returns the number of distinct users with an open session.
func (r *SessionRepo) UsersInLab(ctx context.Context) (int, error) {
	sqlQuery, _, err := r.Builder.
		Select(`COUNT(DISTINCT "user")`).
		From("session").
		Where(`"end" IS NULL`).
		ToSql()
	if err != nil {
		return 0, DatabaseError{Op: "SessionRepo - UsersInLab - Builder", Err: err}
	}

	var count int
	if err = r.Pool.QueryRowContext(ctx, sqlQuery).Scan(&count); err != nil {
		return 0, DatabaseError{Op: "SessionRepo - UsersInLab - Scan", Err: err}
	}

	return count, nil
}
