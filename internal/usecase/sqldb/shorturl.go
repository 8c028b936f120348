package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/ocf/api/pkg/db"
	"github.com/ocf/api/pkg/logger"
)

// ShorturlRepo resolves shorturl slugs to their targets.
type ShorturlRepo struct {
	*db.SQL
	log logger.Interface
}

// NewShorturlRepo -.
func NewShorturlRepo(database *db.SQL, log logger.Interface) *ShorturlRepo {
	return &ShorturlRepo{database, log}
}

// Target returns the redirect target for slug. NotFoundError when absent.
func (r *ShorturlRepo) Target(ctx context.Context, slug string) (string, error) {
	sqlQuery, args, err := r.Builder.
		Select("target").
		From("shorturl").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return "", DatabaseError{Op: "ShorturlRepo - Target - Builder", Err: err}
	}

	var target string

	err = r.Pool.QueryRowContext(ctx, sqlQuery, args...).Scan(&target)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", NotFoundError{Op: "ShorturlRepo - Target"}
	case err != nil:
		return "", DatabaseError{Op: "ShorturlRepo - Target - Scan", Err: err}
	}

	return target, nil
}
