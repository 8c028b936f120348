package sqldb

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ocf/api/pkg/db"
	"github.com/ocf/api/pkg/logger"
)

// QuotaRepo reads print accounting rows for paper quota calculations.
type QuotaRepo struct {
	*db.SQL
	log logger.Interface
}

// NewQuotaRepo -.
func NewQuotaRepo(database *db.SQL, log logger.Interface) *QuotaRepo {
	return &QuotaRepo{database, log}
}

// PagesPrinted returns the pages user printed today and since semesterStart.
func (r *QuotaRepo) PagesPrinted(ctx context.Context, user string, semesterStart time.Time) (today, semester int, err error) {
	sqlQuery, args, err := r.Builder.
		Select(
			"COALESCE(SUM(pages) FILTER (WHERE printed_at >= date_trunc('day', now())), 0)",
			"COALESCE(SUM(pages), 0)",
		).
		From("printed").
		Where(squirrel.Eq{`"user"`: user}).
		Where(squirrel.GtOrEq{"printed_at": semesterStart}).
		ToSql()
	if err != nil {
		return 0, 0, DatabaseError{Op: "QuotaRepo - PagesPrinted - Builder", Err: err}
	}

	if err := r.Pool.QueryRowContext(ctx, sqlQuery, args...).Scan(&today, &semester); err != nil {
		return 0, 0, DatabaseError{Op: "QuotaRepo - PagesPrinted - Scan", Err: err}
	}

	return today, semester, nil
}
