// Package db implements the connection to the stats database.
package db

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

const (
	_defaultMaxPoolSize  = 2
	_defaultConnAttempts = 5
	_defaultConnTimeout  = time.Second
)

// SQL holds the database handle and the shared statement builder.
type SQL struct {
	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration

	Builder squirrel.StatementBuilderType
	Pool    *sql.DB
}

// New -.
func New(url string, opts ...Option) (*SQL, error) {
	s := &SQL{
		maxPoolSize:  _defaultMaxPoolSize,
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	// Custom options
	for _, opt := range opts {
		opt(s)
	}

	s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	pool, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(s.maxPoolSize)

	for s.connAttempts > 0 {
		err = pool.Ping()
		if err == nil {
			break
		}

		time.Sleep(s.connTimeout)

		s.connAttempts--
	}

	if err != nil {
		_ = pool.Close()

		return nil, err
	}

	s.Pool = pool

	return s, nil
}

// Close -.
func (s *SQL) Close() {
	if s.Pool != nil {
		_ = s.Pool.Close()
	}
}
