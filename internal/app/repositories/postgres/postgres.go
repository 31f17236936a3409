// Package postgres implements the repository contract on a pgx connection
// pool. Skill and membership sets are array columns, so the idempotent
// set-insertions are single guarded UPDATEs.
package postgres

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumlink/alumlink/internal/app/repositories"
)

// Options tunes store behavior.
type Options struct {
	// StrictCapacity switches the RSVP path to a single conditional UPDATE,
	// closing the check-then-insert window on capacity-limited events. Off by
	// default: two near-simultaneous RSVPs at the capacity edge can then both
	// land, matching the unguarded read-modify-write behavior.
	StrictCapacity bool
}

// psql builds queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type userRepo struct{ db *pgxpool.Pool }
type jobRepo struct{ db *pgxpool.Pool }
type eventRepo struct {
	db             *pgxpool.Pool
	strictCapacity bool
}
type postRepo struct{ db *pgxpool.Pool }
type bookingRepo struct{ db *pgxpool.Pool }

// New wraps a connection pool in the repository container.
func New(db *pgxpool.Pool, opts Options) *repositories.Store {
	return repositories.NewStore("postgres",
		&userRepo{db: db},
		&jobRepo{db: db},
		&eventRepo{db: db, strictCapacity: opts.StrictCapacity},
		&postRepo{db: db},
		&bookingRepo{db: db},
		db.Close,
	)
}
