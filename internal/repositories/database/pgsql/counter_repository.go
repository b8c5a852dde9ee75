package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tandoorlabs/pos-backend/internal/apperrors"
	portsrepo "github.com/tandoorlabs/pos-backend/internal/core/ports/repositories"
)

type PgxCounterRepository struct {
	BaseRepository
}

// newPgxCounterRepository creates a new repository for named monotonic
// counters backed by the meta table.
func newPgxCounterRepository(pool *pgxpool.Pool) portsrepo.CounterRepository {
	return &PgxCounterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CounterRepository = (*PgxCounterRepository)(nil)

// NextValue atomically increments the named counter and returns the new
// value. The first call for a name returns 1. Allocation is not rolled
// back if the caller's subsequent write fails, so gaps can occur; the
// counter only guarantees uniqueness and monotonicity.
func (r *PgxCounterRepository) NextValue(ctx context.Context, name string) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	var raw string
	err = tx.QueryRow(ctx, `SELECT value FROM meta WHERE key = $1 FOR UPDATE;`, name).Scan(&raw)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		raw = ""
	case err != nil:
		return 0, apperrors.NewAppError(500, "failed to read counter "+name, err)
	}

	next := ParseCounterValue(raw) + 1

	query := `
		INSERT INTO meta (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
	`
	if _, err := tx.Exec(ctx, query, name, strconv.FormatInt(next, 10)); err != nil {
		return 0, apperrors.NewAppError(500, "failed to store counter "+name, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return next, nil
}

// ParseCounterValue converts a stored counter value to an integer. A
// missing, empty, or corrupt value parses as 0 so the next allocation
// restarts the sequence instead of failing.
func ParseCounterValue(raw string) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
