package lock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type LockRepo interface {
	// Get returns the month's lock row; an absent row means unlocked.
	Get(ctx context.Context, month string) (GlobalLock, error)
	// ListLocked returns every currently locked month.
	ListLocked(ctx context.Context) ([]GlobalLock, error)
	Upsert(ctx context.Context, l GlobalLock) error
}

type LockRepoImpl struct {
	db *sql.DB
}

func NewLockRepo(db *sql.DB) *LockRepoImpl {
	return &LockRepoImpl{db: db}
}

func (r *LockRepoImpl) Get(ctx context.Context, month string) (GlobalLock, error) {
	var l GlobalLock
	err := r.db.QueryRowContext(ctx,
		`SELECT month, locked, toggled_by FROM global_lock WHERE month = $1`, month,
	).Scan(&l.Month, &l.Locked, &l.ToggledBy)
	if errors.Is(err, sql.ErrNoRows) {
		return GlobalLock{Month: month}, nil
	}
	if err != nil {
		err := fmt.Errorf("could not get lock for month %s: %w", month, err)
		log.Error(err)
		return GlobalLock{}, err
	}
	return l, nil
}

func (r *LockRepoImpl) ListLocked(ctx context.Context) ([]GlobalLock, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT month, locked, toggled_by FROM global_lock WHERE locked ORDER BY month`)
	if err != nil {
		err := fmt.Errorf("could not query locked months: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var locks []GlobalLock
	for rows.Next() {
		var l GlobalLock
		if err := rows.Scan(&l.Month, &l.Locked, &l.ToggledBy); err != nil {
			err := fmt.Errorf("could not scan lock: %w", err)
			log.Error(err)
			return nil, err
		}
		locks = append(locks, l)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return locks, nil
}

func (r *LockRepoImpl) Upsert(ctx context.Context, l GlobalLock) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO global_lock (month, locked, toggled_by) VALUES ($1, $2, $3)
		 ON CONFLICT (month) DO UPDATE SET locked = EXCLUDED.locked, toggled_by = EXCLUDED.toggled_by`,
		l.Month, l.Locked, l.ToggledBy,
	)
	if err != nil {
		err := fmt.Errorf("could not upsert lock for month %s: %w", l.Month, err)
		log.Error(err)
		return err
	}
	return nil
}
