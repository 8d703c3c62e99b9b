package permission

import (
	"context"

	"github.com/smartwork/smartwork/pkg/approval"
	"github.com/smartwork/smartwork/pkg/employee"
)

// CanEdit decides whether a month is editable. The global lock is absolute;
// a submitted or approved status locks the month for the employee but a
// manager may still edit.
func CanEdit(globalLocked bool, statusLocked bool, managerOverride bool) bool {
	if globalLocked {
		return false
	}
	if statusLocked && !managerOverride {
		return false
	}
	return true
}

// LockChecker is the read surface needed from the lock service.
type LockChecker interface {
	IsLocked(ctx context.Context, month string) (bool, error)
}

// StatusReader is the read surface needed from the approval store.
type StatusReader interface {
	Get(ctx context.Context, employeeID string, month string) (approval.MonthStatus, error)
}

// Resolver combines the global lock, the approval status and the caller's
// role into the single edit decision the entry service gates on.
type Resolver struct {
	locks    LockChecker
	statuses StatusReader
}

func NewResolver(locks LockChecker, statuses StatusReader) *Resolver {
	return &Resolver{locks: locks, statuses: statuses}
}

func (r *Resolver) CanEdit(ctx context.Context, employeeID string, month string) (bool, error) {
	rc, err := employee.Current(ctx)
	if err != nil {
		return false, err
	}

	globalLocked, err := r.locks.IsLocked(ctx, month)
	if err != nil {
		return false, err
	}

	status, err := r.statuses.Get(ctx, employeeID, month)
	if err != nil {
		return false, err
	}

	return CanEdit(globalLocked, status.Locked(), rc.ManagerOverride()), nil
}
