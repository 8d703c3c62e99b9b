package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/internal/event_bus"
	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/smartwork/smartwork/pkg/entry"
)

var ErrNotManager = errors.New("only a manager can toggle the month lock")

type Service interface {
	IsLocked(ctx context.Context, month string) (bool, error)
	// ListLocked returns the months currently under a global lock.
	ListLocked(ctx context.Context) ([]GlobalLock, error)
	// SetLocked toggles the global lock for a month. Manager only.
	SetLocked(ctx context.Context, month string, locked bool) (GlobalLock, error)
}

type ServiceImpl struct {
	repo LockRepo
	bus  *event_bus.EventBus
}

func NewService(repo LockRepo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) IsLocked(ctx context.Context, month string) (bool, error) {
	l, err := s.repo.Get(ctx, month)
	if err != nil {
		return false, err
	}
	return l.Locked, nil
}

func (s *ServiceImpl) ListLocked(ctx context.Context) ([]GlobalLock, error) {
	return s.repo.ListLocked(ctx)
}

func (s *ServiceImpl) SetLocked(ctx context.Context, month string, locked bool) (GlobalLock, error) {
	rc, err := employee.Current(ctx)
	if err != nil {
		return GlobalLock{}, err
	}
	if !rc.IsManager() {
		log.Error(ErrNotManager)
		return GlobalLock{}, ErrNotManager
	}
	if _, err := time.Parse(entry.MonthFormat, month); err != nil {
		return GlobalLock{}, fmt.Errorf("invalid month: %q", month)
	}

	l := GlobalLock{Month: month, Locked: locked, ToggledBy: rc.Employee.ID}
	if err := s.repo.Upsert(ctx, l); err != nil {
		return GlobalLock{}, err
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.MonthLockToggled, event_bus.MonthLockChanged{
		Month:     month,
		Locked:    locked,
		ToggledBy: rc.Employee.ID,
	})); err != nil {
		log.Warnf("could not publish lock event: %v", err)
	}
	return l, nil
}
