package lock

import (
	"context"
	"testing"

	"github.com/smartwork/smartwork/internal/event_bus"
	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func managerCtx(id string) context.Context {
	return employee.WithReview(context.Background(), employee.ReviewContext{
		Employee: employee.Employee{ID: id, Role: employee.RoleManager},
	})
}

func employeeCtx(id string) context.Context {
	return employee.WithReview(context.Background(), employee.ReviewContext{
		Employee: employee.Employee{ID: id, Role: employee.RoleEmployee},
	})
}

func TestUnlockedByDefault(t *testing.T) {
	service := NewService(NewStubLockRepo(), event_bus.NewEventBus())

	locked, err := service.IsLocked(context.Background(), "2024-06")

	require.NoError(t, err)
	assert.False(t, locked)
}

func TestSetLockedPublishesEvent(t *testing.T) {
	bus := event_bus.NewEventBus()
	service := NewService(NewStubLockRepo(), bus)

	var published []event_bus.MonthLockChanged
	event_bus.SubscribeTyped(bus, event_bus.MonthLockToggled,
		func(e event_bus.EventT[event_bus.MonthLockChanged]) error {
			published = append(published, e.Data)
			return nil
		})

	l, err := service.SetLocked(managerCtx("mgr-1"), "2024-06", true)

	require.NoError(t, err)
	assert.True(t, l.Locked)
	assert.Equal(t, "mgr-1", l.ToggledBy)

	locked, err := service.IsLocked(context.Background(), "2024-06")
	require.NoError(t, err)
	assert.True(t, locked)

	require.Len(t, published, 1)
	assert.Equal(t, "2024-06", published[0].Month)
	assert.True(t, published[0].Locked)
}

func TestUnlockAgain(t *testing.T) {
	service := NewService(NewStubLockRepo(), event_bus.NewEventBus())
	_, err := service.SetLocked(managerCtx("mgr-1"), "2024-06", true)
	require.NoError(t, err)

	_, err = service.SetLocked(managerCtx("mgr-1"), "2024-06", false)
	require.NoError(t, err)

	locked, err := service.IsLocked(context.Background(), "2024-06")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestSetLockedRequiresManager(t *testing.T) {
	service := NewService(NewStubLockRepo(), event_bus.NewEventBus())

	_, err := service.SetLocked(employeeCtx("emp-1"), "2024-06", true)

	assert.ErrorIs(t, err, ErrNotManager)
}

func TestSetLockedRejectsMalformedMonth(t *testing.T) {
	service := NewService(NewStubLockRepo(), event_bus.NewEventBus())

	_, err := service.SetLocked(managerCtx("mgr-1"), "June 2024", true)

	assert.Error(t, err)
}

func TestListLocked(t *testing.T) {
	service := NewService(NewStubLockRepo(), event_bus.NewEventBus())
	_, err := service.SetLocked(managerCtx("mgr-1"), "2024-05", true)
	require.NoError(t, err)
	_, err = service.SetLocked(managerCtx("mgr-1"), "2024-04", true)
	require.NoError(t, err)
	_, err = service.SetLocked(managerCtx("mgr-1"), "2024-05", false)
	require.NoError(t, err)

	locks, err := service.ListLocked(context.Background())

	require.NoError(t, err)
	require.Len(t, locks, 1)
	assert.Equal(t, "2024-04", locks[0].Month)
}
