package entry

import (
	"context"
	"testing"
	"time"

	"github.com/smartwork/smartwork/internal/utils"
	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/stretchr/testify/assert"
)

type stubGate struct {
	allowed bool
}

func (g *stubGate) CanEdit(ctx context.Context, employeeID string, month string) (bool, error) {
	return g.allowed, nil
}

func setupService(t *testing.T, allowed bool) (*ServiceImpl, *StubEntryRepo, context.Context) {
	t.Helper()
	repo := NewStubEntryRepo()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.June, 14, 10, 0, 0, 0, time.UTC)}
	service := NewService(repo, &stubGate{allowed: allowed}, clock)
	ctx := employee.WithReview(context.Background(), employee.ReviewContext{
		Employee: employee.Employee{ID: "emp-1", Name: "Petr Svoboda", Role: employee.RoleEmployee, Active: true},
	})
	return service, repo, ctx
}

func TestServiceImpl_Add(t *testing.T) {
	service, repo, ctx := setupService(t, true)

	created, err := service.Add(ctx, []Entry{
		{Date: "2024-06-03", Project: "Web Redesign", Description: "API", Hours: 8, Type: WorkRegular},
		{Date: "2024-06-04", Description: "", Hours: 8, Type: WorkVacation},
	})

	assert.NoError(t, err)
	assert.Len(t, created, 2)
	assert.NotEmpty(t, created[0].ID)
	assert.Equal(t, "emp-1", created[0].EmployeeID)

	stored, _ := repo.ListForEmployee(ctx, "emp-1", "2024-06")
	assert.Len(t, stored, 2)
}

func TestServiceImpl_Add_FiltersZeroHourRows(t *testing.T) {
	service, repo, ctx := setupService(t, true)

	created, err := service.Add(ctx, []Entry{
		{Date: "2024-06-03", Project: "Web Redesign", Hours: 0, Type: WorkRegular},
		{Date: "2024-06-03", Project: "Web Redesign", Hours: 4, Type: WorkRegular},
	})

	assert.NoError(t, err)
	assert.Len(t, created, 1)
	stored, _ := repo.ListForEmployee(ctx, "emp-1", "")
	assert.Len(t, stored, 1)
}

func TestServiceImpl_Add_RejectsMalformedEntries(t *testing.T) {
	service, _, ctx := setupService(t, true)

	// negative hours
	_, err := service.Add(ctx, []Entry{{Date: "2024-06-03", Project: "P", Hours: -1, Type: WorkRegular}})
	assert.Error(t, err)

	// productive type without project
	_, err = service.Add(ctx, []Entry{{Date: "2024-06-03", Hours: 8, Type: WorkRegular}})
	assert.Error(t, err)

	// absence type with project
	_, err = service.Add(ctx, []Entry{{Date: "2024-06-03", Project: "P", Hours: 8, Type: WorkVacation}})
	assert.Error(t, err)

	// unknown type
	_, err = service.Add(ctx, []Entry{{Date: "2024-06-03", Hours: 8, Type: "Volno"}})
	assert.Error(t, err)

	// malformed date
	_, err = service.Add(ctx, []Entry{{Date: "3.6.2024", Project: "P", Hours: 8, Type: WorkRegular}})
	assert.Error(t, err)
}

func TestServiceImpl_Add_DeniedWhenLocked(t *testing.T) {
	service, repo, ctx := setupService(t, false)

	_, err := service.Add(ctx, []Entry{{Date: "2024-06-03", Project: "P", Hours: 8, Type: WorkRegular}})

	assert.ErrorIs(t, err, ErrMonthLocked)
	stored, _ := repo.ListForEmployee(ctx, "emp-1", "")
	assert.Empty(t, stored)
}

func TestServiceImpl_ReplaceDay(t *testing.T) {
	service, repo, ctx := setupService(t, true)
	_, err := service.Add(ctx, []Entry{
		{Date: "2024-06-03", Project: "Web Redesign", Hours: 4, Type: WorkRegular},
		{Date: "2024-06-03", Project: "Intranet", Hours: 4, Type: WorkRegular},
	})
	assert.NoError(t, err)

	stored, err := service.ReplaceDay(ctx, "2024-06-03", []Entry{
		{Date: "2024-06-03", Project: "Web Redesign", Hours: 8, Type: WorkRegular},
	})

	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	all, _ := repo.ListForEmployee(ctx, "emp-1", "")
	assert.Len(t, all, 1)
	assert.Equal(t, 8.0, all[0].Hours)
}

func TestServiceImpl_ReplaceDay_EmptySetClearsDay(t *testing.T) {
	service, repo, ctx := setupService(t, true)
	_, _ = service.Add(ctx, []Entry{{Date: "2024-06-03", Project: "P", Hours: 8, Type: WorkRegular}})

	stored, err := service.ReplaceDay(ctx, "2024-06-03", nil)

	assert.NoError(t, err)
	assert.Empty(t, stored)
	all, _ := repo.ListForEmployee(ctx, "emp-1", "")
	assert.Empty(t, all)
}

func TestServiceImpl_ReplaceDay_RejectsMismatchedDates(t *testing.T) {
	service, _, ctx := setupService(t, true)

	_, err := service.ReplaceDay(ctx, "2024-06-03", []Entry{
		{Date: "2024-06-04", Project: "P", Hours: 8, Type: WorkRegular},
	})

	assert.Error(t, err)
}

func TestServiceImpl_Delete(t *testing.T) {
	service, _, ctx := setupService(t, true)
	created, _ := service.Add(ctx, []Entry{{Date: "2024-06-03", Project: "P", Hours: 8, Type: WorkRegular}})

	err := service.Delete(ctx, created[0].ID)
	assert.NoError(t, err)

	err = service.Delete(ctx, created[0].ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestServiceImpl_CopyLastDay(t *testing.T) {
	service, repo, ctx := setupService(t, true)
	_, _ = service.Add(ctx, []Entry{
		{Date: "2024-06-10", Project: "Web Redesign", Description: "API", Hours: 6, Type: WorkRegular},
		{Date: "2024-06-10", Project: "Intranet", Description: "Review", Hours: 2, Type: WorkRegular},
		{Date: "2024-06-03", Project: "Web Redesign", Hours: 8, Type: WorkRegular},
	})

	copied, err := service.CopyLastDay(ctx)

	assert.NoError(t, err)
	assert.Len(t, copied, 2)
	today, _ := repo.ListForEmployee(ctx, "emp-1", "2024-06")
	var todayCount int
	for _, e := range today {
		if e.Date == "2024-06-14" {
			todayCount++
		}
	}
	assert.Equal(t, 2, todayCount)
}

func TestServiceImpl_ListAllForMonth_ManagerOnly(t *testing.T) {
	service, _, ctx := setupService(t, true)

	_, err := service.ListAllForMonth(ctx, "2024-06")
	assert.ErrorIs(t, err, ErrNotManager)

	mgrCtx := employee.WithReview(context.Background(), employee.ReviewContext{
		Employee: employee.Employee{ID: "mgr-1", Role: employee.RoleManager, Active: true},
	})
	_, err = service.ListAllForMonth(mgrCtx, "2024-06")
	assert.NoError(t, err)
}
