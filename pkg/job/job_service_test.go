package job

import (
	"context"
	"testing"

	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func managerCtx() context.Context {
	return employee.WithReview(context.Background(), employee.ReviewContext{
		Employee: employee.Employee{ID: "mgr-1", Role: employee.RoleManager},
	})
}

func employeeCtx() context.Context {
	return employee.WithReview(context.Background(), employee.ReviewContext{
		Employee: employee.Employee{ID: "emp-1", Role: employee.RoleEmployee},
	})
}

func TestCreateJob(t *testing.T) {
	service := NewService(NewStubJobRepo())

	created, err := service.Create(managerCtx(), Job{Code: "ALF", Name: "Alfa"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
	assert.Equal(t, "Alfa", created.Name)
}

func TestCreateJobRequiresManager(t *testing.T) {
	service := NewService(NewStubJobRepo())

	_, err := service.Create(employeeCtx(), Job{Code: "ALF", Name: "Alfa"})

	assert.ErrorIs(t, err, ErrNotManager)
}

func TestCreateJobRequiresCodeAndName(t *testing.T) {
	service := NewService(NewStubJobRepo())

	_, err := service.Create(managerCtx(), Job{Code: " ", Name: "Alfa"})
	assert.ErrorIs(t, err, ErrInvalidJob)

	_, err = service.Create(managerCtx(), Job{Code: "ALF", Name: ""})
	assert.ErrorIs(t, err, ErrInvalidJob)
}

func TestGetAllFiltersInactive(t *testing.T) {
	service := NewService(NewStubJobRepo())
	created, err := service.Create(managerCtx(), Job{Code: "ALF", Name: "Alfa"})
	require.NoError(t, err)
	_, err = service.Create(managerCtx(), Job{Code: "BET", Name: "Beta"})
	require.NoError(t, err)
	require.NoError(t, service.SetActive(managerCtx(), created.ID, false))

	active, err := service.GetAll(employeeCtx(), false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Beta", active[0].Name)

	all, err := service.GetAll(employeeCtx(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetActiveUnknownJob(t *testing.T) {
	service := NewService(NewStubJobRepo())

	err := service.SetActive(managerCtx(), "missing", false)

	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestUpdateJob(t *testing.T) {
	service := NewService(NewStubJobRepo())
	created, err := service.Create(managerCtx(), Job{Code: "ALF", Name: "Alfa"})
	require.NoError(t, err)

	created.Name = "Alfa 2"
	updated, err := service.Update(managerCtx(), created)

	require.NoError(t, err)
	assert.Equal(t, "Alfa 2", updated.Name)
}
