package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func managerCtx() context.Context {
	return WithReview(context.Background(), ReviewContext{
		Employee: Employee{ID: "mgr-1", Name: "Jana Nováková", Role: RoleManager, Active: true},
	})
}

func employeeCtx(id string) context.Context {
	return WithReview(context.Background(), ReviewContext{
		Employee: Employee{ID: id, Name: "Petr Svoboda", Role: RoleEmployee, Active: true},
	})
}

func TestServiceImpl_Create(t *testing.T) {
	repo := NewStubEmployeeRepo()
	service := NewService(repo)

	created, err := service.Create(managerCtx(), Employee{Name: "Petr Svoboda", Role: RoleEmployee})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)

	stored, err := repo.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Petr Svoboda", stored.Name)
}

func TestServiceImpl_Create_RejectsNonManager(t *testing.T) {
	service := NewService(NewStubEmployeeRepo())

	_, err := service.Create(employeeCtx("emp-1"), Employee{Name: "X", Role: RoleEmployee})

	assert.ErrorIs(t, err, ErrNotManager)
}

func TestServiceImpl_Create_RejectsUnknownRole(t *testing.T) {
	service := NewService(NewStubEmployeeRepo())

	_, err := service.Create(managerCtx(), Employee{Name: "X", Role: "admin"})

	assert.Error(t, err)
}

func TestServiceImpl_SetPin_AndVerify(t *testing.T) {
	repo := NewStubEmployeeRepo()
	service := NewService(repo)
	_ = repo.Store(context.Background(), Employee{ID: "emp-1", Name: "Petr Svoboda", Role: RoleEmployee, Active: true})

	err := service.SetPin(employeeCtx("emp-1"), "emp-1", "1234")
	assert.NoError(t, err)

	emp, err := service.VerifyPin(context.Background(), "emp-1", "1234")
	assert.NoError(t, err)
	assert.Equal(t, "emp-1", emp.ID)

	_, err = service.VerifyPin(context.Background(), "emp-1", "9999")
	assert.ErrorIs(t, err, ErrInvalidPin)
}

func TestServiceImpl_SetPin_RejectsForeignPinChange(t *testing.T) {
	repo := NewStubEmployeeRepo()
	service := NewService(repo)
	_ = repo.Store(context.Background(), Employee{ID: "emp-2", Name: "Other", Role: RoleEmployee, Active: true})

	err := service.SetPin(employeeCtx("emp-1"), "emp-2", "1234")

	assert.ErrorIs(t, err, ErrNotManager)
}

func TestServiceImpl_VerifyPin_NoPinSetAcceptsAny(t *testing.T) {
	repo := NewStubEmployeeRepo()
	service := NewService(repo)
	_ = repo.Store(context.Background(), Employee{ID: "emp-1", Name: "Petr Svoboda", Role: RoleEmployee, Active: true})

	emp, err := service.VerifyPin(context.Background(), "emp-1", "anything")

	assert.NoError(t, err)
	assert.Equal(t, "emp-1", emp.ID)
}

func TestServiceImpl_VerifyPin_InactiveEmployee(t *testing.T) {
	repo := NewStubEmployeeRepo()
	service := NewService(repo)
	_ = repo.Store(context.Background(), Employee{ID: "emp-1", Role: RoleEmployee, Active: false})

	_, err := service.VerifyPin(context.Background(), "emp-1", "1234")

	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
