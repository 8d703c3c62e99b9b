package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotManager = errors.New("operation allowed only for managers")
	ErrInvalidPin = errors.New("invalid pin")
)

type Service interface {
	GetAll(ctx context.Context, includeInactive bool) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (bool, error)
	SetPin(ctx context.Context, id string, pin string) error
	// VerifyPin checks the given PIN against the stored hash. Employees with
	// no PIN set accept any PIN (matching the original switch-user flow).
	VerifyPin(ctx context.Context, id string, pin string) (Employee, error)
}

type ServiceImpl struct {
	repo EmployeeRepo
}

func NewService(repo EmployeeRepo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context, includeInactive bool) ([]Employee, error) {
	return s.repo.GetAll(ctx, includeInactive)
}

func (s *ServiceImpl) GetByID(ctx context.Context, id string) (Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ServiceImpl) Create(ctx context.Context, emp Employee) (Employee, error) {
	if err := requireManager(ctx); err != nil {
		return Employee{}, err
	}
	if emp.Name == "" {
		return Employee{}, fmt.Errorf("employee name must not be empty")
	}
	if emp.Role != RoleManager && emp.Role != RoleEmployee {
		return Employee{}, fmt.Errorf("unknown role: %q", emp.Role)
	}
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	emp.Active = true
	if err := s.repo.Store(ctx, emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *ServiceImpl) Update(ctx context.Context, emp Employee) (bool, error) {
	if err := requireManager(ctx); err != nil {
		return false, err
	}
	updated, err := s.repo.Update(ctx, emp)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("employee not updated, probably because it does not exist (%s)", emp.ID)
		return false, ErrEmployeeNotFound
	}
	return true, nil
}

func (s *ServiceImpl) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	if err := requireManager(ctx); err != nil {
		return false, err
	}
	return s.repo.SetActive(ctx, id, active)
}

func (s *ServiceImpl) SetPin(ctx context.Context, id string, pin string) error {
	current, err := Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current employee: %w", err)
	}
	// An employee may set their own PIN; managers may set anyone's.
	if current.Employee.ID != id && !current.IsManager() {
		return ErrNotManager
	}

	if pin == "" {
		_, err := s.repo.SetPinHash(ctx, id, "")
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash pin: %w", err)
	}
	_, err = s.repo.SetPinHash(ctx, id, string(hash))
	return err
}

func (s *ServiceImpl) VerifyPin(ctx context.Context, id string, pin string) (Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	if !emp.Active {
		return Employee{}, ErrEmployeeNotFound
	}
	if emp.PinHash == "" {
		return emp, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PinHash), []byte(pin)); err != nil {
		log.Debugf("pin mismatch for employee %s", id)
		return Employee{}, ErrInvalidPin
	}
	return emp, nil
}

func requireManager(ctx context.Context) error {
	current, err := Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current employee: %w", err)
	}
	if !current.IsManager() {
		return ErrNotManager
	}
	return nil
}
