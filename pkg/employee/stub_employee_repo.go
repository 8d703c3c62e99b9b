package employee

import "context"

type StubEmployeeRepo struct {
	data map[string]Employee
}

func NewStubEmployeeRepo() *StubEmployeeRepo {
	return &StubEmployeeRepo{data: map[string]Employee{}}
}

func (s *StubEmployeeRepo) Store(ctx context.Context, emp Employee) error {
	s.data[emp.ID] = emp
	return nil
}

func (s *StubEmployeeRepo) GetAll(ctx context.Context, includeInactive bool) ([]Employee, error) {
	employees := make([]Employee, 0, len(s.data))
	for _, emp := range s.data {
		if emp.Active || includeInactive {
			employees = append(employees, emp)
		}
	}
	return employees, nil
}

func (s *StubEmployeeRepo) GetByID(ctx context.Context, id string) (Employee, error) {
	emp, ok := s.data[id]
	if !ok {
		return Employee{}, ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *StubEmployeeRepo) Update(ctx context.Context, emp Employee) (bool, error) {
	stored, ok := s.data[emp.ID]
	if !ok {
		return false, nil
	}
	emp.Active = stored.Active
	emp.PinHash = stored.PinHash
	s.data[emp.ID] = emp
	return true, nil
}

func (s *StubEmployeeRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	emp, ok := s.data[id]
	if !ok {
		return false, nil
	}
	emp.Active = active
	s.data[id] = emp
	return true, nil
}

func (s *StubEmployeeRepo) SetPinHash(ctx context.Context, id string, pinHash string) (bool, error) {
	emp, ok := s.data[id]
	if !ok {
		return false, nil
	}
	emp.PinHash = pinHash
	s.data[id] = emp
	return true, nil
}

func (s *StubEmployeeRepo) Cleanup() {
	s.data = map[string]Employee{}
}
