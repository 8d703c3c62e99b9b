package approval

import (
	"context"
	"sort"
)

type StubApprovalRepo struct {
	data map[string]MonthStatus
}

func NewStubApprovalRepo() *StubApprovalRepo {
	return &StubApprovalRepo{data: map[string]MonthStatus{}}
}

func (s *StubApprovalRepo) Get(ctx context.Context, employeeID string, month string) (MonthStatus, error) {
	if status, ok := s.data[employeeID+"/"+month]; ok {
		return status, nil
	}
	return MonthStatus{EmployeeID: employeeID, Month: month, Status: StatusDraft}, nil
}

func (s *StubApprovalRepo) ListForMonth(ctx context.Context, month string) ([]MonthStatus, error) {
	var statuses []MonthStatus
	for _, status := range s.data {
		if status.Month == month {
			statuses = append(statuses, status)
		}
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].EmployeeID < statuses[j].EmployeeID
	})
	return statuses, nil
}

func (s *StubApprovalRepo) Upsert(ctx context.Context, status MonthStatus) error {
	s.data[status.EmployeeID+"/"+status.Month] = status
	return nil
}
