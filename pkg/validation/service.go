package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/smartwork/smartwork/pkg/entry"
)

// EntriesReader is the narrow read surface this package needs from the
// entry service.
type EntriesReader interface {
	ListForMonth(ctx context.Context, month string) ([]entry.Entry, error)
}

type Service interface {
	// ForMonth validates the viewed employee's timesheet for the given
	// YYYY-MM month.
	ForMonth(ctx context.Context, month string) ([]Issue, error)
}

type ServiceImpl struct {
	entries   EntriesReader
	validator *Validator
}

func NewService(entries EntriesReader, validator *Validator) *ServiceImpl {
	return &ServiceImpl{entries: entries, validator: validator}
}

func (s *ServiceImpl) ForMonth(ctx context.Context, month string) ([]Issue, error) {
	monthStart, err := time.Parse(entry.MonthFormat, month)
	if err != nil {
		return nil, fmt.Errorf("invalid month: %q", month)
	}

	entries, err := s.entries.ListForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	return s.validator.ValidateMonth(entries, monthStart.Year(), monthStart.Month()), nil
}
