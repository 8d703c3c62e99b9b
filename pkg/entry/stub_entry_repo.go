package entry

import (
	"context"
	"sort"
	"strings"
)

type StubEntryRepo struct {
	data map[string]Entry
}

func NewStubEntryRepo() *StubEntryRepo {
	return &StubEntryRepo{data: map[string]Entry{}}
}

func (s *StubEntryRepo) ListForEmployee(ctx context.Context, employeeID string, monthPrefix string) ([]Entry, error) {
	var entries []Entry
	for _, e := range s.data {
		if e.EmployeeID != employeeID {
			continue
		}
		if monthPrefix != "" && !strings.HasPrefix(e.Date, monthPrefix+"-") {
			continue
		}
		entries = append(entries, e)
	}
	sortByDate(entries)
	return entries, nil
}

func (s *StubEntryRepo) ListAll(ctx context.Context, monthPrefix string) ([]Entry, error) {
	var entries []Entry
	for _, e := range s.data {
		if monthPrefix != "" && !strings.HasPrefix(e.Date, monthPrefix+"-") {
			continue
		}
		entries = append(entries, e)
	}
	sortByDate(entries)
	return entries, nil
}

func (s *StubEntryRepo) BulkInsert(ctx context.Context, entries []Entry) error {
	for _, e := range entries {
		s.data[e.ID] = e
	}
	return nil
}

func (s *StubEntryRepo) ReplaceDay(ctx context.Context, employeeID string, date string, entries []Entry) error {
	for id, e := range s.data {
		if e.EmployeeID == employeeID && e.Date == date {
			delete(s.data, id)
		}
	}
	return s.BulkInsert(ctx, entries)
}

func (s *StubEntryRepo) DeleteByID(ctx context.Context, employeeID string, id string) (bool, error) {
	e, ok := s.data[id]
	if !ok || e.EmployeeID != employeeID {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubEntryRepo) Cleanup() {
	s.data = map[string]Entry{}
}

func sortByDate(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].ID < entries[j].ID
	})
}
