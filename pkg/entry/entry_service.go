package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/internal/utils"
	"github.com/smartwork/smartwork/pkg/employee"
)

var (
	// ErrMonthLocked means the permission resolver denied edits for the
	// target month. Checked before any persistence call.
	ErrMonthLocked   = errors.New("month is locked for editing")
	ErrEntryNotFound = errors.New("entry not found")
	ErrNotManager    = errors.New("operation allowed only for managers")
)

// EditGate decides whether the target month of an employee can currently
// be modified by the caller. Implemented by the permission resolver.
type EditGate interface {
	CanEdit(ctx context.Context, employeeID string, month string) (bool, error)
}

type Service interface {
	// ListForMonth returns the viewed employee's entries for one month.
	ListForMonth(ctx context.Context, month string) ([]Entry, error)
	// ListForEmployee returns all of the viewed employee's entries.
	ListForEmployee(ctx context.Context) ([]Entry, error)
	// ListAllForMonth returns every employee's entries; manager only.
	ListAllForMonth(ctx context.Context, month string) ([]Entry, error)
	Add(ctx context.Context, entries []Entry) ([]Entry, error)
	// ReplaceDay overwrites the viewed employee's entries for one date with
	// the given set. An empty set clears the day.
	ReplaceDay(ctx context.Context, date string, entries []Entry) ([]Entry, error)
	Delete(ctx context.Context, id string) error
	// CopyLastDay duplicates the most recent logged day onto today,
	// overwriting any entries already logged today.
	CopyLastDay(ctx context.Context) ([]Entry, error)
}

type ServiceImpl struct {
	repo  EntryRepo
	gate  EditGate
	clock utils.Clock
}

func NewService(repo EntryRepo, gate EditGate, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, gate: gate, clock: clock}
}

func (s *ServiceImpl) ListForMonth(ctx context.Context, month string) ([]Entry, error) {
	targetID, err := employee.TargetID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current employee: %w", err)
	}
	return s.repo.ListForEmployee(ctx, targetID, month)
}

func (s *ServiceImpl) ListForEmployee(ctx context.Context) ([]Entry, error) {
	targetID, err := employee.TargetID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current employee: %w", err)
	}
	return s.repo.ListForEmployee(ctx, targetID, "")
}

func (s *ServiceImpl) ListAllForMonth(ctx context.Context, month string) ([]Entry, error) {
	current, err := employee.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current employee: %w", err)
	}
	if !current.IsManager() {
		return nil, ErrNotManager
	}
	return s.repo.ListAll(ctx, month)
}

func (s *ServiceImpl) Add(ctx context.Context, entries []Entry) ([]Entry, error) {
	targetID, err := employee.TargetID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current employee: %w", err)
	}

	prepared, err := s.prepare(targetID, entries)
	if err != nil {
		return nil, err
	}
	if len(prepared) == 0 {
		return nil, nil
	}

	for _, month := range distinctMonths(prepared) {
		if err := s.checkEditable(ctx, targetID, month); err != nil {
			return nil, err
		}
	}

	if err := s.repo.BulkInsert(ctx, prepared); err != nil {
		return nil, err
	}
	return prepared, nil
}

func (s *ServiceImpl) ReplaceDay(ctx context.Context, date string, entries []Entry) ([]Entry, error) {
	targetID, err := employee.TargetID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current employee: %w", err)
	}
	if len(date) < len(MonthFormat) {
		return nil, fmt.Errorf("invalid date: %q", date)
	}
	if err := s.checkEditable(ctx, targetID, date[:len(MonthFormat)]); err != nil {
		return nil, err
	}

	prepared, err := s.prepare(targetID, entries)
	if err != nil {
		return nil, err
	}
	for _, e := range prepared {
		if e.Date != date {
			return nil, fmt.Errorf("entry date %s does not match edited day %s", e.Date, date)
		}
	}

	if err := s.repo.ReplaceDay(ctx, targetID, date, prepared); err != nil {
		return nil, err
	}
	return prepared, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	targetID, err := employee.TargetID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current employee: %w", err)
	}

	entries, err := s.repo.ListForEmployee(ctx, targetID, "")
	if err != nil {
		return err
	}
	var found *Entry
	for i := range entries {
		if entries[i].ID == id {
			found = &entries[i]
			break
		}
	}
	if found == nil {
		return ErrEntryNotFound
	}
	if err := s.checkEditable(ctx, targetID, found.Date[:len(MonthFormat)]); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, targetID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}

func (s *ServiceImpl) CopyLastDay(ctx context.Context) ([]Entry, error) {
	targetID, err := employee.TargetID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current employee: %w", err)
	}

	all, err := s.repo.ListForEmployee(ctx, targetID, "")
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrEntryNotFound
	}
	// entries are ordered by date ascending, so the last one carries the
	// most recent logged day
	lastDate := all[len(all)-1].Date

	today := s.clock.Now().Format(DateFormat)
	if err := s.checkEditable(ctx, targetID, today[:len(MonthFormat)]); err != nil {
		return nil, err
	}

	var copied []Entry
	for _, e := range all {
		if e.Date != lastDate {
			continue
		}
		copied = append(copied, Entry{
			ID:          uuid.NewString(),
			EmployeeID:  targetID,
			Date:        today,
			Project:     e.Project,
			Description: e.Description,
			Hours:       e.Hours,
			Type:        e.Type,
		})
	}

	if err := s.repo.ReplaceDay(ctx, targetID, today, copied); err != nil {
		return nil, err
	}
	log.Debugf("copied %d entries from %s to %s for employee %s", len(copied), lastDate, today, targetID)
	return copied, nil
}

// prepare validates entries at the boundary and normalizes ownership and IDs.
// Zero-hour rows are filtered out rather than rejected, matching the entry
// form behavior.
func (s *ServiceImpl) prepare(employeeID string, entries []Entry) ([]Entry, error) {
	prepared := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Hours == 0 {
			continue
		}
		if e.Hours < 0 {
			return nil, fmt.Errorf("entry hours must be positive, got %v", e.Hours)
		}
		if !e.Type.Valid() {
			return nil, fmt.Errorf("unknown work type: %q", e.Type)
		}
		if e.Type.IsProductive() && e.Project == "" {
			return nil, fmt.Errorf("work type %q requires a project", e.Type)
		}
		if !e.Type.IsProductive() && e.Project != "" {
			return nil, fmt.Errorf("work type %q must not carry a project", e.Type)
		}
		if _, err := time.Parse(DateFormat, e.Date); err != nil {
			return nil, fmt.Errorf("invalid entry date: %q", e.Date)
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		e.EmployeeID = employeeID
		prepared = append(prepared, e)
	}
	return prepared, nil
}

func (s *ServiceImpl) checkEditable(ctx context.Context, employeeID string, month string) error {
	canEdit, err := s.gate.CanEdit(ctx, employeeID, month)
	if err != nil {
		return fmt.Errorf("failed to resolve edit permission: %w", err)
	}
	if !canEdit {
		log.Infof("edit denied for employee %s, month %s", employeeID, month)
		return ErrMonthLocked
	}
	return nil
}

func distinctMonths(entries []Entry) []string {
	seen := map[string]bool{}
	var months []string
	for _, e := range entries {
		month := e.Date[:len(MonthFormat)]
		if !seen[month] {
			seen[month] = true
			months = append(months, month)
		}
	}
	return months
}
