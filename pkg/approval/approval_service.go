package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/internal/event_bus"
	"github.com/smartwork/smartwork/internal/utils"
	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/smartwork/smartwork/pkg/validation"
)

var (
	ErrNotManager      = errors.New("only a manager can perform this action")
	ErrCommentRequired = errors.New("a rejection requires a comment")
)

// InvalidTransitionError reports a transition the state machine forbids.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move timesheet from %s to %s", e.From, e.To)
}

// ValidationGateError blocks a submit that still has error-severity issues.
// The caller may repeat the submit with force once the user confirms.
type ValidationGateError struct {
	Issues []validation.Issue
}

func (e *ValidationGateError) Error() string {
	return fmt.Sprintf("timesheet has %d validation errors", validation.ErrorCount(e.Issues))
}

type Service interface {
	// Status returns the viewed employee's status for the month, DRAFT when
	// none was recorded yet.
	Status(ctx context.Context, month string) (MonthStatus, error)
	// ListForMonth returns every employee's status for the month. Manager only.
	ListForMonth(ctx context.Context, month string) ([]MonthStatus, error)
	// Submit moves the viewed employee's month to SUBMITTED. Unless force is
	// set, error-severity validation issues abort with ValidationGateError.
	Submit(ctx context.Context, month string, force bool) (MonthStatus, error)
	// Approve moves a SUBMITTED month to APPROVED. Manager only.
	Approve(ctx context.Context, employeeID string, month string) (MonthStatus, error)
	// Reject moves a SUBMITTED month back to REJECTED with a mandatory
	// comment. Manager only.
	Reject(ctx context.Context, employeeID string, month string, comment string) (MonthStatus, error)
}

type ServiceImpl struct {
	repo      ApprovalRepo
	validator validation.Service
	bus       *event_bus.EventBus
	clock     utils.Clock
}

func NewService(repo ApprovalRepo, validator validation.Service, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, validator: validator, bus: bus, clock: clock}
}

func (s *ServiceImpl) Status(ctx context.Context, month string) (MonthStatus, error) {
	employeeID, err := employee.TargetID(ctx)
	if err != nil {
		return MonthStatus{}, err
	}
	return s.repo.Get(ctx, employeeID, month)
}

func (s *ServiceImpl) ListForMonth(ctx context.Context, month string) ([]MonthStatus, error) {
	rc, err := employee.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !rc.IsManager() {
		log.Error(ErrNotManager)
		return nil, ErrNotManager
	}
	return s.repo.ListForMonth(ctx, month)
}

func (s *ServiceImpl) Submit(ctx context.Context, month string, force bool) (MonthStatus, error) {
	rc, err := employee.Current(ctx)
	if err != nil {
		return MonthStatus{}, err
	}
	employeeID, err := employee.TargetID(ctx)
	if err != nil {
		return MonthStatus{}, err
	}

	current, err := s.repo.Get(ctx, employeeID, month)
	if err != nil {
		return MonthStatus{}, err
	}
	if current.Status != StatusDraft && current.Status != StatusRejected {
		return MonthStatus{}, &InvalidTransitionError{From: current.Status, To: StatusSubmitted}
	}

	if !force {
		issues, err := s.validator.ForMonth(ctx, month)
		if err != nil {
			return MonthStatus{}, err
		}
		if validation.ErrorCount(issues) > 0 {
			return MonthStatus{}, &ValidationGateError{Issues: issues}
		}
	}

	now := s.clock.Now()
	// A resubmission after rejection keeps the manager's comment; only a
	// later review overwrites it.
	status := MonthStatus{
		EmployeeID:     employeeID,
		Month:          month,
		Status:         StatusSubmitted,
		ManagerComment: current.ManagerComment,
		SubmittedAt:    &now,
	}
	if err := s.repo.Upsert(ctx, status); err != nil {
		return MonthStatus{}, err
	}

	s.publish(ctx, event_bus.TimesheetSubmitted, event_bus.TimesheetStatusChanged{
		EmployeeID: employeeID,
		Month:      month,
		ActorID:    rc.Employee.ID,
	})
	return status, nil
}

func (s *ServiceImpl) Approve(ctx context.Context, employeeID string, month string) (MonthStatus, error) {
	return s.review(ctx, employeeID, month, StatusApproved, "")
}

func (s *ServiceImpl) Reject(ctx context.Context, employeeID string, month string, comment string) (MonthStatus, error) {
	if strings.TrimSpace(comment) == "" {
		return MonthStatus{}, ErrCommentRequired
	}
	return s.review(ctx, employeeID, month, StatusRejected, comment)
}

func (s *ServiceImpl) review(ctx context.Context, employeeID string, month string, to Status, comment string) (MonthStatus, error) {
	rc, err := employee.Current(ctx)
	if err != nil {
		return MonthStatus{}, err
	}
	if !rc.IsManager() {
		log.Error(ErrNotManager)
		return MonthStatus{}, ErrNotManager
	}

	current, err := s.repo.Get(ctx, employeeID, month)
	if err != nil {
		return MonthStatus{}, err
	}
	if current.Status != StatusSubmitted {
		return MonthStatus{}, &InvalidTransitionError{From: current.Status, To: to}
	}

	status := current
	status.Status = to
	status.ManagerComment = comment
	if to == StatusApproved {
		now := s.clock.Now()
		status.ApprovedAt = &now
	} else {
		status.ApprovedAt = nil
	}
	if err := s.repo.Upsert(ctx, status); err != nil {
		return MonthStatus{}, err
	}

	eventType := event_bus.TimesheetApproved
	if to == StatusRejected {
		eventType = event_bus.TimesheetRejected
	}
	s.publish(ctx, eventType, event_bus.TimesheetStatusChanged{
		EmployeeID: employeeID,
		Month:      month,
		ActorID:    rc.Employee.ID,
		Comment:    comment,
	})
	return status, nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, payload event_bus.TimesheetStatusChanged) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, payload)); err != nil {
		log.Warnf("could not publish %s event: %v", eventType, err)
	}
}
