package approval

import (
	"context"
	"testing"
	"time"

	"github.com/smartwork/smartwork/internal/event_bus"
	"github.com/smartwork/smartwork/internal/utils"
	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/smartwork/smartwork/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	issues []validation.Issue
}

func (s *stubValidator) ForMonth(ctx context.Context, month string) ([]validation.Issue, error) {
	return s.issues, nil
}

func employeeCtx(id string) context.Context {
	return employee.WithReview(context.Background(), employee.ReviewContext{
		Employee: employee.Employee{ID: id, Role: employee.RoleEmployee},
	})
}

func managerCtx(id string) context.Context {
	return employee.WithReview(context.Background(), employee.ReviewContext{
		Employee: employee.Employee{ID: id, Role: employee.RoleManager},
	})
}

func newTestService(issues []validation.Issue) (*ServiceImpl, *StubApprovalRepo, *event_bus.EventBus) {
	repo := NewStubApprovalRepo()
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)}
	return NewService(repo, &stubValidator{issues: issues}, bus, clock), repo, bus
}

func TestStatusDefaultsToDraft(t *testing.T) {
	service, _, _ := newTestService(nil)

	status, err := service.Status(employeeCtx("emp-1"), "2024-06")

	require.NoError(t, err)
	assert.Equal(t, StatusDraft, status.Status)
	assert.Equal(t, "emp-1", status.EmployeeID)
}

func TestSubmitFromDraft(t *testing.T) {
	service, repo, bus := newTestService(nil)

	var published []event_bus.TimesheetStatusChanged
	event_bus.SubscribeTyped(bus, event_bus.TimesheetSubmitted,
		func(e event_bus.EventT[event_bus.TimesheetStatusChanged]) error {
			published = append(published, e.Data)
			return nil
		})

	status, err := service.Submit(employeeCtx("emp-1"), "2024-06", false)

	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, status.Status)
	require.NotNil(t, status.SubmittedAt)
	assert.Equal(t, time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC), *status.SubmittedAt)

	stored, err := repo.Get(context.Background(), "emp-1", "2024-06")
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, stored.Status)

	require.Len(t, published, 1)
	assert.Equal(t, "emp-1", published[0].EmployeeID)
	assert.Equal(t, "2024-06", published[0].Month)
}

func TestSubmitBlockedByValidationErrors(t *testing.T) {
	issues := []validation.Issue{
		{Date: "2024-06-03", Severity: validation.SeverityError, Type: validation.IssueMissingDay},
	}
	service, _, _ := newTestService(issues)

	_, err := service.Submit(employeeCtx("emp-1"), "2024-06", false)

	var gate *ValidationGateError
	require.ErrorAs(t, err, &gate)
	assert.Len(t, gate.Issues, 1)
}

func TestSubmitWithForceSkipsValidation(t *testing.T) {
	issues := []validation.Issue{
		{Date: "2024-06-03", Severity: validation.SeverityError, Type: validation.IssueMissingDay},
	}
	service, _, _ := newTestService(issues)

	status, err := service.Submit(employeeCtx("emp-1"), "2024-06", true)

	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, status.Status)
}

func TestSubmitWithWarningsOnlyPasses(t *testing.T) {
	issues := []validation.Issue{
		{Date: "2024-06-01", Severity: validation.SeverityWarning, Type: validation.IssueWeekendWork},
	}
	service, _, _ := newTestService(issues)

	_, err := service.Submit(employeeCtx("emp-1"), "2024-06", false)

	assert.NoError(t, err)
}

func TestSubmitRejectedMonthAgain(t *testing.T) {
	service, repo, _ := newTestService(nil)
	require.NoError(t, repo.Upsert(context.Background(), MonthStatus{
		EmployeeID: "emp-1", Month: "2024-06", Status: StatusRejected, ManagerComment: "chybí pondělí",
	}))

	status, err := service.Submit(employeeCtx("emp-1"), "2024-06", false)

	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, status.Status)
	assert.Equal(t, "chybí pondělí", status.ManagerComment)

	stored, err := repo.Get(context.Background(), "emp-1", "2024-06")
	require.NoError(t, err)
	assert.Equal(t, "chybí pondělí", stored.ManagerComment)
}

func TestSubmitTwiceFails(t *testing.T) {
	service, _, _ := newTestService(nil)
	_, err := service.Submit(employeeCtx("emp-1"), "2024-06", false)
	require.NoError(t, err)

	_, err = service.Submit(employeeCtx("emp-1"), "2024-06", false)

	var transition *InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, StatusSubmitted, transition.From)
}

func TestApprove(t *testing.T) {
	service, _, bus := newTestService(nil)
	_, err := service.Submit(employeeCtx("emp-1"), "2024-06", false)
	require.NoError(t, err)

	var published []event_bus.TimesheetStatusChanged
	event_bus.SubscribeTyped(bus, event_bus.TimesheetApproved,
		func(e event_bus.EventT[event_bus.TimesheetStatusChanged]) error {
			published = append(published, e.Data)
			return nil
		})

	status, err := service.Approve(managerCtx("mgr-1"), "emp-1", "2024-06")

	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status.Status)
	require.NotNil(t, status.ApprovedAt)
	require.Len(t, published, 1)
	assert.Equal(t, "mgr-1", published[0].ActorID)
}

func TestApproveRequiresManager(t *testing.T) {
	service, _, _ := newTestService(nil)
	_, err := service.Submit(employeeCtx("emp-1"), "2024-06", false)
	require.NoError(t, err)

	_, err = service.Approve(employeeCtx("emp-2"), "emp-1", "2024-06")

	assert.ErrorIs(t, err, ErrNotManager)
}

func TestApproveRequiresSubmitted(t *testing.T) {
	service, _, _ := newTestService(nil)

	_, err := service.Approve(managerCtx("mgr-1"), "emp-1", "2024-06")

	var transition *InvalidTransitionError
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, StatusDraft, transition.From)
}

func TestRejectRequiresComment(t *testing.T) {
	service, _, _ := newTestService(nil)
	_, err := service.Submit(employeeCtx("emp-1"), "2024-06", false)
	require.NoError(t, err)

	_, err = service.Reject(managerCtx("mgr-1"), "emp-1", "2024-06", "   ")

	assert.ErrorIs(t, err, ErrCommentRequired)
}

func TestRejectStoresCommentAndUnlocks(t *testing.T) {
	service, repo, _ := newTestService(nil)
	_, err := service.Submit(employeeCtx("emp-1"), "2024-06", false)
	require.NoError(t, err)

	status, err := service.Reject(managerCtx("mgr-1"), "emp-1", "2024-06", "Chybí tři dny.")

	require.NoError(t, err)
	assert.Equal(t, StatusRejected, status.Status)
	assert.Equal(t, "Chybí tři dny.", status.ManagerComment)
	assert.False(t, status.Locked())

	stored, err := repo.Get(context.Background(), "emp-1", "2024-06")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, stored.Status)
}

func TestListForMonthRequiresManager(t *testing.T) {
	service, _, _ := newTestService(nil)

	_, err := service.ListForMonth(employeeCtx("emp-1"), "2024-06")

	assert.ErrorIs(t, err, ErrNotManager)
}

func TestLockedStates(t *testing.T) {
	assert.False(t, MonthStatus{Status: StatusDraft}.Locked())
	assert.True(t, MonthStatus{Status: StatusSubmitted}.Locked())
	assert.True(t, MonthStatus{Status: StatusApproved}.Locked())
	assert.False(t, MonthStatus{Status: StatusRejected}.Locked())
}
