package employee

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const ReviewKey contextKey = "review"

var ErrNoEmployee = errors.New("employee not found in context")

// ReviewContext identifies who is acting and whose timesheet is open.
// Outside review mode ViewingID equals the acting employee's ID; a manager
// reviewing another employee keeps their own identity while ViewingID points
// at the reviewed employee.
type ReviewContext struct {
	Employee  Employee
	ViewingID string
}

func (rc ReviewContext) IsManager() bool {
	return rc.Employee.Role == RoleManager
}

// ManagerOverride reports whether the caller may edit a SUBMITTED/APPROVED
// month. The global month lock is not overridable and is checked separately.
func (rc ReviewContext) ManagerOverride() bool {
	return rc.IsManager()
}

func WithReview(ctx context.Context, rc ReviewContext) context.Context {
	return context.WithValue(ctx, ReviewKey, rc)
}

// Current retrieves the review context. Returns ErrNoEmployee when the
// request carried no identity.
func Current(ctx context.Context) (ReviewContext, error) {
	rc, ok := ctx.Value(ReviewKey).(ReviewContext)
	if !ok {
		log.Trace("review context not found")
		return ReviewContext{}, ErrNoEmployee
	}
	return rc, nil
}

// CurrentID returns the acting employee's ID.
func CurrentID(ctx context.Context) (string, error) {
	rc, err := Current(ctx)
	if err != nil {
		return "", err
	}
	return rc.Employee.ID, nil
}

// TargetID returns the ID of the employee whose timesheet is being viewed.
func TargetID(ctx context.Context) (string, error) {
	rc, err := Current(ctx)
	if err != nil {
		return "", err
	}
	if rc.ViewingID != "" {
		return rc.ViewingID, nil
	}
	return rc.Employee.ID, nil
}
