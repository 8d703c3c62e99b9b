package approval

import "time"

// Status is the lifecycle state of one employee's month.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
)

// MonthStatus is the approval record for one (employee, month) pair.
// A month with no record is DRAFT.
type MonthStatus struct {
	EmployeeID     string
	Month          string
	Status         Status
	ManagerComment string
	SubmittedAt    *time.Time
	ApprovedAt     *time.Time
}

// Locked reports whether the status by itself blocks edits. The global
// month lock is a separate gate.
func (m MonthStatus) Locked() bool {
	return m.Status == StatusSubmitted || m.Status == StatusApproved
}
