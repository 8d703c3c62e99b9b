package event_bus

const (
	TimesheetSubmitted EventType = "timesheet.submitted"
	TimesheetApproved  EventType = "timesheet.approved"
	TimesheetRejected  EventType = "timesheet.rejected"
	MonthLockToggled   EventType = "month.lock_toggled"
)

// TimesheetStatusChanged is the payload for the timesheet.* events.
type TimesheetStatusChanged struct {
	EmployeeID string
	// Month in YYYY-MM format.
	Month string
	// ActorID is the employee who triggered the transition (the owner on
	// submit, the reviewing manager on approve/reject).
	ActorID string
	// Comment carries the manager's reason on rejection, empty otherwise.
	Comment string
}

// MonthLockChanged is the payload for month.lock_toggled.
type MonthLockChanged struct {
	Month     string
	Locked    bool
	ToggledBy string
}
