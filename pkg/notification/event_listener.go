package notification

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/internal/event_bus"
)

// EventListener turns timesheet and lock events into stored notifications:
// a submit goes to the managers, a review outcome to the affected employee,
// a lock toggle to everyone.
type EventListener struct {
	service   Service
	directory EmployeeDirectory
}

func NewEventListener(service Service, directory EmployeeDirectory) *EventListener {
	return &EventListener{service: service, directory: directory}
}

func (l *EventListener) Register(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.TimesheetSubmitted, l.onSubmitted)
	event_bus.SubscribeTyped(bus, event_bus.TimesheetApproved, l.onApproved)
	event_bus.SubscribeTyped(bus, event_bus.TimesheetRejected, l.onRejected)
	event_bus.SubscribeTyped(bus, event_bus.MonthLockToggled, l.onLockToggled)
}

func (l *EventListener) onSubmitted(e event_bus.EventT[event_bus.TimesheetStatusChanged]) error {
	ctx := e.Context()
	name := l.employeeName(e)
	message := fmt.Sprintf("%s odeslal(a) výkaz za %s ke schválení.", name, e.Data.Month)
	return l.service.NotifyManagers(ctx, KindSubmitted, message)
}

func (l *EventListener) onApproved(e event_bus.EventT[event_bus.TimesheetStatusChanged]) error {
	message := fmt.Sprintf("Váš výkaz za %s byl schválen.", e.Data.Month)
	return l.service.Notify(e.Context(), e.Data.EmployeeID, KindApproved, message)
}

func (l *EventListener) onRejected(e event_bus.EventT[event_bus.TimesheetStatusChanged]) error {
	message := fmt.Sprintf("Váš výkaz za %s byl vrácen k přepracování.", e.Data.Month)
	if e.Data.Comment != "" {
		message += " Důvod: " + e.Data.Comment
	}
	return l.service.Notify(e.Context(), e.Data.EmployeeID, KindRejected, message)
}

func (l *EventListener) onLockToggled(e event_bus.EventT[event_bus.MonthLockChanged]) error {
	var message string
	if e.Data.Locked {
		message = fmt.Sprintf("Měsíc %s byl uzamčen pro úpravy.", e.Data.Month)
	} else {
		message = fmt.Sprintf("Měsíc %s byl znovu otevřen pro úpravy.", e.Data.Month)
	}
	return l.service.Broadcast(e.Context(), KindLock, message)
}

func (l *EventListener) employeeName(e event_bus.EventT[event_bus.TimesheetStatusChanged]) string {
	emp, err := l.directory.GetByID(e.Context(), e.Data.EmployeeID)
	if err != nil {
		log.Warnf("could not resolve employee %s: %v", e.Data.EmployeeID, err)
		return e.Data.EmployeeID
	}
	return emp.Name
}
