package app

import (
	"github.com/gorilla/mux"
	"github.com/smartwork/smartwork/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Auth
	r.HandleFunc("/api/auth/login", deps.LoginHandler.Login).Methods("POST")

	// Employees
	r.HandleFunc("/api/employee", deps.EmployeeHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/employee", deps.EmployeeHandler.Create).Methods("POST")
	r.HandleFunc("/api/employee/{id}", deps.EmployeeHandler.Update).Methods("PUT")
	r.HandleFunc("/api/employee/{id}/active", deps.EmployeeHandler.SetActive).Methods("PUT")
	r.HandleFunc("/api/employee/{id}/pin", deps.EmployeeHandler.SetPin).Methods("PUT")

	// Jobs
	r.HandleFunc("/api/job", deps.JobHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/job", deps.JobHandler.Create).Methods("POST")
	r.HandleFunc("/api/job/{id}", deps.JobHandler.Update).Methods("PUT")
	r.HandleFunc("/api/job/{id}/active", deps.JobHandler.SetActive).Methods("PUT")

	// Time entries
	r.HandleFunc("/api/entry", deps.EntryHandler.GetForMonth).Queries("month", "{month}").Methods("GET")
	r.HandleFunc("/api/entry", deps.EntryHandler.GetHistory).Methods("GET")
	r.HandleFunc("/api/entry", deps.EntryHandler.Add).Methods("POST")
	r.HandleFunc("/api/entry/day/{date}", deps.EntryHandler.ReplaceDay).Methods("PUT")
	r.HandleFunc("/api/entry/copy-last-day", deps.EntryHandler.CopyLastDay).Methods("POST")
	r.HandleFunc("/api/entry/{id}", deps.EntryHandler.Delete).Methods("DELETE")

	// Validation
	r.HandleFunc("/api/timesheet/{month}/issues", deps.ValidationHandler.GetForMonth).Methods("GET")

	// Approval workflow
	r.HandleFunc("/api/timesheet/{month}/status", deps.ApprovalHandler.GetStatus).Methods("GET")
	r.HandleFunc("/api/timesheet/{month}/submit", deps.ApprovalHandler.Submit).Methods("POST")
	r.HandleFunc("/api/timesheet/{month}/employee/{employeeId}/approve", deps.ApprovalHandler.Approve).Methods("POST")
	r.HandleFunc("/api/timesheet/{month}/employee/{employeeId}/reject", deps.ApprovalHandler.Reject).Methods("POST")

	// Global month lock
	r.HandleFunc("/api/lock", deps.LockHandler.GetLocked).Methods("GET")
	r.HandleFunc("/api/lock/{month}", deps.LockHandler.SetLocked).Methods("PUT")

	// Reports
	r.HandleFunc("/api/report/{month}", deps.StatsHandler.GetReport).Methods("GET")

	// Notifications
	r.HandleFunc("/api/notification", deps.NotificationHandler.List).Methods("GET")
	r.HandleFunc("/api/notification", deps.NotificationHandler.Send).Methods("POST")
	r.HandleFunc("/api/notification/read-all", deps.NotificationHandler.MarkAllRead).Methods("PUT")
	r.HandleFunc("/api/notification/{id}/read", deps.NotificationHandler.MarkRead).Methods("PUT")

	// Calendar import
	r.HandleFunc("/api/calendar/import", deps.CalendarHandler.Import).Queries("month", "{month}").Methods("POST")
}
