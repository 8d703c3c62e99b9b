package app

import (
	"database/sql"

	"github.com/smartwork/smartwork/internal/auth"
	"github.com/smartwork/smartwork/internal/config"
	"github.com/smartwork/smartwork/internal/event_bus"
	"github.com/smartwork/smartwork/internal/utils"
	"github.com/smartwork/smartwork/pkg/approval"
	"github.com/smartwork/smartwork/pkg/calendar"
	"github.com/smartwork/smartwork/pkg/employee"
	"github.com/smartwork/smartwork/pkg/entry"
	"github.com/smartwork/smartwork/pkg/job"
	"github.com/smartwork/smartwork/pkg/lock"
	"github.com/smartwork/smartwork/pkg/notification"
	"github.com/smartwork/smartwork/pkg/permission"
	"github.com/smartwork/smartwork/pkg/stats"
	"github.com/smartwork/smartwork/pkg/validation"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	TokenIssuer  *auth.TokenIssuer
	LoginHandler *auth.LoginHandler

	EmployeeRepo    employee.EmployeeRepo
	EmployeeService employee.Service
	EmployeeHandler *employee.Handler

	JobRepo    job.JobRepo
	JobService job.Service
	JobHandler *job.Handler

	LockRepo    lock.LockRepo
	LockService lock.Service
	LockHandler *lock.Handler

	ApprovalRepo    approval.ApprovalRepo
	ApprovalService approval.Service
	ApprovalHandler *approval.Handler

	PermissionResolver *permission.Resolver

	EntryRepo    entry.EntryRepo
	EntryService entry.Service
	EntryHandler *entry.Handler

	ValidationService validation.Service
	ValidationHandler *validation.Handler

	StatsService      stats.Service
	CsvReportRenderer *stats.CsvReportRendererImpl
	StatsHandler      *stats.Handler

	NotificationRepo     notification.NotificationRepo
	NotificationService  notification.Service
	NotificationListener *notification.EventListener
	NotificationHandler  *notification.Handler

	CalendarImporter *calendar.Importer
	CalendarHandler  *calendar.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.TokenIssuer = auth.NewTokenIssuer(cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)

	deps.EmployeeRepo = employee.NewEmployeeRepo(db)
	deps.EmployeeService = employee.NewService(deps.EmployeeRepo)
	deps.EmployeeHandler = employee.NewHandler(deps.EmployeeService)
	deps.LoginHandler = auth.NewLoginHandler(deps.EmployeeService, deps.TokenIssuer)

	deps.JobRepo = job.NewJobRepo(db)
	deps.JobService = job.NewService(deps.JobRepo)
	deps.JobHandler = job.NewHandler(deps.JobService)

	deps.LockRepo = lock.NewLockRepo(db)
	deps.LockService = lock.NewService(deps.LockRepo, deps.Bus)
	deps.LockHandler = lock.NewHandler(deps.LockService)

	deps.ApprovalRepo = approval.NewApprovalRepo(db)
	deps.PermissionResolver = permission.NewResolver(deps.LockService, deps.ApprovalRepo)

	deps.EntryRepo = entry.NewEntryRepo(db)
	deps.EntryService = entry.NewService(deps.EntryRepo, deps.PermissionResolver, deps.Clock)
	deps.EntryHandler = entry.NewHandler(deps.EntryService)

	validator := validation.NewValidator(cfg.Policy.StandardDayHours, cfg.Policy.HighHoursLimit, deps.Clock)
	deps.ValidationService = validation.NewService(deps.EntryService, validator)
	deps.ValidationHandler = validation.NewHandler(deps.ValidationService)

	deps.ApprovalService = approval.NewService(deps.ApprovalRepo, deps.ValidationService, deps.Bus, deps.Clock)
	deps.ApprovalHandler = approval.NewHandler(deps.ApprovalService)

	deps.StatsService = stats.NewService(deps.EntryService, cfg.Policy.StandardDayHours)
	deps.CsvReportRenderer = stats.NewCsvReportRenderer()
	deps.StatsHandler = stats.NewHandler(deps.StatsService, deps.CsvReportRenderer)

	deps.NotificationRepo = notification.NewNotificationRepo(db)
	deps.NotificationService = notification.NewService(deps.NotificationRepo, deps.EmployeeRepo, deps.Clock)
	deps.NotificationListener = notification.NewEventListener(deps.NotificationService, deps.EmployeeRepo)
	deps.NotificationListener.Register(deps.Bus)
	deps.NotificationHandler = notification.NewHandler(deps.NotificationService)

	deps.CalendarImporter = calendar.NewImporter()
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarImporter)

	return deps
}
