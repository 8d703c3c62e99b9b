package notification

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/internal/utils"
	"github.com/smartwork/smartwork/pkg/employee"
)

var (
	ErrEmptyMessage        = errors.New("notification message must not be empty")
	ErrNotificationMissing = errors.New("notification not found")
)

// EmployeeDirectory is the read surface needed from the employee store.
type EmployeeDirectory interface {
	GetAll(ctx context.Context, includeInactive bool) ([]employee.Employee, error)
	GetByID(ctx context.Context, id string) (employee.Employee, error)
}

type Service interface {
	// Send delivers a direct message from the acting employee to another.
	Send(ctx context.Context, recipientID string, message string) (Notification, error)
	// ListForCurrent returns the acting employee's notifications, newest first.
	ListForCurrent(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	// Notify stores a system notification for a single employee.
	Notify(ctx context.Context, userID string, kind Kind, message string) error
	// Broadcast stores a system notification for every active employee.
	Broadcast(ctx context.Context, kind Kind, message string) error
	// NotifyManagers stores a system notification for every active manager.
	NotifyManagers(ctx context.Context, kind Kind, message string) error
}

type ServiceImpl struct {
	repo      NotificationRepo
	directory EmployeeDirectory
	clock     utils.Clock
}

func NewService(repo NotificationRepo, directory EmployeeDirectory, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, directory: directory, clock: clock}
}

func (s *ServiceImpl) Send(ctx context.Context, recipientID string, message string) (Notification, error) {
	senderID, err := employee.CurrentID(ctx)
	if err != nil {
		return Notification{}, err
	}
	if strings.TrimSpace(message) == "" {
		return Notification{}, ErrEmptyMessage
	}
	if _, err := s.directory.GetByID(ctx, recipientID); err != nil {
		return Notification{}, err
	}

	n := Notification{
		ID:        uuid.New().String(),
		UserID:    recipientID,
		SenderID:  senderID,
		Kind:      KindMessage,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Store(ctx, []Notification{n}); err != nil {
		return Notification{}, err
	}
	return n, nil
}

func (s *ServiceImpl) ListForCurrent(ctx context.Context) ([]Notification, error) {
	userID, err := employee.CurrentID(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForUser(ctx, userID)
}

func (s *ServiceImpl) MarkRead(ctx context.Context, id string) error {
	userID, err := employee.CurrentID(ctx)
	if err != nil {
		return err
	}
	marked, err := s.repo.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !marked {
		return ErrNotificationMissing
	}
	return nil
}

func (s *ServiceImpl) MarkAllRead(ctx context.Context) error {
	userID, err := employee.CurrentID(ctx)
	if err != nil {
		return err
	}
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *ServiceImpl) Notify(ctx context.Context, userID string, kind Kind, message string) error {
	n := Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}
	return s.repo.Store(ctx, []Notification{n})
}

func (s *ServiceImpl) Broadcast(ctx context.Context, kind Kind, message string) error {
	return s.fanOut(ctx, kind, message, func(employee.Employee) bool { return true })
}

func (s *ServiceImpl) NotifyManagers(ctx context.Context, kind Kind, message string) error {
	return s.fanOut(ctx, kind, message, func(e employee.Employee) bool {
		return e.Role == employee.RoleManager
	})
}

func (s *ServiceImpl) fanOut(ctx context.Context, kind Kind, message string, include func(employee.Employee) bool) error {
	recipients, err := s.directory.GetAll(ctx, false)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	notifications := make([]Notification, 0, len(recipients))
	for _, recipient := range recipients {
		if !include(recipient) {
			continue
		}
		notifications = append(notifications, Notification{
			ID:        uuid.New().String(),
			UserID:    recipient.ID,
			Kind:      kind,
			Message:   message,
			CreatedAt: now,
		})
	}
	if len(notifications) == 0 {
		return nil
	}

	log.Debugf("storing %d %s notifications", len(notifications), kind)
	return s.repo.Store(ctx, notifications)
}
