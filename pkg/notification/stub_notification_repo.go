package notification

import (
	"context"
	"sort"
)

type StubNotificationRepo struct {
	data map[string]Notification
}

func NewStubNotificationRepo() *StubNotificationRepo {
	return &StubNotificationRepo{data: map[string]Notification{}}
}

func (s *StubNotificationRepo) Store(ctx context.Context, notifications []Notification) error {
	for _, n := range notifications {
		s.data[n.ID] = n
	}
	return nil
}

func (s *StubNotificationRepo) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	var notifications []Notification
	for _, n := range s.data {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (s *StubNotificationRepo) MarkRead(ctx context.Context, userID string, id string) (bool, error) {
	n, ok := s.data[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	n.Read = true
	s.data[id] = n
	return true, nil
}

func (s *StubNotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	for id, n := range s.data {
		if n.UserID == userID {
			n.Read = true
			s.data[id] = n
		}
	}
	return nil
}
