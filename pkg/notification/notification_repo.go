package notification

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type NotificationRepo interface {
	Store(ctx context.Context, notifications []Notification) error
	// ListForUser returns the user's notifications, newest first.
	ListForUser(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, userID string, id string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) error
}

type NotificationRepoImpl struct {
	db *sql.DB
}

func NewNotificationRepo(db *sql.DB) *NotificationRepoImpl {
	return &NotificationRepoImpl{db: db}
}

const notificationColumns = `id, user_id, sender_id, kind, message, read, created_at`

func (r *NotificationRepoImpl) Store(ctx context.Context, notifications []Notification) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO notification (`+notificationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		err := fmt.Errorf("could not prepare insert: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for _, n := range notifications {
		if _, err := stmt.ExecContext(ctx,
			n.ID, n.UserID, n.SenderID, string(n.Kind), n.Message, n.Read, n.CreatedAt,
		); err != nil {
			err := fmt.Errorf("could not insert notification %s: %w", n.ID, err)
			log.Error(err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		err := fmt.Errorf("could not commit transaction: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *NotificationRepoImpl) ListForUser(ctx context.Context, userID string) ([]Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+notificationColumns+` FROM notification WHERE user_id = $1 ORDER BY created_at DESC, id`,
		userID)
	if err != nil {
		err := fmt.Errorf("could not query notifications: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var n Notification
		var kind string
		if err := rows.Scan(&n.ID, &n.UserID, &n.SenderID, &kind, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			err := fmt.Errorf("could not scan notification: %w", err)
			log.Error(err)
			return nil, err
		}
		n.Kind = Kind(kind)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return notifications, nil
}

func (r *NotificationRepoImpl) MarkRead(ctx context.Context, userID string, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notification SET read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		err := fmt.Errorf("could not mark notification read: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *NotificationRepoImpl) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notification SET read = TRUE WHERE user_id = $1`, userID)
	if err != nil {
		err := fmt.Errorf("could not mark notifications read: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
