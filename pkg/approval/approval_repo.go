package approval

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type ApprovalRepo interface {
	// Get returns the month's status, or a DRAFT MonthStatus when no row
	// exists yet.
	Get(ctx context.Context, employeeID string, month string) (MonthStatus, error)
	// ListForMonth returns every employee's status row for the month.
	ListForMonth(ctx context.Context, month string) ([]MonthStatus, error)
	// Upsert stores the status keyed by (employee, month). Last write wins.
	Upsert(ctx context.Context, status MonthStatus) error
}

type ApprovalRepoImpl struct {
	db *sql.DB
}

func NewApprovalRepo(db *sql.DB) *ApprovalRepoImpl {
	return &ApprovalRepoImpl{db: db}
}

const statusColumns = `employee_id, month, status, manager_comment, submitted_at, approved_at`

func (r *ApprovalRepoImpl) Get(ctx context.Context, employeeID string, month string) (MonthStatus, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+statusColumns+` FROM month_status WHERE employee_id = $1 AND month = $2`,
		employeeID, month,
	)

	status, err := scanStatus(row)
	if errors.Is(err, sql.ErrNoRows) {
		return MonthStatus{EmployeeID: employeeID, Month: month, Status: StatusDraft}, nil
	}
	if err != nil {
		err := fmt.Errorf("could not get month status: %w", err)
		log.Error(err)
		return MonthStatus{}, err
	}
	return status, nil
}

func (r *ApprovalRepoImpl) ListForMonth(ctx context.Context, month string) ([]MonthStatus, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+statusColumns+` FROM month_status WHERE month = $1 ORDER BY employee_id`, month)
	if err != nil {
		err := fmt.Errorf("could not query month statuses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var statuses []MonthStatus
	for rows.Next() {
		status, err := scanStatus(rows)
		if err != nil {
			err := fmt.Errorf("could not scan month status: %w", err)
			log.Error(err)
			return nil, err
		}
		statuses = append(statuses, status)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return statuses, nil
}

func (r *ApprovalRepoImpl) Upsert(ctx context.Context, status MonthStatus) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO month_status (`+statusColumns+`) VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (employee_id, month) DO UPDATE SET
		   status = EXCLUDED.status,
		   manager_comment = EXCLUDED.manager_comment,
		   submitted_at = EXCLUDED.submitted_at,
		   approved_at = EXCLUDED.approved_at`,
		status.EmployeeID, status.Month, string(status.Status), status.ManagerComment,
		status.SubmittedAt, status.ApprovedAt,
	)
	if err != nil {
		err := fmt.Errorf("could not upsert month status: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStatus(row rowScanner) (MonthStatus, error) {
	var status MonthStatus
	var state string
	if err := row.Scan(&status.EmployeeID, &status.Month, &state, &status.ManagerComment,
		&status.SubmittedAt, &status.ApprovedAt); err != nil {
		return MonthStatus{}, err
	}
	status.Status = Status(state)
	return status, nil
}
