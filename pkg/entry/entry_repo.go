package entry

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type EntryRepo interface {
	// ListForEmployee returns the employee's entries, restricted to one
	// month when monthPrefix (YYYY-MM) is non-empty. Ordered by date.
	ListForEmployee(ctx context.Context, employeeID string, monthPrefix string) ([]Entry, error)
	// ListAll returns entries for every employee, for manager aggregate views.
	ListAll(ctx context.Context, monthPrefix string) ([]Entry, error)
	BulkInsert(ctx context.Context, entries []Entry) error
	// ReplaceDay deletes all of the employee's entries for the date and
	// inserts the new set within a single transaction.
	ReplaceDay(ctx context.Context, employeeID string, date string, entries []Entry) error
	DeleteByID(ctx context.Context, employeeID string, id string) (bool, error)
}

type EntryRepoImpl struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepoImpl {
	return &EntryRepoImpl{db: db}
}

const entryColumns = `id, employee_id, entry_date, project, description, hours, work_type, attachment_url`

func (r *EntryRepoImpl) ListForEmployee(ctx context.Context, employeeID string, monthPrefix string) ([]Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM time_entry WHERE employee_id = $1`, entryColumns)
	args := []any{employeeID}
	if monthPrefix != "" {
		query += ` AND entry_date LIKE $2 || '-%'`
		args = append(args, monthPrefix)
	}
	query += ` ORDER BY entry_date, id`

	return r.queryEntries(ctx, query, args...)
}

func (r *EntryRepoImpl) ListAll(ctx context.Context, monthPrefix string) ([]Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM time_entry`, entryColumns)
	var args []any
	if monthPrefix != "" {
		query += ` WHERE entry_date LIKE $1 || '-%'`
		args = append(args, monthPrefix)
	}
	query += ` ORDER BY entry_date, id`

	return r.queryEntries(ctx, query, args...)
}

func (r *EntryRepoImpl) queryEntries(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query entries: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var workType string
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.Project, &e.Description, &e.Hours, &workType, &e.AttachmentURL); err != nil {
			err := fmt.Errorf("could not scan entry: %w", err)
			log.Error(err)
			return nil, err
		}
		e.Type = WorkType(workType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return entries, nil
}

func (r *EntryRepoImpl) BulkInsert(ctx context.Context, entries []Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	if err := insertEntries(ctx, tx, entries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		err := fmt.Errorf("could not commit transaction: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *EntryRepoImpl) ReplaceDay(ctx context.Context, employeeID string, date string, entries []Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM time_entry WHERE employee_id = $1 AND entry_date = $2`,
		employeeID, date,
	); err != nil {
		err := fmt.Errorf("could not delete entries for date %s: %w", date, err)
		log.Error(err)
		return err
	}

	if err := insertEntries(ctx, tx, entries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		err := fmt.Errorf("could not commit transaction: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func insertEntries(ctx context.Context, tx *sql.Tx, entries []Entry) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO time_entry (`+entryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		err := fmt.Errorf("could not prepare insert: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			e.ID, e.EmployeeID, e.Date, e.Project, e.Description, e.Hours, string(e.Type), e.AttachmentURL,
		); err != nil {
			err := fmt.Errorf("could not insert entry %s: %w", e.ID, err)
			log.Error(err)
			return err
		}
	}
	return nil
}

func (r *EntryRepoImpl) DeleteByID(ctx context.Context, employeeID string, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM time_entry WHERE id = $1 AND employee_id = $2`, id, employeeID)
	if err != nil {
		err := fmt.Errorf("could not delete entry: %w", err)
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
