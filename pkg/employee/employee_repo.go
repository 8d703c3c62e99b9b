package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeRepo interface {
	Store(ctx context.Context, emp Employee) error
	GetAll(ctx context.Context, includeInactive bool) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, emp Employee) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (bool, error)
	SetPinHash(ctx context.Context, id string, pinHash string) (bool, error)
}

type EmployeeRepoImpl struct {
	db *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *EmployeeRepoImpl {
	return &EmployeeRepoImpl{db: db}
}

func (r *EmployeeRepoImpl) Store(ctx context.Context, emp Employee) error {
	query := `INSERT INTO employee (id, name, email, role, avatar, active, pin_hash)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		string(emp.Role),
		emp.Avatar,
		emp.Active,
		emp.PinHash,
	)
	if err != nil {
		err := fmt.Errorf("could not store employee: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *EmployeeRepoImpl) GetAll(ctx context.Context, includeInactive bool) ([]Employee, error) {
	query := `SELECT id, name, email, role, avatar, active, pin_hash FROM employee`
	if !includeInactive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query employees: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return employees, nil
}

func (r *EmployeeRepoImpl) GetByID(ctx context.Context, id string) (Employee, error) {
	query := `SELECT id, name, email, role, avatar, active, pin_hash FROM employee WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var emp Employee
	var role string
	err := row.Scan(&emp.ID, &emp.Name, &emp.Email, &role, &emp.Avatar, &emp.Active, &emp.PinHash)
	if errors.Is(err, sql.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not scan employee: %w", err)
		log.Error(err)
		return Employee{}, err
	}
	emp.Role = Role(role)
	return emp, nil
}

func (r *EmployeeRepoImpl) Update(ctx context.Context, emp Employee) (bool, error) {
	query := `UPDATE employee SET name = $1, email = $2, role = $3, avatar = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, emp.Name, emp.Email, string(emp.Role), emp.Avatar, emp.ID)
	if err != nil {
		err := fmt.Errorf("could not update employee: %w", err)
		log.Error(err)
		return false, err
	}
	return oneRowAffected(result)
}

func (r *EmployeeRepoImpl) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	query := `UPDATE employee SET active = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		err := fmt.Errorf("could not update employee status: %w", err)
		log.Error(err)
		return false, err
	}
	return oneRowAffected(result)
}

func (r *EmployeeRepoImpl) SetPinHash(ctx context.Context, id string, pinHash string) (bool, error) {
	query := `UPDATE employee SET pin_hash = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, pinHash, id)
	if err != nil {
		err := fmt.Errorf("could not update employee pin: %w", err)
		log.Error(err)
		return false, err
	}
	return oneRowAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (Employee, error) {
	var emp Employee
	var role string
	if err := row.Scan(&emp.ID, &emp.Name, &emp.Email, &role, &emp.Avatar, &emp.Active, &emp.PinHash); err != nil {
		err := fmt.Errorf("could not scan employee: %w", err)
		log.Error(err)
		return Employee{}, err
	}
	emp.Role = Role(role)
	return emp, nil
}

func oneRowAffected(result sql.Result) (bool, error) {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
