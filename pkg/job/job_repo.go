package job

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepo interface {
	GetAll(ctx context.Context, includeInactive bool) ([]Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	Store(ctx context.Context, j Job) error
	Update(ctx context.Context, j Job) error
	SetActive(ctx context.Context, id string, active bool) error
}

type JobRepoImpl struct {
	db *sql.DB
}

func NewJobRepo(db *sql.DB) *JobRepoImpl {
	return &JobRepoImpl{db: db}
}

func (r *JobRepoImpl) GetAll(ctx context.Context, includeInactive bool) ([]Job, error) {
	query := `SELECT id, code, name, active FROM job`
	if !includeInactive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query jobs: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Code, &j.Name, &j.Active); err != nil {
			err := fmt.Errorf("could not scan job: %w", err)
			log.Error(err)
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return jobs, nil
}

func (r *JobRepoImpl) GetByID(ctx context.Context, id string) (Job, error) {
	var j Job
	err := r.db.QueryRowContext(ctx,
		`SELECT id, code, name, active FROM job WHERE id = $1`, id,
	).Scan(&j.ID, &j.Code, &j.Name, &j.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, ErrJobNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not get job %s: %w", id, err)
		log.Error(err)
		return Job{}, err
	}
	return j, nil
}

func (r *JobRepoImpl) Store(ctx context.Context, j Job) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO job (id, code, name, active) VALUES ($1, $2, $3, $4)`,
		j.ID, j.Code, j.Name, j.Active,
	)
	if err != nil {
		err := fmt.Errorf("could not store job: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *JobRepoImpl) Update(ctx context.Context, j Job) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE job SET code = $1, name = $2, active = $3 WHERE id = $4`,
		j.Code, j.Name, j.Active, j.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update job: %w", err)
		log.Error(err)
		return err
	}
	return oneRowAffected(result)
}

func (r *JobRepoImpl) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE job SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		err := fmt.Errorf("could not set job active: %w", err)
		log.Error(err)
		return err
	}
	return oneRowAffected(result)
}

func oneRowAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return err
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
