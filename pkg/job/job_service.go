package job

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/smartwork/smartwork/pkg/employee"
)

var (
	ErrNotManager = errors.New("only a manager can modify the job catalog")
	ErrInvalidJob = errors.New("job requires a code and a name")
)

type Service interface {
	// GetAll lists the catalog; inactive jobs only when asked for.
	GetAll(ctx context.Context, includeInactive bool) ([]Job, error)
	Create(ctx context.Context, j Job) (Job, error)
	Update(ctx context.Context, j Job) (Job, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type ServiceImpl struct {
	repo JobRepo
}

func NewService(repo JobRepo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context, includeInactive bool) ([]Job, error) {
	return s.repo.GetAll(ctx, includeInactive)
}

func (s *ServiceImpl) Create(ctx context.Context, j Job) (Job, error) {
	if err := s.requireManager(ctx); err != nil {
		return Job{}, err
	}
	if strings.TrimSpace(j.Code) == "" || strings.TrimSpace(j.Name) == "" {
		return Job{}, ErrInvalidJob
	}

	j.ID = uuid.New().String()
	j.Active = true
	if err := s.repo.Store(ctx, j); err != nil {
		return Job{}, err
	}
	log.Debugf("created job %s (%s)", j.Name, j.Code)
	return j, nil
}

func (s *ServiceImpl) Update(ctx context.Context, j Job) (Job, error) {
	if err := s.requireManager(ctx); err != nil {
		return Job{}, err
	}
	if strings.TrimSpace(j.Code) == "" || strings.TrimSpace(j.Name) == "" {
		return Job{}, ErrInvalidJob
	}
	if err := s.repo.Update(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *ServiceImpl) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.requireManager(ctx); err != nil {
		return err
	}
	return s.repo.SetActive(ctx, id, active)
}

func (s *ServiceImpl) requireManager(ctx context.Context) error {
	rc, err := employee.Current(ctx)
	if err != nil {
		return err
	}
	if !rc.IsManager() {
		log.Error(ErrNotManager)
		return ErrNotManager
	}
	return nil
}
