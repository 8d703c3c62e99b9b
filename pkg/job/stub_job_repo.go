package job

import (
	"context"
	"sort"
)

type StubJobRepo struct {
	data map[string]Job
}

func NewStubJobRepo() *StubJobRepo {
	return &StubJobRepo{data: map[string]Job{}}
}

func (s *StubJobRepo) GetAll(ctx context.Context, includeInactive bool) ([]Job, error) {
	var jobs []Job
	for _, j := range s.data {
		if !includeInactive && !j.Active {
			continue
		}
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].Name < jobs[k].Name })
	return jobs, nil
}

func (s *StubJobRepo) GetByID(ctx context.Context, id string) (Job, error) {
	if j, ok := s.data[id]; ok {
		return j, nil
	}
	return Job{}, ErrJobNotFound
}

func (s *StubJobRepo) Store(ctx context.Context, j Job) error {
	s.data[j.ID] = j
	return nil
}

func (s *StubJobRepo) Update(ctx context.Context, j Job) error {
	if _, ok := s.data[j.ID]; !ok {
		return ErrJobNotFound
	}
	s.data[j.ID] = j
	return nil
}

func (s *StubJobRepo) SetActive(ctx context.Context, id string, active bool) error {
	j, ok := s.data[id]
	if !ok {
		return ErrJobNotFound
	}
	j.Active = active
	s.data[id] = j
	return nil
}
