package lock

import (
	"context"
	"sort"
)

type StubLockRepo struct {
	data map[string]GlobalLock
}

func NewStubLockRepo() *StubLockRepo {
	return &StubLockRepo{data: map[string]GlobalLock{}}
}

func (s *StubLockRepo) Get(ctx context.Context, month string) (GlobalLock, error) {
	if l, ok := s.data[month]; ok {
		return l, nil
	}
	return GlobalLock{Month: month}, nil
}

func (s *StubLockRepo) ListLocked(ctx context.Context) ([]GlobalLock, error) {
	var locks []GlobalLock
	for _, l := range s.data {
		if l.Locked {
			locks = append(locks, l)
		}
	}
	sort.Slice(locks, func(i, j int) bool { return locks[i].Month < locks[j].Month })
	return locks, nil
}

func (s *StubLockRepo) Upsert(ctx context.Context, l GlobalLock) error {
	s.data[l.Month] = l
	return nil
}
