package jobs

import (
	"context"
	"errors"
	"sync"
)

type memoryRepository struct {
	mu   sync.RWMutex
	jobs map[string][]Job // telegram id -> jobs in insertion order
}

// NewMemoryRepository builds an in-memory job store for dev mode and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{jobs: make(map[string][]Job)}
}

func (r *memoryRepository) Create(_ context.Context, job Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.jobs[job.TelegramID] {
		if existing.ID == job.ID {
			return errors.New("job exists")
		}
	}
	r.jobs[job.TelegramID] = append(r.jobs[job.TelegramID], job)
	return nil
}

func (r *memoryRepository) ListByTelegramID(_ context.Context, telegramID string, limit int) ([]Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.jobs[telegramID]

	out := make([]Job, 0, limit)
	for i := len(stored) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}
