package jobs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/promptgen/promptgen/internal/notification"
)

const defaultListLimit = 50

// Service manages the generation job lifecycle. Jobs enter the store as
// queued and stay there; processing is out of scope for this backend.
type Service struct {
	repo     Repository
	notifier notification.Notifier
}

// NewService creates a job service.
func NewService(repo Repository, notifier notification.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Enqueue records a new generation request for the given user.
func (s *Service) Enqueue(ctx context.Context, telegramID int64, prompt string) (Job, error) {
	job := Job{
		ID:         uuid.NewString(),
		TelegramID: strconv.FormatInt(telegramID, 10),
		Status:     StatusQueued,
		Prompt:     prompt,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return Job{}, err
	}

	if s.notifier != nil {
		// Best effort; a notification failure must not fail the enqueue.
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindJobQueued,
			Destination: job.TelegramID,
			Body:        fmt.Sprintf("job %s queued", job.ID),
		})
	}

	return job, nil
}

// List returns the user's most recent jobs, newest first, capped at 50.
func (s *Service) List(ctx context.Context, telegramID int64) ([]Job, error) {
	return s.repo.ListByTelegramID(ctx, strconv.FormatInt(telegramID, 10), defaultListLimit)
}
