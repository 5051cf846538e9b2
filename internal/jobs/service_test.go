package jobs

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestEnqueue(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	job, err := svc.Enqueue(ctx, 42, "draw a cat")
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if job.Status != StatusQueued {
		t.Fatalf("expected status queued, got %s", job.Status)
	}
	if job.TelegramID != "42" {
		t.Fatalf("expected owner 42, got %s", job.TelegramID)
	}
	if _, err := uuid.Parse(job.ID); err != nil {
		t.Fatalf("job id is not a uuid: %q", job.ID)
	}
	if job.ResultText != nil {
		t.Fatalf("fresh job must have no result, got %v", *job.ResultText)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		job, err := svc.Enqueue(ctx, 42, fmt.Sprintf("prompt %d", i))
		if err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
		ids = append(ids, job.ID)
	}

	listed, err := svc.List(ctx, 42)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(listed))
	}
	for i, job := range listed {
		if job.ID != ids[len(ids)-1-i] {
			t.Fatalf("expected newest first ordering, got %v", listed)
		}
	}
}

func TestListIsScopedToOwner(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	if _, err := svc.Enqueue(ctx, 42, "mine"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if _, err := svc.Enqueue(ctx, 7, "theirs"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	listed, err := svc.List(ctx, 42)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Prompt != "mine" {
		t.Fatalf("expected only own jobs, got %v", listed)
	}
}

func TestListLimit(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	for i := 0; i < defaultListLimit+10; i++ {
		if _, err := svc.Enqueue(ctx, 42, "p"); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	listed, err := svc.List(ctx, 42)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != defaultListLimit {
		t.Fatalf("expected %d jobs, got %d", defaultListLimit, len(listed))
	}
}
