package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/internal/infrastructure/buffer"
)

type stubHealth struct{ online bool }

func (s stubHealth) IsOnline() bool { return s.online }

type recordingFeedbackRepo struct {
	created []domain.Feedback
	err     error
}

func (r *recordingFeedbackRepo) Create(_ context.Context, fb *domain.Feedback) error {
	if r.err != nil {
		return r.err
	}
	fb.ID = int64(len(r.created) + 1)
	r.created = append(r.created, *fb)
	return nil
}

func newTestFlusher(t *testing.T, repo *recordingFeedbackRepo, health ConnectionHealth) *FeedbackFlusher {
	t.Helper()
	store, err := buffer.Open(filepath.Join(t.TempDir(), "feedback.db"), "feedback")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewFeedbackFlusher(store, health, repo, nil, FlusherConfig{MaxRetries: 2})
}

func TestDrain_FlushesBufferedFeedback(t *testing.T) {
	repo := &recordingFeedbackRepo{}
	f := newTestFlusher(t, repo, stubHealth{online: true})
	ctx := context.Background()

	for _, msg := range []string{"first", "second"} {
		err := f.BufferFeedback(ctx, &domain.Feedback{Name: "Ana", Email: "a@x.com", Message: msg})
		if err != nil {
			t.Fatalf("BufferFeedback error: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	if err := f.Drain(ctx); err != nil {
		t.Fatalf("Drain error: %v", err)
	}

	if len(repo.created) != 2 {
		t.Fatalf("flushed %d items, want 2", len(repo.created))
	}
	if repo.created[0].Message != "first" {
		t.Fatalf("flush not oldest-first: %q", repo.created[0].Message)
	}
	if f.Size() != 0 {
		t.Fatalf("buffer size = %d after drain, want 0", f.Size())
	}
}

func TestDrain_SkipsWhileOffline(t *testing.T) {
	repo := &recordingFeedbackRepo{}
	f := newTestFlusher(t, repo, stubHealth{online: false})
	ctx := context.Background()

	if err := f.BufferFeedback(ctx, &domain.Feedback{Name: "Ana", Email: "a@x.com", Message: "hi"}); err != nil {
		t.Fatalf("BufferFeedback error: %v", err)
	}
	if err := f.Drain(ctx); err != nil {
		t.Fatalf("Drain error: %v", err)
	}

	if len(repo.created) != 0 {
		t.Fatal("offline drain must not touch the store")
	}
	if f.Size() != 1 {
		t.Fatalf("buffer size = %d, want 1", f.Size())
	}
}

func TestDrain_DropsAfterMaxRetries(t *testing.T) {
	repo := &recordingFeedbackRepo{err: errors.New("still down")}
	f := newTestFlusher(t, repo, stubHealth{online: true})
	ctx := context.Background()

	if err := f.BufferFeedback(ctx, &domain.Feedback{Name: "Ana", Email: "a@x.com", Message: "hi"}); err != nil {
		t.Fatalf("BufferFeedback error: %v", err)
	}

	// MaxRetries is 2: first drain requeues, second drops
	if err := f.Drain(ctx); err != nil {
		t.Fatalf("Drain error: %v", err)
	}
	if f.Size() != 1 {
		t.Fatalf("buffer size = %d after first failure, want 1", f.Size())
	}

	if err := f.Drain(ctx); err != nil {
		t.Fatalf("Drain error: %v", err)
	}
	if f.Size() != 0 {
		t.Fatalf("buffer size = %d after max retries, want 0", f.Size())
	}
}

func TestBufferFeedback_NilSubmission(t *testing.T) {
	f := newTestFlusher(t, &recordingFeedbackRepo{}, stubHealth{online: true})
	if err := f.BufferFeedback(context.Background(), nil); err == nil {
		t.Fatal("expected an error for a nil submission")
	}
}
