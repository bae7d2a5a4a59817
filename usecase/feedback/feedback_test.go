package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/semexe/backend/domain"
)

type fakeFeedbackRepo struct {
	created []domain.Feedback
	err     error
}

func (r *fakeFeedbackRepo) Create(_ context.Context, fb *domain.Feedback) error {
	if r.err != nil {
		return r.err
	}
	fb.ID = int64(len(r.created) + 1)
	r.created = append(r.created, *fb)
	return nil
}

type fakeBuffer struct {
	buffered []domain.Feedback
	err      error
}

func (b *fakeBuffer) BufferFeedback(_ context.Context, fb *domain.Feedback) error {
	if b.err != nil {
		return b.err
	}
	b.buffered = append(b.buffered, *fb)
	return nil
}

func validFeedback() *domain.Feedback {
	return &domain.Feedback{Name: "Ana", Email: "ana@x.com", Message: "Ótimo app!"}
}

func TestSubmit_Success(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	uc := New(repo, nil, nil)

	require.NoError(t, uc.Submit(context.Background(), validFeedback()))
	require.Len(t, repo.created, 1)
}

func TestSubmit_Validation(t *testing.T) {
	uc := New(&fakeFeedbackRepo{}, nil, nil)
	ctx := context.Background()

	for _, fb := range []*domain.Feedback{
		nil,
		{Email: "a@x.com", Message: "hi"},
		{Name: "Ana", Message: "hi"},
		{Name: "Ana", Email: "a@x.com"},
	} {
		err := uc.Submit(ctx, fb)
		require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid), "got %v", err)
	}
}

func TestSubmit_BuffersOnStoreFailure(t *testing.T) {
	repo := &fakeFeedbackRepo{err: errors.New("connection refused")}
	buf := &fakeBuffer{}
	uc := New(repo, buf, nil)

	require.NoError(t, uc.Submit(context.Background(), validFeedback()),
		"a buffered submission is still a success for the caller")
	require.Len(t, buf.buffered, 1)
}

func TestSubmit_FailsWhenStoreAndBufferFail(t *testing.T) {
	repo := &fakeFeedbackRepo{err: errors.New("connection refused")}
	buf := &fakeBuffer{err: errors.New("disk full")}
	uc := New(repo, buf, nil)

	err := uc.Submit(context.Background(), validFeedback())
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInternal), "got %v", err)
}

func TestSubmit_FailsWithoutBuffer(t *testing.T) {
	repo := &fakeFeedbackRepo{err: errors.New("connection refused")}
	uc := New(repo, nil, nil)

	err := uc.Submit(context.Background(), validFeedback())
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInternal), "got %v", err)
}
