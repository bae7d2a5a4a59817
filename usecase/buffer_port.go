package usecase

import (
	"context"

	"github.com/semexe/backend/domain"
)

// FeedbackBuffer abstracts the durable local queue used when the store is
// unreachable, so use cases stay storage-agnostic.
type FeedbackBuffer interface {
	BufferFeedback(ctx context.Context, feedback *domain.Feedback) error
}
