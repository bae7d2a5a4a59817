package repository

import (
	"context"

	"github.com/semexe/backend/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
}
