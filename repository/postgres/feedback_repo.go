package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/repository"
)

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository returns a Postgres-backed implementation of FeedbackRepository.
func NewFeedbackRepository(pool *pgxpool.Pool) repository.FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	if feedback == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO feedback (name, email, message)
	VALUES ($1, $2, $3)
	RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query,
		feedback.Name,
		feedback.Email,
		feedback.Message,
	).Scan(&feedback.ID, &feedback.CreatedAt)
}
