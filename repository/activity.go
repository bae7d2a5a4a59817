package repository

import (
	"context"

	"github.com/semexe/backend/domain"
)

// ActivityFilter narrows the public listing. An empty Sport means all sports.
type ActivityFilter struct {
	Sport        string
	UpcomingOnly bool
}

type ActivityRepository interface {
	// List returns activities visible to everyone, soonest first, with the
	// creator's display name joined in.
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
	// ListByOwner returns the given user's activities, newest start time first.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Activity, error)
	// Create inserts the activity and fills in ID and CreatedAt.
	Create(ctx context.Context, activity *domain.Activity) error
	// GetByIDAndOwner filters by id AND owner in a single query. Zero rows,
	// whether the activity is absent or owned by someone else, yield
	// domain.ErrActivityNotFound.
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id int64) error
}
