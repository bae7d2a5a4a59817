package repository

import (
	"context"

	"github.com/semexe/backend/domain"
)

// ActivityCache is a short-lived read-through cache for the public listing.
// Lookups for absent keys return domain.ErrCacheMiss.
type ActivityCache interface {
	GetList(ctx context.Context, sport string) ([]domain.Activity, error)
	SetList(ctx context.Context, sport string, activities []domain.Activity) error
	Invalidate(ctx context.Context) error
}
