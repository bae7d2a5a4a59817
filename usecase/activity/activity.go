package activity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/repository"
)

type UseCase struct {
	activities repository.ActivityRepository
	cache      repository.ActivityCache
	logger     *zap.Logger
}

func New(activities repository.ActivityRepository, cache repository.ActivityCache, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		activities: activities,
		cache:      cache,
		logger:     logger,
	}
}

// List returns upcoming activities visible to everyone, optionally narrowed
// to one sport. Results are served from the cache when fresh; cache failures
// fall through to the store.
func (uc *UseCase) List(ctx context.Context, sport string) ([]domain.Activity, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetList(ctx, sport)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			uc.logger.Warn("activity cache read failed", zap.Error(err))
		}
	}

	activities, err := uc.activities.List(ctx, repository.ActivityFilter{
		Sport:        sport,
		UpcomingOnly: true,
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to list activities", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetList(ctx, sport, activities); err != nil {
			uc.logger.Warn("activity cache write failed", zap.Error(err))
		}
	}
	return activities, nil
}

// ListMine returns every activity owned by the acting user, including past ones.
func (uc *UseCase) ListMine(ctx context.Context, identity domain.Identity) ([]domain.Activity, error) {
	activities, err := uc.activities.ListByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to list activities", err)
	}
	return activities, nil
}

// Create validates the activity and stamps the acting user as its owner.
// Ownership is fixed here and never changes afterwards.
func (uc *UseCase) Create(ctx context.Context, identity domain.Identity, activity *domain.Activity) (*domain.Activity, error) {
	if err := validate(activity); err != nil {
		return nil, err
	}

	activity.OwnerID = identity.UserID
	if err := uc.activities.Create(ctx, activity); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to create activity", err)
	}

	uc.invalidateCache(ctx)
	uc.logger.Info("activity created",
		zap.Int64("activity_id", activity.ID),
		zap.Int64("owner_id", identity.UserID))
	return activity, nil
}

// Update replaces the mutable fields of an activity the acting user owns.
// Concurrent updates by the owner are last-write-wins.
func (uc *UseCase) Update(ctx context.Context, identity domain.Identity, id int64, activity *domain.Activity) (*domain.Activity, error) {
	if err := validate(activity); err != nil {
		return nil, err
	}

	current, err := uc.authorizeMutation(ctx, id, identity.UserID)
	if err != nil {
		return nil, err
	}

	activity.ID = current.ID
	activity.OwnerID = current.OwnerID
	activity.CreatedAt = current.CreatedAt
	if err := uc.activities.Update(ctx, activity); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to update activity", err)
	}

	uc.invalidateCache(ctx)
	return activity, nil
}

// Delete removes an activity the acting user owns.
func (uc *UseCase) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	current, err := uc.authorizeMutation(ctx, id, identity.UserID)
	if err != nil {
		return err
	}

	if err := uc.activities.Delete(ctx, current.ID); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return domain.ErrActivityNotFound
		}
		return domain.WrapError(domain.ErrCodeInternal, "failed to delete activity", err)
	}

	uc.invalidateCache(ctx)
	uc.logger.Info("activity deleted",
		zap.Int64("activity_id", id),
		zap.Int64("owner_id", identity.UserID))
	return nil
}

// authorizeMutation looks the activity up filtered by id AND owner in one
// query. An absent activity and one owned by someone else are deliberately
// indistinguishable to the caller.
func (uc *UseCase) authorizeMutation(ctx context.Context, id, ownerID int64) (*domain.Activity, error) {
	activity, err := uc.activities.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to load activity", err)
	}
	return activity, nil
}

func (uc *UseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("activity cache invalidation failed", zap.Error(err))
	}
}

func validate(activity *domain.Activity) error {
	if activity == nil {
		return domain.ErrInvalidPayload
	}
	if activity.Sport == "" || activity.Title == "" || activity.Location == "" || activity.StartsAt.IsZero() {
		return domain.NewError(domain.ErrCodeInvalid, "sport, title, location and time are required")
	}
	if activity.Capacity < domain.MinCapacity {
		return domain.NewError(domain.ErrCodeInvalid, "capacity must be at least 2")
	}
	return nil
}
