package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/semexe/backend/domain"
	"github.com/semexe/backend/repository"
)

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a Postgres-backed implementation of ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) repository.ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]domain.Activity, error) {
	const query = `
	SELECT a.id, a.sport, a.title, a.location, a.starts_at, a.capacity, a.owner_id, u.name, a.created_at
	FROM activities a
	LEFT JOIN users u ON u.id = a.owner_id
	WHERE ($1 = '' OR a.sport = $1)
	  AND (NOT $2 OR a.starts_at >= NOW())
	ORDER BY a.starts_at ASC
	`
	rows, err := r.pool.Query(ctx, query, filter.Sport, filter.UpcomingOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectActivities(rows, true)
}

func (r *activityRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Activity, error) {
	const query = `
	SELECT id, sport, title, location, starts_at, capacity, owner_id, created_at
	FROM activities
	WHERE owner_id = $1
	ORDER BY starts_at DESC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectActivities(rows, false)
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if activity == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO activities (sport, title, location, starts_at, capacity, owner_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query,
		activity.Sport,
		activity.Title,
		activity.Location,
		activity.StartsAt,
		activity.Capacity,
		activity.OwnerID,
	).Scan(&activity.ID, &activity.CreatedAt)
}

func (r *activityRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Activity, error) {
	const query = `
	SELECT id, sport, title, location, starts_at, capacity, owner_id, created_at
	FROM activities
	WHERE id = $1 AND owner_id = $2
	`
	row := r.pool.QueryRow(ctx, query, id, ownerID)

	var a domain.Activity
	if err := row.Scan(&a.ID, &a.Sport, &a.Title, &a.Location, &a.StartsAt, &a.Capacity, &a.OwnerID, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	if activity == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE activities
	SET sport = $2,
		title = $3,
		location = $4,
		starts_at = $5,
		capacity = $6
	WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		activity.ID,
		activity.Sport,
		activity.Title,
		activity.Location,
		activity.StartsAt,
		activity.Capacity,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM activities WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func collectActivities(rows pgx.Rows, withOwnerName bool) ([]domain.Activity, error) {
	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		var err error
		if withOwnerName {
			var ownerName *string
			err = rows.Scan(&a.ID, &a.Sport, &a.Title, &a.Location, &a.StartsAt, &a.Capacity, &a.OwnerID, &ownerName, &a.CreatedAt)
			if ownerName != nil {
				a.OwnerName = *ownerName
			}
		} else {
			err = rows.Scan(&a.ID, &a.Sport, &a.Title, &a.Location, &a.StartsAt, &a.Capacity, &a.OwnerID, &a.CreatedAt)
		}
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
