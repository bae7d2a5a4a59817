package domain

import "time"

// MinCapacity is the smallest slot count that makes a pickup game a game.
const MinCapacity = 2

// Activity represents a pickup game owned by the user who created it.
type Activity struct {
	ID        int64     `json:"id"`
	Sport     string    `json:"sport"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	StartsAt  time.Time `json:"time"`
	Capacity  int       `json:"capacity"`
	OwnerID   int64     `json:"owner_id"`
	OwnerName string    `json:"owner_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Activity) IsUpcoming(reference time.Time) bool {
	if a == nil {
		return false
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !a.StartsAt.Before(reference)
}
