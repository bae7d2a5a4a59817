package domain

import "time"

// User represents a registered account.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public strips everything a client is not supposed to see.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Identity is the per-request acting identity resolved from a verified token.
// It lives only for the duration of a single request.
type Identity struct {
	UserID int64
	Email  string
}
