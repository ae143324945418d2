package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered application user. Accounts start pending and
// must be approved by an admin before private projects become readable.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsApproved returns true if an admin has approved the account.
func (u *User) IsApproved() bool {
	return u.Status == UserStatusApproved
}

// Caller carries the identity facts access decisions are made on. It is
// resolved by the auth middleware and travels in the request context; the
// zero value is an anonymous guest.
type Caller struct {
	UserID        uuid.UUID
	Authenticated bool
	Approved      bool
	IsAdmin       bool
}

// CallerFor derives a Caller from a loaded user record.
func CallerFor(u *User) Caller {
	if u == nil {
		return Caller{}
	}
	return Caller{
		UserID:        u.ID,
		Authenticated: true,
		Approved:      u.IsApproved(),
		IsAdmin:       u.Role.IsAdmin(),
	}
}
