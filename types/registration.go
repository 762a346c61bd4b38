package types

import "time"

// Status is the moderation state of a competition registration.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether a registration may move from one status to
// another. Every pair of valid statuses is currently allowed, including
// moving an approved entry back to pending; a future restriction only needs
// to change this function.
func CanTransition(from, to Status) bool {
	return from.Valid() && to.Valid()
}

// MinAge is the inclusive minimum applicant age for a competition entry.
const MinAge = 10

// Registration represents a competition entry awaiting moderation.
// Duplicate submissions from the same email are permitted.
type Registration struct {
	// ID is the store-assigned identifier of the registration.
	ID int `json:"id" db:"id"`

	// Name is the applicant's name.
	Name string `json:"name" db:"name"`

	// Email is the applicant's email address, stored lowercased.
	// It is not required to belong to a registered user.
	Email string `json:"email" db:"email"`

	// Team is the free-text team name supplied by the applicant.
	// It is not validated against a team registry.
	Team string `json:"team" db:"team"`

	// Age is the applicant's age in years. Must be at least MinAge.
	Age int `json:"age" db:"age"`

	// Status is the moderation state. New registrations always start
	// as StatusPending.
	Status Status `json:"status" db:"status"`

	// CreatedAt is the timestamp when the registration was submitted.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent moderation action.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
