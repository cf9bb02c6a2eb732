package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	Phone           *string
	TotalPoints     int
	AvailablePoints int
	ReferralCode    string
	ReferredBy      *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserUpdate carries the optional fields of a partial user update.
// Nil fields are left untouched.
type UserUpdate struct {
	Email           *string
	Name            *string
	Phone           *string
	TotalPoints     *int
	AvailablePoints *int
}

type UserReferralInfo struct {
	User           *User
	ReferredBy     *User
	ReferredUsers  []*User
	TotalReferrals int
}
