package model

import (
	"time"

	"github.com/google/uuid"
)

type Referral struct {
	ID            uuid.UUID
	ReferrerID    uuid.UUID
	ReferredID    uuid.UUID
	PointsAwarded int
	CreatedAt     time.Time

	Referrer *User
	Referred *User
}
