package model

import (
	"time"

	"github.com/google/uuid"
)

type RedeemStatus string

const (
	RedeemPending  RedeemStatus = "pending"
	RedeemApproved RedeemStatus = "approved"
	RedeemRejected RedeemStatus = "rejected"
	// RedeemCompleted is set when the matching payout completes,
	// never by the redemption handlers themselves.
	RedeemCompleted RedeemStatus = "completed"
)

type RedeemRequest struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	PointsRequested int
	Status          RedeemStatus
	AdminNotes      *string
	ProcessedBy     *uuid.UUID
	ProcessedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User *User
}
