package model

import (
	"time"

	"github.com/google/uuid"
)

// DemoUserInput describes the bulk fixture a demo-user request can carry:
// one user plus optional nested submissions, redemptions, payouts and
// referral links, created in a single call for testing.
type DemoUserInput struct {
	Email           string
	Name            string
	Phone           *string
	ReferralCode    string
	ReferredBy      *uuid.UUID
	TotalPoints     int
	AvailablePoints int

	Submissions          []DemoSubmission
	GenerateCertificates bool
	Redemptions          []DemoRedemption
	Payouts              []DemoPayout
	ReferredUserIDs      []uuid.UUID
}

type DemoSubmission struct {
	TaskID          uuid.UUID
	ProofURL        *string
	ProofText       *string
	Status          SubmissionStatus
	RejectionReason *string
	ValidatedBy     *uuid.UUID
	ValidatedAt     *time.Time
}

type DemoRedemption struct {
	PointsRequested int
	Status          RedeemStatus
	AdminNotes      *string
	ProcessedBy     *uuid.UUID
	ProcessedAt     *time.Time
}

type DemoPayout struct {
	RedeemRequestID      *uuid.UUID
	Amount               float64
	PointsRedeemed       int
	PaymentMethod        PaymentMethod
	TransactionReference *string
	Status               PayoutStatus
	AdminNotes           *string
	ProcessedBy          *uuid.UUID
	CompletedAt          *time.Time
}

// DemoUserData collects everything a demo-user request created.
type DemoUserData struct {
	User         *User
	Submissions  []*TaskSubmission
	Certificates []*Certificate
	Redemptions  []*RedeemRequest
	Payouts      []*Payout
	Referrals    []*Referral
}
