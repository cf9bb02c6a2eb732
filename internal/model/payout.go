package model

import (
	"time"

	"github.com/google/uuid"
)

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutFailed     PayoutStatus = "failed"
)

type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentPaypal       PaymentMethod = "paypal"
	PaymentCheck        PaymentMethod = "check"
	PaymentOther        PaymentMethod = "other"
)

type Payout struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	RedeemRequestID      *uuid.UUID
	Amount               float64
	PointsRedeemed       int
	PaymentMethod        PaymentMethod
	TransactionReference *string
	Status               PayoutStatus
	AdminNotes           *string
	ProcessedBy          *uuid.UUID
	CompletedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time

	User *User
}

// PayoutUpdate is a partial update applied as-is. Status transitions are
// not checked against the current state.
type PayoutUpdate struct {
	TransactionReference *string
	Status               *PayoutStatus
	AdminNotes           *string
	CompletedAt          *time.Time
}
