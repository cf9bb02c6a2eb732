package api

import (
	"time"

	"SRP_admin_backend/internal/model"

	"github.com/google/uuid"
)

type userResponse struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Phone           *string    `json:"phone"`
	TotalPoints     int        `json:"total_points"`
	AvailablePoints int        `json:"available_points"`
	ReferralCode    string     `json:"referral_code"`
	ReferredBy      *uuid.UUID `json:"referred_by"`
	CreatedAt       time.Time  `json:"created_at"`
}

func newUserResponse(u *model.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Phone:           u.Phone,
		TotalPoints:     u.TotalPoints,
		AvailablePoints: u.AvailablePoints,
		ReferralCode:    u.ReferralCode,
		ReferredBy:      u.ReferredBy,
		CreatedAt:       u.CreatedAt,
	}
}

func newUserResponses(users []*model.User) []*userResponse {
	out := make([]*userResponse, len(users))
	for i, u := range users {
		out[i] = newUserResponse(u)
	}
	return out
}

type taskResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Points             int       `json:"points"`
	RequiresValidation bool      `json:"requires_validation"`
}

func newTaskResponse(t *model.Task) *taskResponse {
	if t == nil {
		return nil
	}
	return &taskResponse{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		Points:             t.Points,
		RequiresValidation: t.RequiresValidation,
	}
}

type submissionResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	TaskID          uuid.UUID  `json:"task_id"`
	ProofURL        *string    `json:"proof_url"`
	ProofText       *string    `json:"proof_text"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason"`
	ValidatedBy     *uuid.UUID `json:"validated_by"`
	ValidatedAt     *time.Time `json:"validated_at"`
	CreatedAt       time.Time  `json:"created_at"`

	User *userResponse `json:"user,omitempty"`
	Task *taskResponse `json:"task,omitempty"`
}

func newSubmissionResponse(s *model.TaskSubmission) *submissionResponse {
	if s == nil {
		return nil
	}
	return &submissionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		TaskID:          s.TaskID,
		ProofURL:        s.ProofURL,
		ProofText:       s.ProofText,
		Status:          string(s.Status),
		RejectionReason: s.RejectionReason,
		ValidatedBy:     s.ValidatedBy,
		ValidatedAt:     s.ValidatedAt,
		CreatedAt:       s.CreatedAt,
		User:            newUserResponse(s.User),
		Task:            newTaskResponse(s.Task),
	}
}

type certificateResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	TaskSubmissionID uuid.UUID  `json:"task_submission_id"`
	CertificateURL   string     `json:"certificate_url"`
	EmailSent        bool       `json:"email_sent"`
	EmailSentAt      *time.Time `json:"email_sent_at"`
	IssuedAt         time.Time  `json:"issued_at"`

	User           *userResponse       `json:"user,omitempty"`
	TaskSubmission *submissionResponse `json:"task_submission,omitempty"`
}

func newCertificateResponse(c *model.Certificate) *certificateResponse {
	if c == nil {
		return nil
	}
	return &certificateResponse{
		ID:               c.ID,
		UserID:           c.UserID,
		TaskSubmissionID: c.TaskSubmissionID,
		CertificateURL:   c.CertificateURL,
		EmailSent:        c.EmailSent,
		EmailSentAt:      c.EmailSentAt,
		IssuedAt:         c.IssuedAt,
		User:             newUserResponse(c.User),
		TaskSubmission:   newSubmissionResponse(c.TaskSubmission),
	}
}

type redeemResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	PointsRequested int        `json:"points_requested"`
	Status          string     `json:"status"`
	AdminNotes      *string    `json:"admin_notes"`
	ProcessedBy     *uuid.UUID `json:"processed_by"`
	ProcessedAt     *time.Time `json:"processed_at"`
	CreatedAt       time.Time  `json:"created_at"`

	User *userResponse `json:"user,omitempty"`
}

func newRedeemResponse(r *model.RedeemRequest) *redeemResponse {
	if r == nil {
		return nil
	}
	return &redeemResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		PointsRequested: r.PointsRequested,
		Status:          string(r.Status),
		AdminNotes:      r.AdminNotes,
		ProcessedBy:     r.ProcessedBy,
		ProcessedAt:     r.ProcessedAt,
		CreatedAt:       r.CreatedAt,
		User:            newUserResponse(r.User),
	}
}

type payoutResponse struct {
	ID                   uuid.UUID  `json:"id"`
	UserID               uuid.UUID  `json:"user_id"`
	RedeemRequestID      *uuid.UUID `json:"redeem_request_id"`
	Amount               float64    `json:"amount"`
	PointsRedeemed       int        `json:"points_redeemed"`
	PaymentMethod        string     `json:"payment_method"`
	TransactionReference *string    `json:"transaction_reference"`
	Status               string     `json:"status"`
	AdminNotes           *string    `json:"admin_notes"`
	ProcessedBy          *uuid.UUID `json:"processed_by"`
	CompletedAt          *time.Time `json:"completed_at"`
	CreatedAt            time.Time  `json:"created_at"`

	User *userResponse `json:"user,omitempty"`
}

func newPayoutResponse(p *model.Payout) *payoutResponse {
	if p == nil {
		return nil
	}
	return &payoutResponse{
		ID:                   p.ID,
		UserID:               p.UserID,
		RedeemRequestID:      p.RedeemRequestID,
		Amount:               p.Amount,
		PointsRedeemed:       p.PointsRedeemed,
		PaymentMethod:        string(p.PaymentMethod),
		TransactionReference: p.TransactionReference,
		Status:               string(p.Status),
		AdminNotes:           p.AdminNotes,
		ProcessedBy:          p.ProcessedBy,
		CompletedAt:          p.CompletedAt,
		CreatedAt:            p.CreatedAt,
		User:                 newUserResponse(p.User),
	}
}
