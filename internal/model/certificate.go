package model

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	TaskSubmissionID uuid.UUID
	CertificateURL   string
	EmailSent        bool
	EmailSentAt      *time.Time
	IssuedAt         time.Time
	CreatedAt        time.Time

	User           *User
	TaskSubmission *TaskSubmission
}
