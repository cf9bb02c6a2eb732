package model

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

type TaskSubmission struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TaskID          uuid.UUID
	ProofURL        *string
	ProofText       *string
	Status          SubmissionStatus
	RejectionReason *string
	ValidatedBy     *uuid.UUID
	ValidatedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User *User
	Task *Task
}

// SubmissionRefs is the minimal projection fetched before an approval.
// The user and task references are pointers so rows with missing
// foreign keys can be detected instead of silently zeroed.
type SubmissionRefs struct {
	ID     uuid.UUID
	UserID *uuid.UUID
	TaskID *uuid.UUID
}
