package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	Points             int
	RequiresValidation bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
