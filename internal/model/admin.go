package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleAdmin      AdminRole = "admin"
)

type Admin struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         AdminRole
	CreatedAt    time.Time
}
