package service

import (
	"context"
	"errors"
	"fmt"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/repository"
	"SRP_admin_backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo AdminRepository
	auth *auth.AdminAuth
}

func NewAuthService(repo AdminRepository, adminAuth *auth.AdminAuth) *AuthService {
	return &AuthService{
		repo: repo,
		auth: adminAuth,
	}
}

// Login checks the password against the stored hash and issues a signed
// token. A missing admin and a wrong password both return
// ErrInvalidCredentials so the response does not reveal which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get admin: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(admin.ID.String(), admin.Email, admin.Name, string(admin.Role))
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	admin.PasswordHash = ""
	return token, admin, nil
}
