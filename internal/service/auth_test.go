package service

import (
	"context"
	"testing"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/repository"
	"SRP_admin_backend/internal/service/mocks"
	"SRP_admin_backend/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	adminID := uuid.New()

	// Login clears the hash on the returned struct, so each case gets a
	// fresh record.
	newAdmin := func() *model.Admin {
		return &model.Admin{
			ID:           adminID,
			Email:        "admin@school.edu",
			Name:         "Admin",
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
		}
	}

	adminAuth := auth.NewAdminAuth("test-secret")

	tests := []struct {
		name          string
		email         string
		password      string
		mockSetup     func(*mocks.MockAdminRepository)
		expectedError error
	}{
		{
			name:     "valid credentials",
			email:    "admin@school.edu",
			password: "correct-horse",
			mockSetup: func(repo *mocks.MockAdminRepository) {
				repo.On("GetAdminByEmail", mock.Anything, "admin@school.edu").Return(newAdmin(), nil)
			},
		},
		{
			name:     "wrong password",
			email:    "admin@school.edu",
			password: "wrong",
			mockSetup: func(repo *mocks.MockAdminRepository) {
				repo.On("GetAdminByEmail", mock.Anything, "admin@school.edu").Return(newAdmin(), nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@school.edu",
			password: "correct-horse",
			mockSetup: func(repo *mocks.MockAdminRepository) {
				repo.On("GetAdminByEmail", mock.Anything, "ghost@school.edu").
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockAdminRepository{}
			tt.mockSetup(mockRepo)

			svc := NewAuthService(mockRepo, adminAuth)
			token, got, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Empty(t, got.PasswordHash)

				claims, err := adminAuth.ParseToken(token)
				assert.NoError(t, err)
				assert.Equal(t, adminID.String(), claims.AdminID)
				assert.Equal(t, "admin@school.edu", claims.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
