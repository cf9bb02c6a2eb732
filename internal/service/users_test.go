package service

import (
	"context"
	"testing"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/repository"
	"SRP_admin_backend/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		input         *CreateUserInput
		mockSetup     func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name: "valid user",
			input: &CreateUserInput{
				Email:        "new@school.edu",
				Name:         "New Student",
				ReferralCode: "NEW123",
			},
			mockSetup: func(repo *mocks.MockUserRepository) {
				repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "new@school.edu" && u.ReferredBy == nil
				})).Return(&model.User{
					ID:           uuid.New(),
					Email:        "new@school.edu",
					Name:         "New Student",
					ReferralCode: "NEW123",
				}, nil)
			},
		},
		{
			name: "missing name",
			input: &CreateUserInput{
				Email:        "new@school.edu",
				ReferralCode: "NEW123",
			},
			mockSetup:     func(repo *mocks.MockUserRepository) {},
			expectedError: ErrMissingFields,
		},
		{
			name: "malformed email",
			input: &CreateUserInput{
				Email:        "not-an-email",
				Name:         "New Student",
				ReferralCode: "NEW123",
			},
			mockSetup:     func(repo *mocks.MockUserRepository) {},
			expectedError: ErrInvalidEmail,
		},
		{
			name: "duplicate email",
			input: &CreateUserInput{
				Email:        "taken@school.edu",
				Name:         "New Student",
				ReferralCode: "NEW123",
			},
			mockSetup: func(repo *mocks.MockUserRepository) {
				repo.On("CreateUser", mock.Anything, mock.Anything).
					Return(nil, repository.ErrDuplicateEmail)
			},
			expectedError: ErrEmailExists,
		},
		{
			name: "duplicate referral code",
			input: &CreateUserInput{
				Email:        "new@school.edu",
				Name:         "New Student",
				ReferralCode: "TAKEN",
			},
			mockSetup: func(repo *mocks.MockUserRepository) {
				repo.On("CreateUser", mock.Anything, mock.Anything).
					Return(nil, repository.ErrDuplicateReferralCode)
			},
			expectedError: ErrReferralCodeExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockUserRepository{}
			tt.mockSetup(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.CreateUser(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	id := uuid.New()
	newName := "Renamed"
	badEmail := "nope"

	tests := []struct {
		name          string
		update        *model.UserUpdate
		mockSetup     func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:   "rename",
			update: &model.UserUpdate{Name: &newName},
			mockSetup: func(repo *mocks.MockUserRepository) {
				repo.On("UpdateUser", mock.Anything, id, mock.Anything).
					Return(&model.User{ID: id, Name: newName}, nil)
			},
		},
		{
			name:          "empty update",
			update:        &model.UserUpdate{},
			mockSetup:     func(repo *mocks.MockUserRepository) {},
			expectedError: ErrNoUpdateFields,
		},
		{
			name:          "malformed email",
			update:        &model.UserUpdate{Email: &badEmail},
			mockSetup:     func(repo *mocks.MockUserRepository) {},
			expectedError: ErrInvalidEmail,
		},
		{
			name:   "unknown user",
			update: &model.UserUpdate{Name: &newName},
			mockSetup: func(repo *mocks.MockUserRepository) {
				repo.On("UpdateUser", mock.Anything, id, mock.Anything).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockUserRepository{}
			tt.mockSetup(mockRepo)

			svc := NewUserService(mockRepo)
			_, err := svc.UpdateUser(context.Background(), id, tt.update)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_SearchUsers(t *testing.T) {
	t.Run("empty query returns empty list without store call", func(t *testing.T) {
		mockRepo := &mocks.MockUserRepository{}
		svc := NewUserService(mockRepo)

		users, err := svc.SearchUsers(context.Background(), "")

		assert.NoError(t, err)
		assert.Empty(t, users)
		mockRepo.AssertNotCalled(t, "SearchUsers", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("query forwarded with result limit", func(t *testing.T) {
		mockRepo := &mocks.MockUserRepository{}
		mockRepo.On("SearchUsers", mock.Anything, "ali", searchResultLimit).
			Return([]*model.User{{Name: "Alice"}}, nil)

		svc := NewUserService(mockRepo)
		users, err := svc.SearchUsers(context.Background(), "ali")

		assert.NoError(t, err)
		assert.Len(t, users, 1)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_GetUserReferrals(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	referrerID := uuid.New()

	user := &model.User{ID: userID, Name: "Student", ReferredBy: &referrerID}
	referrer := &model.User{ID: referrerID, Name: "Referrer"}

	mockRepo := &mocks.MockUserRepository{}
	mockRepo.On("GetUserByID", mock.Anything, userID).Return(user, nil)
	mockRepo.On("GetUserByID", mock.Anything, referrerID).Return(referrer, nil)
	mockRepo.On("ListReferralsByUser", mock.Anything, userID).Return([]*model.Referral{
		{
			ReferrerID: userID,
			ReferredID: otherID,
			Referred:   &model.User{ID: otherID, Name: "Brought In"},
		},
		{
			// user is on the referred side here, must not count as theirs
			ReferrerID: referrerID,
			ReferredID: userID,
			Referred:   user,
		},
	}, nil)

	svc := NewUserService(mockRepo)
	info, err := svc.GetUserReferrals(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 1, info.TotalReferrals)
	assert.Len(t, info.ReferredUsers, 1)
	assert.Equal(t, "Brought In", info.ReferredUsers[0].Name)
	assert.Equal(t, "Referrer", info.ReferredBy.Name)
	mockRepo.AssertExpectations(t)
}
