package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/repository"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const searchResultLimit = 10

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

type CreateUserInput struct {
	Email        string
	Name         string
	Phone        *string
	ReferralCode string
	ReferredBy   *string
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*model.User, error) {
	if input.Email == "" || input.Name == "" || input.ReferralCode == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, ErrInvalidEmail
	}

	user := &model.User{
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		ReferralCode: input.ReferralCode,
	}
	if input.ReferredBy != nil {
		referrerID, err := uuid.Parse(*input.ReferredBy)
		if err != nil {
			return nil, fmt.Errorf("invalid referrer id: %w", err)
		}
		user.ReferredBy = &referrerID
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, mapDuplicateErr(err, "failed to create user")
	}

	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, update *model.UserUpdate) (*model.User, error) {
	if update.Email == nil && update.Name == nil && update.Phone == nil &&
		update.TotalPoints == nil && update.AvailablePoints == nil {
		return nil, ErrNoUpdateFields
	}
	if update.Email != nil && !emailPattern.MatchString(*update.Email) {
		return nil, ErrInvalidEmail
	}

	user, err := s.repo.UpdateUser(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, mapDuplicateErr(err, "failed to update user")
	}

	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// SearchUsers matches name or email. An empty query returns an empty
// list without touching the store.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]*model.User, error) {
	if query == "" {
		return []*model.User{}, nil
	}

	users, err := s.repo.SearchUsers(ctx, query, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUserReferrals(ctx context.Context, id uuid.UUID) (*model.UserReferralInfo, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	referrals, err := s.repo.ListReferralsByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get referrals: %w", err)
	}

	var referredBy *model.User
	if user.ReferredBy != nil {
		referredBy, err = s.repo.GetUserByID(ctx, *user.ReferredBy)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to get referrer: %w", err)
		}
	}

	referredUsers := make([]*model.User, 0)
	for _, ref := range referrals {
		if ref.ReferrerID == id {
			referredUsers = append(referredUsers, ref.Referred)
		}
	}

	return &model.UserReferralInfo{
		User:           user,
		ReferredBy:     referredBy,
		ReferredUsers:  referredUsers,
		TotalReferrals: len(referredUsers),
	}, nil
}

func (s *UserService) CreateDemoUser(ctx context.Context, input *model.DemoUserInput) (*model.DemoUserData, error) {
	if input.Email == "" || input.Name == "" || input.ReferralCode == "" {
		return nil, ErrMissingFields
	}

	data, err := s.repo.CreateDemoUser(ctx, input)
	if err != nil {
		return nil, mapDuplicateErr(err, "failed to create demo user")
	}

	return data, nil
}

func mapDuplicateErr(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrEmailExists
	case errors.Is(err, repository.ErrDuplicateReferralCode):
		return ErrReferralCodeExists
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
