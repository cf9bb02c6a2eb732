package service

import (
	"context"
	"errors"
	"fmt"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/repository"

	"github.com/google/uuid"
)

type PayoutService struct {
	repo PayoutRepository
}

func NewPayoutService(repo PayoutRepository) *PayoutService {
	return &PayoutService{
		repo: repo,
	}
}

func (s *PayoutService) ListPayouts(ctx context.Context, status *model.PayoutStatus) ([]*model.Payout, error) {
	payouts, err := s.repo.ListPayouts(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

// UpdatePayout writes the partial update as given. Status transitions are
// not validated against the current state.
func (s *PayoutService) UpdatePayout(ctx context.Context, id uuid.UUID, update *model.PayoutUpdate) (*model.Payout, error) {
	payout, err := s.repo.UpdatePayout(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, fmt.Errorf("failed to update payout: %w", err)
	}

	return payout, nil
}
