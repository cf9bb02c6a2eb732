package service

import (
	"context"
	"errors"
	"fmt"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/repository"

	"github.com/google/uuid"
)

type RedemptionService struct {
	repo RedemptionRepository
}

func NewRedemptionService(repo RedemptionRepository) *RedemptionService {
	return &RedemptionService{
		repo: repo,
	}
}

func (s *RedemptionService) ListRedeemRequests(ctx context.Context, status *model.RedeemStatus) ([]*model.RedeemRequest, error) {
	requests, err := s.repo.ListRedeemRequests(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list redeem requests: %w", err)
	}
	return requests, nil
}

// ApproveRedeemRequest stamps the request approved. It does not create a
// payout; payouts are recorded separately.
func (s *RedemptionService) ApproveRedeemRequest(ctx context.Context, id uuid.UUID, adminID string, notes *string) (*model.RedeemRequest, error) {
	aid, err := validateAdminID(adminID)
	if err != nil {
		return nil, err
	}

	request, err := s.repo.ApproveRedeemRequest(ctx, id, aid, notes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRedeemRequestNotFound
		}
		return nil, fmt.Errorf("failed to approve redeem request: %w", err)
	}

	return request, nil
}

func (s *RedemptionService) RejectRedeemRequest(ctx context.Context, id uuid.UUID, adminID, reason string) (*model.RedeemRequest, error) {
	aid, err := validateAdminID(adminID)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrReasonRequired
	}

	request, err := s.repo.RejectRedeemRequest(ctx, id, aid, reason)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRedeemRequestNotFound
		}
		return nil, fmt.Errorf("failed to reject redeem request: %w", err)
	}

	return request, nil
}
