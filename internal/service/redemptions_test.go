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

func TestRedemptionService_ApproveRedeemRequest(t *testing.T) {
	requestID := uuid.New()
	adminID := uuid.New()
	notes := "paying out next cycle"

	t.Run("approve stamps the request without creating a payout", func(t *testing.T) {
		mockRepo := &mocks.MockRedemptionRepository{}
		mockRepo.On("ApproveRedeemRequest", mock.Anything, requestID, adminID, &notes).
			Return(&model.RedeemRequest{ID: requestID, Status: model.RedeemApproved}, nil)

		svc := NewRedemptionService(mockRepo)
		request, err := svc.ApproveRedeemRequest(context.Background(), requestID, adminID.String(), &notes)

		assert.NoError(t, err)
		assert.Equal(t, model.RedeemApproved, request.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("undefined admin id rejected before the store is touched", func(t *testing.T) {
		mockRepo := &mocks.MockRedemptionRepository{}
		svc := NewRedemptionService(mockRepo)

		_, err := svc.ApproveRedeemRequest(context.Background(), requestID, "undefined", nil)

		assert.ErrorIs(t, err, ErrInvalidAdminID)
		mockRepo.AssertNotCalled(t, "ApproveRedeemRequest",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown request", func(t *testing.T) {
		mockRepo := &mocks.MockRedemptionRepository{}
		mockRepo.On("ApproveRedeemRequest", mock.Anything, requestID, adminID, (*string)(nil)).
			Return(nil, repository.ErrNotFound)

		svc := NewRedemptionService(mockRepo)
		_, err := svc.ApproveRedeemRequest(context.Background(), requestID, adminID.String(), nil)

		assert.ErrorIs(t, err, ErrRedeemRequestNotFound)
	})
}

func TestRedemptionService_RejectRedeemRequest(t *testing.T) {
	requestID := uuid.New()
	adminID := uuid.New()

	t.Run("reject requires a reason", func(t *testing.T) {
		mockRepo := &mocks.MockRedemptionRepository{}
		svc := NewRedemptionService(mockRepo)

		_, err := svc.RejectRedeemRequest(context.Background(), requestID, adminID.String(), "")

		assert.ErrorIs(t, err, ErrReasonRequired)
		mockRepo.AssertNotCalled(t, "RejectRedeemRequest",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("reject with reason", func(t *testing.T) {
		mockRepo := &mocks.MockRedemptionRepository{}
		mockRepo.On("RejectRedeemRequest", mock.Anything, requestID, adminID, "points dispute").
			Return(&model.RedeemRequest{ID: requestID, Status: model.RedeemRejected}, nil)

		svc := NewRedemptionService(mockRepo)
		request, err := svc.RejectRedeemRequest(context.Background(), requestID, adminID.String(), "points dispute")

		assert.NoError(t, err)
		assert.Equal(t, model.RedeemRejected, request.Status)
		mockRepo.AssertExpectations(t)
	})
}
