package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubPayoutService struct {
	gotUpdate *model.PayoutUpdate
}

func (s *stubPayoutService) ListPayouts(_ context.Context, _ *model.PayoutStatus) ([]*model.Payout, error) {
	return []*model.Payout{}, nil
}

func (s *stubPayoutService) UpdatePayout(_ context.Context, id uuid.UUID, update *model.PayoutUpdate) (*model.Payout, error) {
	s.gotUpdate = update
	payout := &model.Payout{ID: id, Status: model.PayoutPending}
	if update.Status != nil {
		payout.Status = *update.Status
	}
	return payout, nil
}

func TestPayoutRoutes_UpdatePayout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminAuth := auth.NewAdminAuth("test-secret")
	token, err := adminAuth.GenerateToken(uuid.NewString(), "admin@school.edu", "Admin", "admin")
	assert.NoError(t, err)

	stub := &stubPayoutService{}
	router := gin.New()
	NewPayoutRoutes(router.Group("/api/v1"), stub, adminAuth)

	body := `{"status":"completed","transaction_reference":"TX-42"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/payouts/"+uuid.NewString(), bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, stub.gotUpdate.Status)
	assert.Equal(t, model.PayoutCompleted, *stub.gotUpdate.Status)
	assert.Equal(t, "TX-42", *stub.gotUpdate.TransactionReference)
	assert.Contains(t, w.Body.String(), "completed")
}

func TestPayoutRoutes_UpdatePayout_BadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminAuth := auth.NewAdminAuth("test-secret")
	token, _ := adminAuth.GenerateToken(uuid.NewString(), "admin@school.edu", "Admin", "admin")

	router := gin.New()
	NewPayoutRoutes(router.Group("/api/v1"), &stubPayoutService{}, adminAuth)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/payouts/not-a-uuid", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
