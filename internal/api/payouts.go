package api

import (
	"errors"
	"net/http"
	"time"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/service"
	"SRP_admin_backend/pkg/auth"
	"SRP_admin_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type payoutRoutes struct {
	ps service.PayoutServiceI
	a  *auth.AdminAuth
}

func NewPayoutRoutes(handler *gin.RouterGroup, ps service.PayoutServiceI, a *auth.AdminAuth) {
	r := &payoutRoutes{ps: ps, a: a}
	h := handler.Group("/payouts")
	h.Use(a.AdminAuthMiddleware())
	{
		h.GET("", r.ListPayouts)
		h.PATCH("/:id", r.UpdatePayout)
	}
}

func (r *payoutRoutes) ListPayouts(c *gin.Context) {
	log := logger.Logger()

	var status *model.PayoutStatus
	if raw := c.Query("status"); raw != "" {
		s := model.PayoutStatus(raw)
		status = &s
	}

	payouts, err := r.ps.ListPayouts(c.Request.Context(), status)
	if err != nil {
		log.Error("failed to list payouts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list payouts"})
		return
	}

	out := make([]*payoutResponse, len(payouts))
	for i, p := range payouts {
		out[i] = newPayoutResponse(p)
	}

	c.JSON(http.StatusOK, gin.H{"payouts": out})
}

type UpdatePayoutRequest struct {
	Status               *string    `json:"status"`
	TransactionReference *string    `json:"transaction_reference"`
	AdminNotes           *string    `json:"admin_notes"`
	CompletedAt          *time.Time `json:"completed_at"`
}

func (r *payoutRoutes) UpdatePayout(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	update := &model.PayoutUpdate{
		TransactionReference: req.TransactionReference,
		AdminNotes:           req.AdminNotes,
		CompletedAt:          req.CompletedAt,
	}
	if req.Status != nil {
		s := model.PayoutStatus(*req.Status)
		update.Status = &s
	}

	payout, err := r.ps.UpdatePayout(c.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, service.ErrPayoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payout not found"})
			return
		}
		log.Error("failed to update payout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payout": newPayoutResponse(payout)})
}
