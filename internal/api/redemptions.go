package api

import (
	"errors"
	"net/http"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/service"
	"SRP_admin_backend/pkg/auth"
	"SRP_admin_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type redemptionRoutes struct {
	rs service.RedemptionServiceI
	a  *auth.AdminAuth
}

func NewRedemptionRoutes(handler *gin.RouterGroup, rs service.RedemptionServiceI, a *auth.AdminAuth) {
	r := &redemptionRoutes{rs: rs, a: a}
	h := handler.Group("/redeem-requests")
	h.Use(a.AdminAuthMiddleware())
	{
		h.GET("", r.ListRedeemRequests)
		h.POST("/:id/approve", r.ApproveRedeemRequest)
		h.POST("/:id/reject", r.RejectRedeemRequest)
	}
}

func (r *redemptionRoutes) ListRedeemRequests(c *gin.Context) {
	log := logger.Logger()

	var status *model.RedeemStatus
	if raw := c.Query("status"); raw != "" {
		s := model.RedeemStatus(raw)
		status = &s
	}

	requests, err := r.rs.ListRedeemRequests(c.Request.Context(), status)
	if err != nil {
		log.Error("failed to list redeem requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list redeem requests"})
		return
	}

	out := make([]*redeemResponse, len(requests))
	for i, req := range requests {
		out[i] = newRedeemResponse(req)
	}

	c.JSON(http.StatusOK, gin.H{"redemptions": out})
}

type ApproveRedeemRequest struct {
	AdminID string  `json:"adminId"`
	Notes   *string `json:"notes"`
}

func (r *redemptionRoutes) ApproveRedeemRequest(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ApproveRedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	request, err := r.rs.ApproveRedeemRequest(c.Request.Context(), id, req.AdminID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAdminID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid admin id is required"})
		case errors.Is(err, service.ErrRedeemRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "redeem request not found"})
		default:
			log.Error("failed to approve redeem request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve redeem request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"redemption": newRedeemResponse(request)})
}

type RejectRedeemRequest struct {
	AdminID string `json:"adminId"`
	Reason  string `json:"reason"`
}

func (r *redemptionRoutes) RejectRedeemRequest(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RejectRedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	request, err := r.rs.RejectRedeemRequest(c.Request.Context(), id, req.AdminID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAdminID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid admin id is required"})
		case errors.Is(err, service.ErrReasonRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "rejection reason is required"})
		case errors.Is(err, service.ErrRedeemRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "redeem request not found"})
		default:
			log.Error("failed to reject redeem request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reject redeem request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"redemption": newRedeemResponse(request)})
}
