package api

import (
	"net/http"

	"SRP_admin_backend/internal/service"
	"SRP_admin_backend/pkg/auth"
	"SRP_admin_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type dashboardRoutes struct {
	ds service.StatsServiceI
	a  *auth.AdminAuth
}

func NewDashboardRoutes(handler *gin.RouterGroup, ds service.StatsServiceI, a *auth.AdminAuth) {
	r := &dashboardRoutes{ds: ds, a: a}
	h := handler.Group("/dashboard")
	h.Use(a.AdminAuthMiddleware())
	{
		h.GET("/stats", r.GetDashboardStats)
	}
}

func (r *dashboardRoutes) GetDashboardStats(c *gin.Context) {
	log := logger.Logger()

	stats, err := r.ds.GetDashboardStats(c.Request.Context())
	if err != nil {
		log.Error("failed to get dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":          stats.TotalUsers,
		"total_referrals":      stats.TotalReferrals,
		"pending_validations":  stats.PendingValidations,
		"pending_redemptions":  stats.PendingRedemptions,
		"total_points_awarded": stats.TotalPointsAwarded,
		"completed_payouts":    stats.CompletedPayouts,
	})
}
