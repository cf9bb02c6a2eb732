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

type submissionRoutes struct {
	ss service.SubmissionServiceI
	a  *auth.AdminAuth
}

func NewSubmissionRoutes(handler *gin.RouterGroup, ss service.SubmissionServiceI, a *auth.AdminAuth) {
	r := &submissionRoutes{ss: ss, a: a}
	h := handler.Group("/submissions")
	h.Use(a.AdminAuthMiddleware())
	{
		h.GET("", r.ListSubmissions)
		h.GET("/:id", r.GetSubmission)
		h.POST("/:id/approve", r.ApproveSubmission)
		h.POST("/:id/reject", r.RejectSubmission)
	}
}

func (r *submissionRoutes) ListSubmissions(c *gin.Context) {
	log := logger.Logger()

	var status *model.SubmissionStatus
	if raw := c.Query("status"); raw != "" {
		s := model.SubmissionStatus(raw)
		status = &s
	}

	submissions, err := r.ss.ListSubmissions(c.Request.Context(), status)
	if err != nil {
		log.Error("failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list submissions"})
		return
	}

	out := make([]*submissionResponse, len(submissions))
	for i, s := range submissions {
		out[i] = newSubmissionResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"submissions": out})
}

func (r *submissionRoutes) GetSubmission(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	submission, err := r.ss.GetSubmission(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		log.Error("failed to get submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submission": newSubmissionResponse(submission)})
}

type ApproveSubmissionRequest struct {
	AdminID string `json:"adminId"`
}

func (r *submissionRoutes) ApproveSubmission(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ApproveSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	submission, certificate, err := r.ss.ApproveSubmission(c.Request.Context(), id, req.AdminID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAdminID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid admin id is required"})
		case errors.Is(err, service.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		case errors.Is(err, service.ErrInvalidSubmissionData):
			c.JSON(http.StatusBadRequest, gin.H{"error": "submission data is invalid"})
		case errors.Is(err, service.ErrCertificateCreation):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create certificate"})
		default:
			log.Error("failed to approve submission", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve submission"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission":  newSubmissionResponse(submission),
		"certificate": newCertificateResponse(certificate),
	})
}

type RejectSubmissionRequest struct {
	AdminID string `json:"adminId"`
	Reason  string `json:"reason"`
}

func (r *submissionRoutes) RejectSubmission(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RejectSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	submission, err := r.ss.RejectSubmission(c.Request.Context(), id, req.AdminID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAdminID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid admin id is required"})
		case errors.Is(err, service.ErrReasonRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "rejection reason is required"})
		case errors.Is(err, service.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		default:
			log.Error("failed to reject submission", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reject submission"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"submission": newSubmissionResponse(submission)})
}
