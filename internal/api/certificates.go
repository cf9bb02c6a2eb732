package api

import (
	"errors"
	"net/http"

	"SRP_admin_backend/internal/service"
	"SRP_admin_backend/pkg/auth"
	"SRP_admin_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type certificateRoutes struct {
	cs service.CertificateServiceI
	a  *auth.AdminAuth
}

func NewCertificateRoutes(handler *gin.RouterGroup, cs service.CertificateServiceI, a *auth.AdminAuth) {
	r := &certificateRoutes{cs: cs, a: a}
	h := handler.Group("/certificates")
	h.Use(a.AdminAuthMiddleware())
	{
		h.GET("", r.ListCertificates)
		h.POST("/:id/resend", r.ResendCertificate)
	}
}

func (r *certificateRoutes) ListCertificates(c *gin.Context) {
	log := logger.Logger()

	certificates, err := r.cs.ListCertificates(c.Request.Context())
	if err != nil {
		log.Error("failed to list certificates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list certificates"})
		return
	}

	out := make([]*certificateResponse, len(certificates))
	for i, cert := range certificates {
		out[i] = newCertificateResponse(cert)
	}

	c.JSON(http.StatusOK, gin.H{"certificates": out})
}

func (r *certificateRoutes) ResendCertificate(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	certificate, err := r.cs.ResendCertificate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCertificateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "certificate not found"})
			return
		}
		log.Error("failed to resend certificate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resend certificate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"certificate": newCertificateResponse(certificate)})
}
