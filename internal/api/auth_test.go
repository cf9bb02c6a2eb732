package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	err error
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *model.Admin, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return "signed-token", &model.Admin{
		ID:    uuid.New(),
		Email: email,
		Name:  "Admin",
		Role:  model.RoleAdmin,
	}, nil
}

func TestAuthRoutes_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		loginErr       error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "successful login",
			body:           `{"email":"admin@school.edu","password":"pw"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   "signed-token",
		},
		{
			name:           "missing password",
			body:           `{"email":"admin@school.edu"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad credentials",
			body:           `{"email":"admin@school.edu","password":"wrong"}`,
			loginErr:       service.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			NewAuthRoutes(router.Group("/api/v1"), &stubAuthService{err: tt.loginErr})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
