package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/service"
	"SRP_admin_backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubSubmissionService struct {
	approveErr error
	rejectErr  error

	gotAdminID string
	gotReason  string
}

func (s *stubSubmissionService) ListSubmissions(_ context.Context, _ *model.SubmissionStatus) ([]*model.TaskSubmission, error) {
	return []*model.TaskSubmission{}, nil
}

func (s *stubSubmissionService) GetSubmission(_ context.Context, id uuid.UUID) (*model.TaskSubmission, error) {
	return &model.TaskSubmission{ID: id, Status: model.SubmissionPending}, nil
}

func (s *stubSubmissionService) ApproveSubmission(_ context.Context, id uuid.UUID, adminID string) (*model.TaskSubmission, *model.Certificate, error) {
	s.gotAdminID = adminID
	if s.approveErr != nil {
		return nil, nil, s.approveErr
	}
	return &model.TaskSubmission{ID: id, Status: model.SubmissionApproved},
		&model.Certificate{ID: uuid.New()}, nil
}

func (s *stubSubmissionService) RejectSubmission(_ context.Context, id uuid.UUID, adminID, reason string) (*model.TaskSubmission, error) {
	s.gotAdminID = adminID
	s.gotReason = reason
	if s.rejectErr != nil {
		return nil, s.rejectErr
	}
	return &model.TaskSubmission{ID: id, Status: model.SubmissionRejected}, nil
}

func newSubmissionTestRouter(stub *stubSubmissionService) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)
	adminAuth := auth.NewAdminAuth("test-secret")
	token, _ := adminAuth.GenerateToken(uuid.NewString(), "admin@school.edu", "Admin", "admin")

	router := gin.New()
	NewSubmissionRoutes(router.Group("/api/v1"), stub, adminAuth)
	return router, token
}

func TestSubmissionRoutes_Authorization(t *testing.T) {
	router, _ := newSubmissionTestRouter(&stubSubmissionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/submissions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmissionRoutes_Approve(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		approveErr     error
		expectedStatus int
	}{
		{
			name:           "approved",
			path:           "/api/v1/submissions/" + uuid.NewString() + "/approve",
			body:           `{"adminId":"` + uuid.NewString() + `"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed submission id",
			path:           "/api/v1/submissions/undefined/approve",
			body:           `{"adminId":"` + uuid.NewString() + `"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid admin id",
			path:           "/api/v1/submissions/" + uuid.NewString() + "/approve",
			body:           `{"adminId":"undefined"}`,
			approveErr:     service.ErrInvalidAdminID,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown submission",
			path:           "/api/v1/submissions/" + uuid.NewString() + "/approve",
			body:           `{"adminId":"` + uuid.NewString() + `"}`,
			approveErr:     service.ErrSubmissionNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "certificate creation failure",
			path:           "/api/v1/submissions/" + uuid.NewString() + "/approve",
			body:           `{"adminId":"` + uuid.NewString() + `"}`,
			approveErr:     service.ErrCertificateCreation,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubSubmissionService{approveErr: tt.approveErr}
			router, token := newSubmissionTestRouter(stub)

			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSubmissionRoutes_Reject(t *testing.T) {
	stub := &stubSubmissionService{}
	router, token := newSubmissionTestRouter(stub)

	body := `{"adminId":"` + uuid.NewString() + `","reason":"proof missing"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/"+uuid.NewString()+"/reject", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "proof missing", stub.gotReason)
}
