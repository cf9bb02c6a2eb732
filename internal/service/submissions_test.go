package service

import (
	"context"
	"testing"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/repository"
	"SRP_admin_backend/internal/service/mocks"
	"SRP_admin_backend/pkg/mailer"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubmissionService_ApproveSubmission(t *testing.T) {
	submissionID := uuid.New()
	adminID := uuid.New()
	userID := uuid.New()
	taskID := uuid.New()
	certID := uuid.New()

	refs := &model.SubmissionRefs{
		ID:     submissionID,
		UserID: &userID,
		TaskID: &taskID,
	}
	user := &model.User{
		ID:          userID,
		Email:       "student@school.edu",
		Name:        "Student",
		TotalPoints: 50,
	}
	task := &model.Task{
		ID:     taskID,
		Title:  "Refer five friends",
		Points: 25,
	}
	approved := &model.TaskSubmission{
		ID:     submissionID,
		UserID: userID,
		TaskID: taskID,
		Status: model.SubmissionApproved,
	}
	certificate := &model.Certificate{
		ID:               certID,
		UserID:           userID,
		TaskSubmissionID: submissionID,
		CertificateURL:   "https://example.com/certificates/" + submissionID.String() + ".pdf",
	}
	certificateSent := &model.Certificate{
		ID:               certID,
		UserID:           userID,
		TaskSubmissionID: submissionID,
		CertificateURL:   certificate.CertificateURL,
		EmailSent:        true,
	}

	tests := []struct {
		name          string
		adminID       string
		mockSetup     func(*mocks.MockSubmissionRepository, *mailer.Mock)
		expectedError error
		check         func(*testing.T, *model.TaskSubmission, *model.Certificate, *mailer.Mock)
	}{
		{
			name:    "full approval credits points, issues certificate and sends email",
			adminID: adminID.String(),
			mockSetup: func(repo *mocks.MockSubmissionRepository, _ *mailer.Mock) {
				repo.On("GetSubmissionRefs", mock.Anything, submissionID).Return(refs, nil)
				repo.On("ApproveSubmission", mock.Anything, submissionID, adminID).Return(approved, nil)
				repo.On("GetUserByID", mock.Anything, userID).Return(user, nil)
				repo.On("GetTaskByID", mock.Anything, taskID).Return(task, nil)
				repo.On("UpdateUserPoints", mock.Anything, userID, 75).Return(&model.User{
					ID:              userID,
					TotalPoints:     75,
					AvailablePoints: 75,
				}, nil)
				repo.On("CreateCertificate", mock.Anything, userID, submissionID, certificate.CertificateURL).
					Return(certificate, nil)
				repo.On("UpdateCertificateEmailStatus", mock.Anything, certID, true).
					Return(certificateSent, nil)
			},
			check: func(t *testing.T, s *model.TaskSubmission, c *model.Certificate, m *mailer.Mock) {
				assert.Equal(t, model.SubmissionApproved, s.Status)
				assert.True(t, c.EmailSent)
				assert.Len(t, m.Sent, 1)
				assert.Equal(t, "student@school.edu", m.Sent[0].To)
				assert.Equal(t, "Refer five friends", m.Sent[0].TaskTitle)
			},
		},
		{
			name:    "undefined admin id rejected before any repository call",
			adminID: "undefined",
			mockSetup: func(repo *mocks.MockSubmissionRepository, _ *mailer.Mock) {
			},
			expectedError: ErrInvalidAdminID,
		},
		{
			name:    "empty admin id rejected",
			adminID: "",
			mockSetup: func(repo *mocks.MockSubmissionRepository, _ *mailer.Mock) {
			},
			expectedError: ErrInvalidAdminID,
		},
		{
			name:    "non uuid admin id rejected",
			adminID: "not-a-uuid",
			mockSetup: func(repo *mocks.MockSubmissionRepository, _ *mailer.Mock) {
			},
			expectedError: ErrInvalidAdminID,
		},
		{
			name:    "unknown submission",
			adminID: adminID.String(),
			mockSetup: func(repo *mocks.MockSubmissionRepository, _ *mailer.Mock) {
				repo.On("GetSubmissionRefs", mock.Anything, submissionID).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrSubmissionNotFound,
		},
		{
			name:    "dangling user reference",
			adminID: adminID.String(),
			mockSetup: func(repo *mocks.MockSubmissionRepository, _ *mailer.Mock) {
				repo.On("GetSubmissionRefs", mock.Anything, submissionID).Return(&model.SubmissionRefs{
					ID:     submissionID,
					UserID: nil,
					TaskID: &taskID,
				}, nil)
			},
			expectedError: ErrInvalidSubmissionData,
		},
		{
			name:    "missing user skips points and email but still issues certificate",
			adminID: adminID.String(),
			mockSetup: func(repo *mocks.MockSubmissionRepository, _ *mailer.Mock) {
				repo.On("GetSubmissionRefs", mock.Anything, submissionID).Return(refs, nil)
				repo.On("ApproveSubmission", mock.Anything, submissionID, adminID).Return(approved, nil)
				repo.On("GetUserByID", mock.Anything, userID).Return(nil, repository.ErrNotFound)
				repo.On("GetTaskByID", mock.Anything, taskID).Return(task, nil)
				repo.On("CreateCertificate", mock.Anything, userID, submissionID, certificate.CertificateURL).
					Return(certificate, nil)
			},
			check: func(t *testing.T, s *model.TaskSubmission, c *model.Certificate, m *mailer.Mock) {
				assert.Empty(t, m.Sent)
				assert.False(t, c.EmailSent)
			},
		},
		{
			name:    "certificate creation failure after points were credited",
			adminID: adminID.String(),
			mockSetup: func(repo *mocks.MockSubmissionRepository, _ *mailer.Mock) {
				repo.On("GetSubmissionRefs", mock.Anything, submissionID).Return(refs, nil)
				repo.On("ApproveSubmission", mock.Anything, submissionID, adminID).Return(approved, nil)
				repo.On("GetUserByID", mock.Anything, userID).Return(user, nil)
				repo.On("GetTaskByID", mock.Anything, taskID).Return(task, nil)
				repo.On("UpdateUserPoints", mock.Anything, userID, 75).Return(user, nil)
				repo.On("CreateCertificate", mock.Anything, userID, submissionID, certificate.CertificateURL).
					Return(&model.Certificate{}, nil)
			},
			expectedError: ErrCertificateCreation,
		},
		{
			name:    "email failure does not fail the approval",
			adminID: adminID.String(),
			mockSetup: func(repo *mocks.MockSubmissionRepository, m *mailer.Mock) {
				m.Err = errors.New("provider down")
				repo.On("GetSubmissionRefs", mock.Anything, submissionID).Return(refs, nil)
				repo.On("ApproveSubmission", mock.Anything, submissionID, adminID).Return(approved, nil)
				repo.On("GetUserByID", mock.Anything, userID).Return(user, nil)
				repo.On("GetTaskByID", mock.Anything, taskID).Return(task, nil)
				repo.On("UpdateUserPoints", mock.Anything, userID, 75).Return(user, nil)
				repo.On("CreateCertificate", mock.Anything, userID, submissionID, certificate.CertificateURL).
					Return(certificate, nil)
			},
			check: func(t *testing.T, s *model.TaskSubmission, c *model.Certificate, m *mailer.Mock) {
				assert.False(t, c.EmailSent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockSubmissionRepository{}
			mockMailer := mailer.NewMock()
			tt.mockSetup(mockRepo, mockMailer)

			svc := NewSubmissionService(mockRepo, mockMailer)
			submission, certificate, err := svc.ApproveSubmission(context.Background(), submissionID, tt.adminID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, submission, certificate, mockMailer)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSubmissionService_RejectSubmission(t *testing.T) {
	submissionID := uuid.New()
	adminID := uuid.New()

	rejected := &model.TaskSubmission{
		ID:     submissionID,
		Status: model.SubmissionRejected,
	}

	tests := []struct {
		name          string
		adminID       string
		reason        string
		mockSetup     func(*mocks.MockSubmissionRepository)
		expectedError error
	}{
		{
			name:    "reject with reason",
			adminID: adminID.String(),
			reason:  "proof does not show completion",
			mockSetup: func(repo *mocks.MockSubmissionRepository) {
				repo.On("RejectSubmission", mock.Anything, submissionID, adminID, "proof does not show completion").
					Return(rejected, nil)
			},
		},
		{
			name:          "missing reason",
			adminID:       adminID.String(),
			reason:        "",
			mockSetup:     func(repo *mocks.MockSubmissionRepository) {},
			expectedError: ErrReasonRequired,
		},
		{
			name:          "invalid admin id checked before reason",
			adminID:       "undefined",
			reason:        "",
			mockSetup:     func(repo *mocks.MockSubmissionRepository) {},
			expectedError: ErrInvalidAdminID,
		},
		{
			name:    "already rejected submission is stamped again",
			adminID: adminID.String(),
			reason:  "second review",
			mockSetup: func(repo *mocks.MockSubmissionRepository) {
				repo.On("RejectSubmission", mock.Anything, submissionID, adminID, "second review").
					Return(rejected, nil)
			},
		},
		{
			name:    "unknown submission",
			adminID: adminID.String(),
			reason:  "whatever",
			mockSetup: func(repo *mocks.MockSubmissionRepository) {
				repo.On("RejectSubmission", mock.Anything, submissionID, adminID, "whatever").
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrSubmissionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockSubmissionRepository{}
			tt.mockSetup(mockRepo)

			svc := NewSubmissionService(mockRepo, mailer.NewMock())
			submission, err := svc.RejectSubmission(context.Background(), submissionID, tt.adminID, tt.reason)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, submission)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.SubmissionRejected, submission.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
