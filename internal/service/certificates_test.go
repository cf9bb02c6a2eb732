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

func TestCertificateService_ResendCertificate(t *testing.T) {
	certID := uuid.New()

	certificate := &model.Certificate{
		ID:             certID,
		CertificateURL: "https://example.com/certificates/abc.pdf",
		User: &model.User{
			Email: "student@school.edu",
			Name:  "Student",
		},
		TaskSubmission: &model.TaskSubmission{
			Task: &model.Task{Title: "Refer five friends"},
		},
	}

	t.Run("resend marks email sent", func(t *testing.T) {
		mockRepo := &mocks.MockCertificateRepository{}
		mockRepo.On("GetCertificateByID", mock.Anything, certID).Return(certificate, nil)
		mockRepo.On("UpdateCertificateEmailStatus", mock.Anything, certID, true).
			Return(&model.Certificate{ID: certID, EmailSent: true}, nil)

		mockMailer := mailer.NewMock()
		svc := NewCertificateService(mockRepo, mockMailer)

		updated, err := svc.ResendCertificate(context.Background(), certID)

		assert.NoError(t, err)
		assert.True(t, updated.EmailSent)
		assert.Len(t, mockMailer.Sent, 1)
		assert.Equal(t, "Refer five friends", mockMailer.Sent[0].TaskTitle)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown certificate never reaches the mailer", func(t *testing.T) {
		mockRepo := &mocks.MockCertificateRepository{}
		mockRepo.On("GetCertificateByID", mock.Anything, certID).
			Return(nil, repository.ErrNotFound)

		mockMailer := mailer.NewMock()
		svc := NewCertificateService(mockRepo, mockMailer)

		_, err := svc.ResendCertificate(context.Background(), certID)

		assert.ErrorIs(t, err, ErrCertificateNotFound)
		assert.Empty(t, mockMailer.Sent)
		mockRepo.AssertExpectations(t)
	})

	t.Run("send failure is fatal and leaves the sent flag untouched", func(t *testing.T) {
		mockRepo := &mocks.MockCertificateRepository{}
		mockRepo.On("GetCertificateByID", mock.Anything, certID).Return(certificate, nil)

		mockMailer := mailer.NewMock()
		mockMailer.Err = errors.New("provider down")
		svc := NewCertificateService(mockRepo, mockMailer)

		_, err := svc.ResendCertificate(context.Background(), certID)

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateCertificateEmailStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing task falls back to a generic title", func(t *testing.T) {
		bare := &model.Certificate{
			ID:             certID,
			CertificateURL: certificate.CertificateURL,
			User:           certificate.User,
		}

		mockRepo := &mocks.MockCertificateRepository{}
		mockRepo.On("GetCertificateByID", mock.Anything, certID).Return(bare, nil)
		mockRepo.On("UpdateCertificateEmailStatus", mock.Anything, certID, true).
			Return(bare, nil)

		mockMailer := mailer.NewMock()
		svc := NewCertificateService(mockRepo, mockMailer)

		_, err := svc.ResendCertificate(context.Background(), certID)

		assert.NoError(t, err)
		assert.Equal(t, "Task", mockMailer.Sent[0].TaskTitle)
	})
}
