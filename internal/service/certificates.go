package service

import (
	"context"
	"errors"
	"fmt"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/repository"
	"SRP_admin_backend/pkg/mailer"

	"github.com/google/uuid"
)

type CertificateService struct {
	repo   CertificateRepository
	mailer mailer.Mailer
}

func NewCertificateService(repo CertificateRepository, m mailer.Mailer) *CertificateService {
	return &CertificateService{
		repo:   repo,
		mailer: m,
	}
}

func (s *CertificateService) ListCertificates(ctx context.Context) ([]*model.Certificate, error) {
	certificates, err := s.repo.ListCertificates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return certificates, nil
}

// ResendCertificate re-sends the notification email for an existing
// certificate. The certificate is resolved first so an unknown id never
// reaches the email provider.
func (s *CertificateService) ResendCertificate(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	certificate, err := s.repo.GetCertificateByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}

	taskTitle := "Task"
	if certificate.TaskSubmission != nil && certificate.TaskSubmission.Task != nil {
		taskTitle = certificate.TaskSubmission.Task.Title
	}

	err = s.mailer.SendCertificateEmail(ctx, mailer.CertificateEmail{
		To:             certificate.User.Email,
		StudentName:    certificate.User.Name,
		TaskTitle:      taskTitle,
		CertificateURL: certificate.CertificateURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send certificate email: %w", err)
	}

	updated, err := s.repo.UpdateCertificateEmailStatus(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("failed to update email status: %w", err)
	}

	return updated, nil
}
