package service

import (
	"context"
	"errors"
	"fmt"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/repository"
	"SRP_admin_backend/pkg/logger"
	"SRP_admin_backend/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubmissionService struct {
	repo   SubmissionRepository
	mailer mailer.Mailer
}

func NewSubmissionService(repo SubmissionRepository, m mailer.Mailer) *SubmissionService {
	return &SubmissionService{
		repo:   repo,
		mailer: m,
	}
}

func (s *SubmissionService) ListSubmissions(ctx context.Context, status *model.SubmissionStatus) ([]*model.TaskSubmission, error) {
	submissions, err := s.repo.ListSubmissions(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id uuid.UUID) (*model.TaskSubmission, error) {
	submission, err := s.repo.GetSubmissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return submission, nil
}

// ApproveSubmission runs the full approval sequence: stamp the
// submission, credit the task's points to the user, issue a certificate
// and send the notification email. Each write commits independently, so
// a failure partway leaves earlier writes in place. The email is
// best-effort and never fails the approval.
func (s *SubmissionService) ApproveSubmission(ctx context.Context, id uuid.UUID, adminID string) (*model.TaskSubmission, *model.Certificate, error) {
	log := logger.Logger()

	aid, err := validateAdminID(adminID)
	if err != nil {
		return nil, nil, err
	}

	refs, err := s.repo.GetSubmissionRefs(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrSubmissionNotFound
		}
		return nil, nil, fmt.Errorf("failed to fetch submission: %w", err)
	}

	// Rows with dangling references would otherwise credit points or
	// issue certificates against nothing.
	if refs.UserID == nil || refs.TaskID == nil {
		return nil, nil, ErrInvalidSubmissionData
	}

	submission, err := s.repo.ApproveSubmission(ctx, id, aid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrSubmissionNotFound
		}
		return nil, nil, fmt.Errorf("failed to approve submission: %w", err)
	}

	user, err := s.lookupUser(ctx, *refs.UserID)
	if err != nil {
		return nil, nil, err
	}
	task, err := s.lookupTask(ctx, *refs.TaskID)
	if err != nil {
		return nil, nil, err
	}

	if user != nil && task != nil {
		newPoints := user.TotalPoints + task.Points
		_, err = s.repo.UpdateUserPoints(ctx, user.ID, newPoints)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to credit points: %w", err)
		}
		log.Info("credited points for approved submission",
			zap.String("user_id", user.ID.String()),
			zap.Int("new_points", newPoints))
	}

	certificateURL := fmt.Sprintf("https://example.com/certificates/%s.pdf", id)
	certificate, err := s.repo.CreateCertificate(ctx, *refs.UserID, id, certificateURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create certificate: %w", err)
	}
	if certificate == nil || certificate.ID == uuid.Nil {
		// The submission and points writes above are already committed
		// and are not rolled back.
		return nil, nil, ErrCertificateCreation
	}

	if user != nil && task != nil {
		err = s.mailer.SendCertificateEmail(ctx, mailer.CertificateEmail{
			To:             user.Email,
			StudentName:    user.Name,
			TaskTitle:      task.Title,
			CertificateURL: certificate.CertificateURL,
		})
		if err != nil {
			log.Error("failed to send certificate email", zap.Error(err),
				zap.String("certificate_id", certificate.ID.String()))
		} else {
			updated, err := s.repo.UpdateCertificateEmailStatus(ctx, certificate.ID, true)
			if err != nil {
				log.Error("failed to update certificate email status", zap.Error(err),
					zap.String("certificate_id", certificate.ID.String()))
			} else {
				certificate = updated
			}
		}
	}

	return submission, certificate, nil
}

func (s *SubmissionService) RejectSubmission(ctx context.Context, id uuid.UUID, adminID, reason string) (*model.TaskSubmission, error) {
	aid, err := validateAdminID(adminID)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrReasonRequired
	}

	submission, err := s.repo.RejectSubmission(ctx, id, aid, reason)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to reject submission: %w", err)
	}

	return submission, nil
}

func (s *SubmissionService) lookupUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *SubmissionService) lookupTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}
