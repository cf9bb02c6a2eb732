package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"SRP_admin_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type certificateRow struct {
	ID               uuid.UUID  `db:"id"`
	UserID           uuid.UUID  `db:"user_id"`
	TaskSubmissionID uuid.UUID  `db:"task_submission_id"`
	CertificateURL   string     `db:"certificate_url"`
	EmailSent        bool       `db:"email_sent"`
	EmailSentAt      *time.Time `db:"email_sent_at"`
	IssuedAt         time.Time  `db:"issued_at"`
	CreatedAt        time.Time  `db:"created_at"`
}

func (c *certificateRow) toModel() *model.Certificate {
	return &model.Certificate{
		ID:               c.ID,
		UserID:           c.UserID,
		TaskSubmissionID: c.TaskSubmissionID,
		CertificateURL:   c.CertificateURL,
		EmailSent:        c.EmailSent,
		EmailSentAt:      c.EmailSentAt,
		IssuedAt:         c.IssuedAt,
		CreatedAt:        c.CreatedAt,
	}
}

type certificateJoinedRow struct {
	certificateRow

	UserEmail string `db:"user_email"`
	UserName  string `db:"user_name"`

	SubmissionTaskID uuid.UUID `db:"submission_task_id"`
	SubmissionStatus string    `db:"submission_status"`
	TaskTitle        string    `db:"task_title"`
	TaskPoints       int       `db:"task_points"`
}

func (c *certificateJoinedRow) toModel() *model.Certificate {
	cert := c.certificateRow.toModel()
	cert.User = &model.User{
		ID:    c.UserID,
		Email: c.UserEmail,
		Name:  c.UserName,
	}
	cert.TaskSubmission = &model.TaskSubmission{
		ID:     c.TaskSubmissionID,
		UserID: c.UserID,
		TaskID: c.SubmissionTaskID,
		Status: model.SubmissionStatus(c.SubmissionStatus),
		Task: &model.Task{
			ID:     c.SubmissionTaskID,
			Title:  c.TaskTitle,
			Points: c.TaskPoints,
		},
	}
	return cert
}

func certificateJoinedSelect() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id",
		"c.user_id",
		"c.task_submission_id",
		"c.certificate_url",
		"c.email_sent",
		"c.email_sent_at",
		"c.issued_at",
		"c.created_at",
		"u.email AS user_email",
		"u.name AS user_name",
		"s.task_id AS submission_task_id",
		"s.status AS submission_status",
		"t.title AS task_title",
		"t.points AS task_points",
	).
		From("certificates c").
		Join("users u ON u.id = c.user_id").
		Join("task_submissions s ON s.id = c.task_submission_id").
		Join("tasks t ON t.id = s.task_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *Repository) ListCertificates(ctx context.Context) ([]*model.Certificate, error) {
	sqlQuery, args, err := certificateJoinedSelect().
		OrderBy("c.issued_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []certificateJoinedRow
	err = r.db.SelectContext(ctx, &rows, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}

	certificates := make([]*model.Certificate, len(rows))
	for i := range rows {
		certificates[i] = rows[i].toModel()
	}

	return certificates, nil
}

func (r *Repository) GetCertificateByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	sqlQuery, args, err := certificateJoinedSelect().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row certificateJoinedRow
	err = r.db.GetContext(ctx, &row, sqlQuery, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}

// CreateCertificate inserts a certificate. issued_at is defaulted by the
// store.
func (r *Repository) CreateCertificate(ctx context.Context, userID, submissionID uuid.UUID, certificateURL string) (*model.Certificate, error) {
	query, args, err := squirrel.
		Insert("certificates").
		SetMap(map[string]interface{}{
			"user_id":            userID,
			"task_submission_id": submissionID,
			"certificate_url":    certificateURL,
		}).
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row certificateRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert certificate: %w", err)
	}

	return row.toModel(), nil
}

func (r *Repository) UpdateCertificateEmailStatus(ctx context.Context, id uuid.UUID, sent bool) (*model.Certificate, error) {
	var sentAt interface{}
	if sent {
		sentAt = time.Now().UTC()
	}

	query, args, err := squirrel.
		Update("certificates").
		Set("email_sent", sent).
		Set("email_sent_at", sentAt).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row certificateRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}
