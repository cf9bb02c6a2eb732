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

type submissionRow struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"user_id"`
	TaskID          uuid.UUID  `db:"task_id"`
	ProofURL        *string    `db:"proof_url"`
	ProofText       *string    `db:"proof_text"`
	Status          string     `db:"status"`
	RejectionReason *string    `db:"rejection_reason"`
	ValidatedBy     *uuid.UUID `db:"validated_by"`
	ValidatedAt     *time.Time `db:"validated_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (s *submissionRow) toModel() *model.TaskSubmission {
	return &model.TaskSubmission{
		ID:              s.ID,
		UserID:          s.UserID,
		TaskID:          s.TaskID,
		ProofURL:        s.ProofURL,
		ProofText:       s.ProofText,
		Status:          model.SubmissionStatus(s.Status),
		RejectionReason: s.RejectionReason,
		ValidatedBy:     s.ValidatedBy,
		ValidatedAt:     s.ValidatedAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type submissionJoinedRow struct {
	submissionRow

	UserEmail           string  `db:"user_email"`
	UserName            string  `db:"user_name"`
	UserPhone           *string `db:"user_phone"`
	UserTotalPoints     int     `db:"user_total_points"`
	UserAvailablePoints int     `db:"user_available_points"`
	UserReferralCode    string  `db:"user_referral_code"`

	TaskTitle              string `db:"task_title"`
	TaskDescription        string `db:"task_description"`
	TaskPoints             int    `db:"task_points"`
	TaskRequiresValidation bool   `db:"task_requires_validation"`
}

func (s *submissionJoinedRow) toModel() *model.TaskSubmission {
	sub := s.submissionRow.toModel()
	sub.User = &model.User{
		ID:              s.UserID,
		Email:           s.UserEmail,
		Name:            s.UserName,
		Phone:           s.UserPhone,
		TotalPoints:     s.UserTotalPoints,
		AvailablePoints: s.UserAvailablePoints,
		ReferralCode:    s.UserReferralCode,
	}
	sub.Task = &model.Task{
		ID:                 s.TaskID,
		Title:              s.TaskTitle,
		Description:        s.TaskDescription,
		Points:             s.TaskPoints,
		RequiresValidation: s.TaskRequiresValidation,
	}
	return sub
}

func submissionJoinedSelect() squirrel.SelectBuilder {
	return squirrel.Select(
		"s.id",
		"s.user_id",
		"s.task_id",
		"s.proof_url",
		"s.proof_text",
		"s.status",
		"s.rejection_reason",
		"s.validated_by",
		"s.validated_at",
		"s.created_at",
		"s.updated_at",
		"u.email AS user_email",
		"u.name AS user_name",
		"u.phone AS user_phone",
		"u.total_points AS user_total_points",
		"u.available_points AS user_available_points",
		"u.referral_code AS user_referral_code",
		"t.title AS task_title",
		"t.description AS task_description",
		"t.points AS task_points",
		"t.requires_validation AS task_requires_validation",
	).
		From("task_submissions s").
		Join("users u ON u.id = s.user_id").
		Join("tasks t ON t.id = s.task_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *Repository) ListSubmissions(ctx context.Context, status *model.SubmissionStatus) ([]*model.TaskSubmission, error) {
	query := submissionJoinedSelect().OrderBy("s.created_at DESC")
	if status != nil {
		query = query.Where(squirrel.Eq{"s.status": *status})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []submissionJoinedRow
	err = r.db.SelectContext(ctx, &rows, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	submissions := make([]*model.TaskSubmission, len(rows))
	for i := range rows {
		submissions[i] = rows[i].toModel()
	}

	return submissions, nil
}

func (r *Repository) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*model.TaskSubmission, error) {
	sqlQuery, args, err := submissionJoinedSelect().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row submissionJoinedRow
	err = r.db.GetContext(ctx, &row, sqlQuery, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}

// GetSubmissionRefs fetches the minimal projection needed before an
// approval. No joins, so rows with dangling references still load.
func (r *Repository) GetSubmissionRefs(ctx context.Context, id uuid.UUID) (*model.SubmissionRefs, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "task_id").
		From("task_submissions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row struct {
		ID     uuid.UUID  `db:"id"`
		UserID *uuid.UUID `db:"user_id"`
		TaskID *uuid.UUID `db:"task_id"`
	}
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.SubmissionRefs{
		ID:     row.ID,
		UserID: row.UserID,
		TaskID: row.TaskID,
	}, nil
}

// ApproveSubmission stamps the row approved regardless of its current
// status. A second approval re-stamps the validator and timestamp.
func (r *Repository) ApproveSubmission(ctx context.Context, id, adminID uuid.UUID) (*model.TaskSubmission, error) {
	query, args, err := squirrel.
		Update("task_submissions").
		SetMap(map[string]interface{}{
			"status":       model.SubmissionApproved,
			"validated_by": adminID,
			"validated_at": time.Now().UTC(),
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row submissionRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}

func (r *Repository) RejectSubmission(ctx context.Context, id, adminID uuid.UUID, reason string) (*model.TaskSubmission, error) {
	query, args, err := squirrel.
		Update("task_submissions").
		SetMap(map[string]interface{}{
			"status":           model.SubmissionRejected,
			"rejection_reason": reason,
			"validated_by":     adminID,
			"validated_at":     time.Now().UTC(),
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row submissionRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}
