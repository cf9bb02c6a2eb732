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

type redeemRow struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"user_id"`
	PointsRequested int        `db:"points_requested"`
	Status          string     `db:"status"`
	AdminNotes      *string    `db:"admin_notes"`
	ProcessedBy     *uuid.UUID `db:"processed_by"`
	ProcessedAt     *time.Time `db:"processed_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (rr *redeemRow) toModel() *model.RedeemRequest {
	return &model.RedeemRequest{
		ID:              rr.ID,
		UserID:          rr.UserID,
		PointsRequested: rr.PointsRequested,
		Status:          model.RedeemStatus(rr.Status),
		AdminNotes:      rr.AdminNotes,
		ProcessedBy:     rr.ProcessedBy,
		ProcessedAt:     rr.ProcessedAt,
		CreatedAt:       rr.CreatedAt,
		UpdatedAt:       rr.UpdatedAt,
	}
}

type redeemJoinedRow struct {
	redeemRow

	UserEmail           string `db:"user_email"`
	UserName            string `db:"user_name"`
	UserAvailablePoints int    `db:"user_available_points"`
}

func (rr *redeemJoinedRow) toModel() *model.RedeemRequest {
	req := rr.redeemRow.toModel()
	req.User = &model.User{
		ID:              rr.UserID,
		Email:           rr.UserEmail,
		Name:            rr.UserName,
		AvailablePoints: rr.UserAvailablePoints,
	}
	return req
}

func (r *Repository) ListRedeemRequests(ctx context.Context, status *model.RedeemStatus) ([]*model.RedeemRequest, error) {
	query := squirrel.Select(
		"rr.id",
		"rr.user_id",
		"rr.points_requested",
		"rr.status",
		"rr.admin_notes",
		"rr.processed_by",
		"rr.processed_at",
		"rr.created_at",
		"rr.updated_at",
		"u.email AS user_email",
		"u.name AS user_name",
		"u.available_points AS user_available_points",
	).
		From("redeem_requests rr").
		Join("users u ON u.id = rr.user_id").
		OrderBy("rr.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if status != nil {
		query = query.Where(squirrel.Eq{"rr.status": *status})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []redeemJoinedRow
	err = r.db.SelectContext(ctx, &rows, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list redeem requests: %w", err)
	}

	requests := make([]*model.RedeemRequest, len(rows))
	for i := range rows {
		requests[i] = rows[i].toModel()
	}

	return requests, nil
}

func (r *Repository) ApproveRedeemRequest(ctx context.Context, id, adminID uuid.UUID, notes *string) (*model.RedeemRequest, error) {
	return r.stampRedeemRequest(ctx, id, adminID, model.RedeemApproved, notes)
}

func (r *Repository) RejectRedeemRequest(ctx context.Context, id, adminID uuid.UUID, reason string) (*model.RedeemRequest, error) {
	return r.stampRedeemRequest(ctx, id, adminID, model.RedeemRejected, &reason)
}

func (r *Repository) stampRedeemRequest(ctx context.Context, id, adminID uuid.UUID, status model.RedeemStatus, notes *string) (*model.RedeemRequest, error) {
	query, args, err := squirrel.
		Update("redeem_requests").
		SetMap(map[string]interface{}{
			"status":       status,
			"admin_notes":  notes,
			"processed_by": adminID,
			"processed_at": time.Now().UTC(),
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row redeemRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}
