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

type payoutRow struct {
	ID                   uuid.UUID  `db:"id"`
	UserID               uuid.UUID  `db:"user_id"`
	RedeemRequestID      *uuid.UUID `db:"redeem_request_id"`
	Amount               float64    `db:"amount"`
	PointsRedeemed       int        `db:"points_redeemed"`
	PaymentMethod        string     `db:"payment_method"`
	TransactionReference *string    `db:"transaction_reference"`
	Status               string     `db:"status"`
	AdminNotes           *string    `db:"admin_notes"`
	ProcessedBy          *uuid.UUID `db:"processed_by"`
	CompletedAt          *time.Time `db:"completed_at"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}

func (p *payoutRow) toModel() *model.Payout {
	return &model.Payout{
		ID:                   p.ID,
		UserID:               p.UserID,
		RedeemRequestID:      p.RedeemRequestID,
		Amount:               p.Amount,
		PointsRedeemed:       p.PointsRedeemed,
		PaymentMethod:        model.PaymentMethod(p.PaymentMethod),
		TransactionReference: p.TransactionReference,
		Status:               model.PayoutStatus(p.Status),
		AdminNotes:           p.AdminNotes,
		ProcessedBy:          p.ProcessedBy,
		CompletedAt:          p.CompletedAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

type payoutJoinedRow struct {
	payoutRow

	UserEmail string `db:"user_email"`
	UserName  string `db:"user_name"`
}

func (p *payoutJoinedRow) toModel() *model.Payout {
	payout := p.payoutRow.toModel()
	payout.User = &model.User{
		ID:    p.UserID,
		Email: p.UserEmail,
		Name:  p.UserName,
	}
	return payout
}

func (r *Repository) ListPayouts(ctx context.Context, status *model.PayoutStatus) ([]*model.Payout, error) {
	query := squirrel.Select(
		"p.id",
		"p.user_id",
		"p.redeem_request_id",
		"p.amount",
		"p.points_redeemed",
		"p.payment_method",
		"p.transaction_reference",
		"p.status",
		"p.admin_notes",
		"p.processed_by",
		"p.completed_at",
		"p.created_at",
		"p.updated_at",
		"u.email AS user_email",
		"u.name AS user_name",
	).
		From("payouts p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if status != nil {
		query = query.Where(squirrel.Eq{"p.status": *status})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []payoutJoinedRow
	err = r.db.SelectContext(ctx, &rows, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}

	payouts := make([]*model.Payout, len(rows))
	for i := range rows {
		payouts[i] = rows[i].toModel()
	}

	return payouts, nil
}

// UpdatePayout applies the partial update as given. Any status can be
// written over any other status.
func (r *Repository) UpdatePayout(ctx context.Context, id uuid.UUID, update *model.PayoutUpdate) (*model.Payout, error) {
	setMap := map[string]interface{}{}
	if update.TransactionReference != nil {
		setMap["transaction_reference"] = *update.TransactionReference
	}
	if update.Status != nil {
		setMap["status"] = *update.Status
	}
	if update.AdminNotes != nil {
		setMap["admin_notes"] = *update.AdminNotes
	}
	if update.CompletedAt != nil {
		setMap["completed_at"] = *update.CompletedAt
	}

	query, args, err := squirrel.
		Update("payouts").
		SetMap(setMap).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row payoutRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}
