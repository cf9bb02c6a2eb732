package repository

import (
	"context"
	"fmt"
	"time"

	"SRP_admin_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type referralRow struct {
	ID            uuid.UUID `db:"id"`
	ReferrerID    uuid.UUID `db:"referrer_id"`
	ReferredID    uuid.UUID `db:"referred_id"`
	PointsAwarded int       `db:"points_awarded"`
	CreatedAt     time.Time `db:"created_at"`

	ReferrerEmail string `db:"referrer_email"`
	ReferrerName  string `db:"referrer_name"`
	ReferredEmail string `db:"referred_email"`
	ReferredName  string `db:"referred_name"`
}

func (rr *referralRow) toModel() *model.Referral {
	return &model.Referral{
		ID:            rr.ID,
		ReferrerID:    rr.ReferrerID,
		ReferredID:    rr.ReferredID,
		PointsAwarded: rr.PointsAwarded,
		CreatedAt:     rr.CreatedAt,
		Referrer: &model.User{
			ID:    rr.ReferrerID,
			Email: rr.ReferrerEmail,
			Name:  rr.ReferrerName,
		},
		Referred: &model.User{
			ID:    rr.ReferredID,
			Email: rr.ReferredEmail,
			Name:  rr.ReferredName,
		},
	}
}

// ListReferralsByUser returns referrals where the user appears on either
// side of the relationship, with both users joined in.
func (r *Repository) ListReferralsByUser(ctx context.Context, userID uuid.UUID) ([]*model.Referral, error) {
	query := squirrel.Select(
		"ref.id",
		"ref.referrer_id",
		"ref.referred_id",
		"ref.points_awarded",
		"ref.created_at",
		"referrer.email AS referrer_email",
		"referrer.name AS referrer_name",
		"referred.email AS referred_email",
		"referred.name AS referred_name",
	).
		From("referrals ref").
		Join("users referrer ON referrer.id = ref.referrer_id").
		Join("users referred ON referred.id = ref.referred_id").
		Where(squirrel.Or{
			squirrel.Eq{"ref.referrer_id": userID},
			squirrel.Eq{"ref.referred_id": userID},
		}).
		OrderBy("ref.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var rows []referralRow
	err = r.db.SelectContext(ctx, &rows, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get referrals: %w", err)
	}

	referrals := make([]*model.Referral, len(rows))
	for i := range rows {
		referrals[i] = rows[i].toModel()
	}

	return referrals, nil
}

func insertReferralsTx(ctx context.Context, tx *sqlx.Tx, referrals []*model.Referral) ([]*model.Referral, error) {
	builder := squirrel.
		Insert("referrals").
		Columns("referrer_id", "referred_id", "points_awarded")

	for _, ref := range referrals {
		builder = builder.Values(ref.ReferrerID, ref.ReferredID, ref.PointsAwarded)
	}

	query, args, err := builder.
		Suffix("RETURNING id, referrer_id, referred_id, points_awarded, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build referral insert query: %w", err)
	}

	var rows []struct {
		ID            uuid.UUID `db:"id"`
		ReferrerID    uuid.UUID `db:"referrer_id"`
		ReferredID    uuid.UUID `db:"referred_id"`
		PointsAwarded int       `db:"points_awarded"`
		CreatedAt     time.Time `db:"created_at"`
	}
	err = tx.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert referrals: %w", err)
	}

	created := make([]*model.Referral, len(rows))
	for i, row := range rows {
		created[i] = &model.Referral{
			ID:            row.ID,
			ReferrerID:    row.ReferrerID,
			ReferredID:    row.ReferredID,
			PointsAwarded: row.PointsAwarded,
			CreatedAt:     row.CreatedAt,
		}
	}

	return created, nil
}
