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
	"github.com/jmoiron/sqlx"
)

// referralBonusPoints is awarded to the referrer when a referred user joins.
const referralBonusPoints = 100

type userRow struct {
	ID              uuid.UUID  `db:"id"`
	Email           string     `db:"email"`
	Name            string     `db:"name"`
	Phone           *string    `db:"phone"`
	TotalPoints     int        `db:"total_points"`
	AvailablePoints int        `db:"available_points"`
	ReferralCode    string     `db:"referral_code"`
	ReferredBy      *uuid.UUID `db:"referred_by"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (u *userRow) toModel() *model.User {
	return &model.User{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Phone:           u.Phone,
		TotalPoints:     u.TotalPoints,
		AvailablePoints: u.AvailablePoints,
		ReferralCode:    u.ReferralCode,
		ReferredBy:      u.ReferredBy,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (r *Repository) ListUsers(ctx context.Context) ([]*model.User, error) {
	query, args, err := squirrel.
		Select("*").
		From("users").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []userRow
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*model.User, len(rows))
	for i := range rows {
		users[i] = rows[i].toModel()
	}

	return users, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var row userRow
	query, args, err := squirrel.
		Select("*").
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}

func (r *Repository) SearchUsers(ctx context.Context, search string, limit int) ([]*model.User, error) {
	pattern := "%" + search + "%"
	query, args, err := squirrel.
		Select("*").
		From("users").
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
		}).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []userRow
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	users := make([]*model.User, len(rows))
	for i := range rows {
		users[i] = rows[i].toModel()
	}

	return users, nil
}

// CreateUser inserts the user and, when a referrer is set, the matching
// referral row in the same transaction.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	var created *model.User
	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Insert("users").
			SetMap(map[string]interface{}{
				"email":            user.Email,
				"name":             user.Name,
				"phone":            user.Phone,
				"referral_code":    user.ReferralCode,
				"referred_by":      user.ReferredBy,
				"total_points":     user.TotalPoints,
				"available_points": user.AvailablePoints,
			}).
			Suffix("RETURNING *").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build user insert query: %w", err)
		}

		var row userRow
		err = tx.GetContext(ctx, &row, query, args...)
		if err != nil {
			return mapUniqueViolation(err)
		}
		created = row.toModel()

		if user.ReferredBy != nil {
			refQuery, refArgs, err := squirrel.
				Insert("referrals").
				SetMap(map[string]interface{}{
					"referrer_id":    user.ReferredBy,
					"referred_id":    row.ID,
					"points_awarded": referralBonusPoints,
				}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build referral insert query: %w", err)
			}

			_, err = tx.ExecContext(ctx, refQuery, refArgs...)
			if err != nil {
				return fmt.Errorf("failed to insert referral: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *Repository) UpdateUser(ctx context.Context, id uuid.UUID, update *model.UserUpdate) (*model.User, error) {
	setMap := map[string]interface{}{}
	if update.Email != nil {
		setMap["email"] = *update.Email
	}
	if update.Name != nil {
		setMap["name"] = *update.Name
	}
	if update.Phone != nil {
		setMap["phone"] = *update.Phone
	}
	if update.TotalPoints != nil {
		setMap["total_points"] = *update.TotalPoints
	}
	if update.AvailablePoints != nil {
		setMap["available_points"] = *update.AvailablePoints
	}

	query, args, err := squirrel.
		Update("users").
		SetMap(setMap).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row userRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, mapUniqueViolation(err)
	}

	return row.toModel(), nil
}

// UpdateUserPoints writes the same value to both counters. Lifetime and
// spendable points are not tracked independently here.
func (r *Repository) UpdateUserPoints(ctx context.Context, id uuid.UUID, points int) (*model.User, error) {
	query, args, err := squirrel.
		Update("users").
		Set("total_points", points).
		Set("available_points", points).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row userRow
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toModel(), nil
}

func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	query, args, err := squirrel.
		Delete("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
