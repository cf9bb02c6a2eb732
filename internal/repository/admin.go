package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"SRP_admin_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type adminRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r *Repository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var row adminRow
	query, args, err := squirrel.
		Select("*").
		From("admins").
		Where(squirrel.Eq{"email": email}).
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

	return &model.Admin{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		Role:         model.AdminRole(row.Role),
		CreatedAt:    row.CreatedAt,
	}, nil
}
