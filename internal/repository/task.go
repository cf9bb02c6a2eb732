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

type taskRow struct {
	ID                 uuid.UUID `db:"id"`
	Title              string    `db:"title"`
	Description        string    `db:"description"`
	Points             int       `db:"points"`
	RequiresValidation bool      `db:"requires_validation"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (t *taskRow) toModel() *model.Task {
	return &model.Task{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		Points:             t.Points,
		RequiresValidation: t.RequiresValidation,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func (r *Repository) ListTasks(ctx context.Context) ([]*model.Task, error) {
	query, args, err := squirrel.
		Select("*").
		From("tasks").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []taskRow
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*model.Task, len(rows))
	for i := range rows {
		tasks[i] = rows[i].toModel()
	}

	return tasks, nil
}

func (r *Repository) GetTaskByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var row taskRow
	query, args, err := squirrel.
		Select("*").
		From("tasks").
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
