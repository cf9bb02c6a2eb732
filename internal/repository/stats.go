package repository

import (
	"context"
	"fmt"

	"SRP_admin_backend/internal/model"

	"github.com/Masterminds/squirrel"
)

func (r *Repository) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	counts := []struct {
		dest  *int
		table string
		where squirrel.Sqlizer
	}{
		{&stats.TotalUsers, "users", nil},
		{&stats.TotalReferrals, "referrals", nil},
		{&stats.PendingValidations, "task_submissions", squirrel.Eq{"status": model.SubmissionPending}},
		{&stats.PendingRedemptions, "redeem_requests", squirrel.Eq{"status": model.RedeemPending}},
		{&stats.CompletedPayouts, "payouts", squirrel.Eq{"status": model.PayoutCompleted}},
	}

	for _, c := range counts {
		query := squirrel.Select("count(*)").From(c.table).PlaceholderFormat(squirrel.Dollar)
		if c.where != nil {
			query = query.Where(c.where)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return nil, err
		}

		err = r.db.GetContext(ctx, c.dest, sqlQuery, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	query, args, err := squirrel.
		Select("coalesce(sum(total_points), 0)").
		From("users").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &stats.TotalPointsAwarded, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum awarded points: %w", err)
	}

	return stats, nil
}
