package repository

import (
	"context"
	"fmt"

	"SRP_admin_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateDemoUser bulk-creates a user together with nested submissions,
// certificates, redemptions, payouts and referral links in a single
// transaction. Used to seed realistic test data in one call.
func (r *Repository) CreateDemoUser(ctx context.Context, input *model.DemoUserInput) (*model.DemoUserData, error) {
	data := &model.DemoUserData{}

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		user, err := insertDemoUserTx(ctx, tx, input)
		if err != nil {
			return err
		}
		data.User = user

		if len(input.Submissions) > 0 {
			submissions, err := insertDemoSubmissionsTx(ctx, tx, user.ID, input.Submissions)
			if err != nil {
				return err
			}
			data.Submissions = submissions

			if input.GenerateCertificates {
				certificates, err := insertDemoCertificatesTx(ctx, tx, user.ID, submissions)
				if err != nil {
					return err
				}
				data.Certificates = certificates
			}
		}

		if len(input.Redemptions) > 0 {
			redemptions, err := insertDemoRedemptionsTx(ctx, tx, user.ID, input.Redemptions)
			if err != nil {
				return err
			}
			data.Redemptions = redemptions
		}

		if len(input.Payouts) > 0 {
			payouts, err := insertDemoPayoutsTx(ctx, tx, user.ID, input.Payouts)
			if err != nil {
				return err
			}
			data.Payouts = payouts
		}

		referrals := make([]*model.Referral, 0, len(input.ReferredUserIDs)+1)
		for _, referredID := range input.ReferredUserIDs {
			referrals = append(referrals, &model.Referral{
				ReferrerID:    user.ID,
				ReferredID:    referredID,
				PointsAwarded: referralBonusPoints,
			})
		}
		if input.ReferredBy != nil {
			referrals = append(referrals, &model.Referral{
				ReferrerID:    *input.ReferredBy,
				ReferredID:    user.ID,
				PointsAwarded: referralBonusPoints,
			})
		}
		if len(referrals) > 0 {
			created, err := insertReferralsTx(ctx, tx, referrals)
			if err != nil {
				return err
			}
			data.Referrals = created
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

func insertDemoUserTx(ctx context.Context, tx *sqlx.Tx, input *model.DemoUserInput) (*model.User, error) {
	query, args, err := squirrel.
		Insert("users").
		SetMap(map[string]interface{}{
			"email":            input.Email,
			"name":             input.Name,
			"phone":            input.Phone,
			"referral_code":    input.ReferralCode,
			"referred_by":      input.ReferredBy,
			"total_points":     input.TotalPoints,
			"available_points": input.AvailablePoints,
		}).
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user insert query: %w", err)
	}

	var row userRow
	err = tx.GetContext(ctx, &row, query, args...)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	return row.toModel(), nil
}

func insertDemoSubmissionsTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, submissions []model.DemoSubmission) ([]*model.TaskSubmission, error) {
	builder := squirrel.
		Insert("task_submissions").
		Columns("user_id", "task_id", "proof_url", "proof_text", "status", "rejection_reason", "validated_by", "validated_at")

	for _, sub := range submissions {
		status := sub.Status
		if status == "" {
			status = model.SubmissionPending
		}
		builder = builder.Values(userID, sub.TaskID, sub.ProofURL, sub.ProofText, status, sub.RejectionReason, sub.ValidatedBy, sub.ValidatedAt)
	}

	query, args, err := builder.
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build submissions insert query: %w", err)
	}

	var rows []submissionRow
	err = tx.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert submissions: %w", err)
	}

	created := make([]*model.TaskSubmission, len(rows))
	for i := range rows {
		created[i] = rows[i].toModel()
	}

	return created, nil
}

func insertDemoCertificatesTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, submissions []*model.TaskSubmission) ([]*model.Certificate, error) {
	builder := squirrel.
		Insert("certificates").
		Columns("user_id", "task_submission_id", "certificate_url", "email_sent")

	count := 0
	for _, sub := range submissions {
		if sub.Status != model.SubmissionApproved {
			continue
		}
		url := fmt.Sprintf("https://example.com/certificates/%s-%s.pdf", userID, sub.ID)
		builder = builder.Values(userID, sub.ID, url, false)
		count++
	}
	if count == 0 {
		return nil, nil
	}

	query, args, err := builder.
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build certificates insert query: %w", err)
	}

	var rows []certificateRow
	err = tx.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert certificates: %w", err)
	}

	created := make([]*model.Certificate, len(rows))
	for i := range rows {
		created[i] = rows[i].toModel()
	}

	return created, nil
}

func insertDemoRedemptionsTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, redemptions []model.DemoRedemption) ([]*model.RedeemRequest, error) {
	builder := squirrel.
		Insert("redeem_requests").
		Columns("user_id", "points_requested", "status", "admin_notes", "processed_by", "processed_at")

	for _, req := range redemptions {
		status := req.Status
		if status == "" {
			status = model.RedeemPending
		}
		builder = builder.Values(userID, req.PointsRequested, status, req.AdminNotes, req.ProcessedBy, req.ProcessedAt)
	}

	query, args, err := builder.
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build redemptions insert query: %w", err)
	}

	var rows []redeemRow
	err = tx.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert redemptions: %w", err)
	}

	created := make([]*model.RedeemRequest, len(rows))
	for i := range rows {
		created[i] = rows[i].toModel()
	}

	return created, nil
}

func insertDemoPayoutsTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, payouts []model.DemoPayout) ([]*model.Payout, error) {
	builder := squirrel.
		Insert("payouts").
		Columns("user_id", "redeem_request_id", "amount", "points_redeemed", "payment_method",
			"transaction_reference", "status", "admin_notes", "processed_by", "completed_at")

	for _, p := range payouts {
		method := p.PaymentMethod
		if method == "" {
			method = model.PaymentBankTransfer
		}
		status := p.Status
		if status == "" {
			status = model.PayoutPending
		}
		builder = builder.Values(userID, p.RedeemRequestID, p.Amount, p.PointsRedeemed, method,
			p.TransactionReference, status, p.AdminNotes, p.ProcessedBy, p.CompletedAt)
	}

	query, args, err := builder.
		Suffix("RETURNING *").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build payouts insert query: %w", err)
	}

	var rows []payoutRow
	err = tx.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payouts: %w", err)
	}

	created := make([]*model.Payout, len(rows))
	for i := range rows {
		created[i] = rows[i].toModel()
	}

	return created, nil
}
