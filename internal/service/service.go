package service

import (
	"context"
	"errors"

	"SRP_admin_backend/internal/model"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidAdminID        = errors.New("valid admin id is required")
	ErrReasonRequired        = errors.New("rejection reason is required")
	ErrInvalidSubmissionData = errors.New("submission data is invalid")
	ErrCertificateCreation   = errors.New("certificate creation failed")

	ErrUserNotFound          = errors.New("user not found")
	ErrSubmissionNotFound    = errors.New("submission not found")
	ErrCertificateNotFound   = errors.New("certificate not found")
	ErrRedeemRequestNotFound = errors.New("redeem request not found")
	ErrPayoutNotFound        = errors.New("payout not found")

	ErrMissingFields      = errors.New("email, name, and referral code are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrNoUpdateFields     = errors.New("at least one field is required for update")
	ErrEmailExists        = errors.New("email already exists")
	ErrReferralCodeExists = errors.New("referral code already exists")
)

type AuthServiceI interface {
	Login(ctx context.Context, email, password string) (string, *model.Admin, error)
}

type UserServiceI interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update *model.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	SearchUsers(ctx context.Context, query string) ([]*model.User, error)
	GetUserReferrals(ctx context.Context, id uuid.UUID) (*model.UserReferralInfo, error)
	CreateDemoUser(ctx context.Context, input *model.DemoUserInput) (*model.DemoUserData, error)
}

type SubmissionServiceI interface {
	ListSubmissions(ctx context.Context, status *model.SubmissionStatus) ([]*model.TaskSubmission, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*model.TaskSubmission, error)
	ApproveSubmission(ctx context.Context, id uuid.UUID, adminID string) (*model.TaskSubmission, *model.Certificate, error)
	RejectSubmission(ctx context.Context, id uuid.UUID, adminID, reason string) (*model.TaskSubmission, error)
}

type CertificateServiceI interface {
	ListCertificates(ctx context.Context) ([]*model.Certificate, error)
	ResendCertificate(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
}

type RedemptionServiceI interface {
	ListRedeemRequests(ctx context.Context, status *model.RedeemStatus) ([]*model.RedeemRequest, error)
	ApproveRedeemRequest(ctx context.Context, id uuid.UUID, adminID string, notes *string) (*model.RedeemRequest, error)
	RejectRedeemRequest(ctx context.Context, id uuid.UUID, adminID, reason string) (*model.RedeemRequest, error)
}

type PayoutServiceI interface {
	ListPayouts(ctx context.Context, status *model.PayoutStatus) ([]*model.Payout, error)
	UpdatePayout(ctx context.Context, id uuid.UUID, update *model.PayoutUpdate) (*model.Payout, error)
}

type TaskServiceI interface {
	ListTasks(ctx context.Context) ([]*model.Task, error)
}

type StatsServiceI interface {
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type AdminRepository interface {
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	SearchUsers(ctx context.Context, search string, limit int) ([]*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update *model.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListReferralsByUser(ctx context.Context, userID uuid.UUID) ([]*model.Referral, error)
	CreateDemoUser(ctx context.Context, input *model.DemoUserInput) (*model.DemoUserData, error)
}

type SubmissionRepository interface {
	ListSubmissions(ctx context.Context, status *model.SubmissionStatus) ([]*model.TaskSubmission, error)
	GetSubmissionByID(ctx context.Context, id uuid.UUID) (*model.TaskSubmission, error)
	GetSubmissionRefs(ctx context.Context, id uuid.UUID) (*model.SubmissionRefs, error)
	ApproveSubmission(ctx context.Context, id, adminID uuid.UUID) (*model.TaskSubmission, error)
	RejectSubmission(ctx context.Context, id, adminID uuid.UUID, reason string) (*model.TaskSubmission, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetTaskByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	UpdateUserPoints(ctx context.Context, id uuid.UUID, points int) (*model.User, error)
	CreateCertificate(ctx context.Context, userID, submissionID uuid.UUID, certificateURL string) (*model.Certificate, error)
	UpdateCertificateEmailStatus(ctx context.Context, id uuid.UUID, sent bool) (*model.Certificate, error)
}

type CertificateRepository interface {
	ListCertificates(ctx context.Context) ([]*model.Certificate, error)
	GetCertificateByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
	UpdateCertificateEmailStatus(ctx context.Context, id uuid.UUID, sent bool) (*model.Certificate, error)
}

type RedemptionRepository interface {
	ListRedeemRequests(ctx context.Context, status *model.RedeemStatus) ([]*model.RedeemRequest, error)
	ApproveRedeemRequest(ctx context.Context, id, adminID uuid.UUID, notes *string) (*model.RedeemRequest, error)
	RejectRedeemRequest(ctx context.Context, id, adminID uuid.UUID, reason string) (*model.RedeemRequest, error)
}

type PayoutRepository interface {
	ListPayouts(ctx context.Context, status *model.PayoutStatus) ([]*model.Payout, error)
	UpdatePayout(ctx context.Context, id uuid.UUID, update *model.PayoutUpdate) (*model.Payout, error)
}

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]*model.Task, error)
}

type StatsRepository interface {
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// validateAdminID enforces the admin identifier rules shared by every
// decision endpoint: non-empty, not the literal "undefined" some clients
// send, and a parseable unique identifier.
func validateAdminID(adminID string) (uuid.UUID, error) {
	if adminID == "" || adminID == "undefined" {
		return uuid.Nil, ErrInvalidAdminID
	}

	id, err := uuid.Parse(adminID)
	if err != nil {
		return uuid.Nil, ErrInvalidAdminID
	}

	return id, nil
}
