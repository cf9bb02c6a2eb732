package mocks

import (
	"context"

	"SRP_admin_backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) SearchUsers(ctx context.Context, search string, limit int) ([]*model.User, error) {
	args := m.Called(ctx, search, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id uuid.UUID, update *model.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ListReferralsByUser(ctx context.Context, userID uuid.UUID) ([]*model.Referral, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Referral), args.Error(1)
}

func (m *MockUserRepository) CreateDemoUser(ctx context.Context, input *model.DemoUserInput) (*model.DemoUserData, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DemoUserData), args.Error(1)
}

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) ListSubmissions(ctx context.Context, status *model.SubmissionStatus) ([]*model.TaskSubmission, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TaskSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*model.TaskSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) GetSubmissionRefs(ctx context.Context, id uuid.UUID) (*model.SubmissionRefs, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SubmissionRefs), args.Error(1)
}

func (m *MockSubmissionRepository) ApproveSubmission(ctx context.Context, id, adminID uuid.UUID) (*model.TaskSubmission, error) {
	args := m.Called(ctx, id, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) RejectSubmission(ctx context.Context, id, adminID uuid.UUID, reason string) (*model.TaskSubmission, error) {
	args := m.Called(ctx, id, adminID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockSubmissionRepository) GetTaskByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockSubmissionRepository) UpdateUserPoints(ctx context.Context, id uuid.UUID, points int) (*model.User, error) {
	args := m.Called(ctx, id, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockSubmissionRepository) CreateCertificate(ctx context.Context, userID, submissionID uuid.UUID, certificateURL string) (*model.Certificate, error) {
	args := m.Called(ctx, userID, submissionID, certificateURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

func (m *MockSubmissionRepository) UpdateCertificateEmailStatus(ctx context.Context, id uuid.UUID, sent bool) (*model.Certificate, error) {
	args := m.Called(ctx, id, sent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

type MockCertificateRepository struct {
	mock.Mock
}

func (m *MockCertificateRepository) ListCertificates(ctx context.Context) ([]*model.Certificate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) GetCertificateByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) UpdateCertificateEmailStatus(ctx context.Context, id uuid.UUID, sent bool) (*model.Certificate, error) {
	args := m.Called(ctx, id, sent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

type MockRedemptionRepository struct {
	mock.Mock
}

func (m *MockRedemptionRepository) ListRedeemRequests(ctx context.Context, status *model.RedeemStatus) ([]*model.RedeemRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RedeemRequest), args.Error(1)
}

func (m *MockRedemptionRepository) ApproveRedeemRequest(ctx context.Context, id, adminID uuid.UUID, notes *string) (*model.RedeemRequest, error) {
	args := m.Called(ctx, id, adminID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RedeemRequest), args.Error(1)
}

func (m *MockRedemptionRepository) RejectRedeemRequest(ctx context.Context, id, adminID uuid.UUID, reason string) (*model.RedeemRequest, error) {
	args := m.Called(ctx, id, adminID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RedeemRequest), args.Error(1)
}

type MockPayoutRepository struct {
	mock.Mock
}

func (m *MockPayoutRepository) ListPayouts(ctx context.Context, status *model.PayoutStatus) ([]*model.Payout, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payout), args.Error(1)
}

func (m *MockPayoutRepository) UpdatePayout(ctx context.Context, id uuid.UUID, update *model.PayoutUpdate) (*model.Payout, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payout), args.Error(1)
}
