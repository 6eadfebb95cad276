package network

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNetworkRepository struct {
	mock.Mock
}

func (m *mockNetworkRepository) CreateSignup(ctx context.Context, input NetworkSignup) (NetworkSignup, error) {
	args := m.Called(ctx, input)
	signup, _ := args.Get(0).(NetworkSignup)
	return signup, args.Error(1)
}

func (m *mockNetworkRepository) GetSignupByID(ctx context.Context, id int64) (NetworkSignup, error) {
	args := m.Called(ctx, id)
	signup, _ := args.Get(0).(NetworkSignup)
	return signup, args.Error(1)
}

func (m *mockNetworkRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockNetworkRepository) ListSignups(ctx context.Context, role string, limit, offset int) ([]NetworkSignup, int64, error) {
	args := m.Called(ctx, role, limit, offset)
	signups, _ := args.Get(0).([]NetworkSignup)
	return signups, args.Get(1).(int64), args.Error(2)
}

func validSignup() NetworkSignup {
	return NetworkSignup{
		Name:           "Grace Hopper",
		Email:          "grace@example.com",
		Role:           RoleMentor,
		ExpertiseAreas: "compilers, distributed systems",
	}
}

func TestNetworkService_Signup_Success(t *testing.T) {
	repo := new(mockNetworkRepository)
	service := NewNetworkService(repo)

	repo.On("CreateSignup", mock.Anything, mock.MatchedBy(func(input NetworkSignup) bool {
		return input.Status == StatusPendingReview && input.Role == RoleMentor
	})).Return(NetworkSignup{ID: 2, Status: StatusPendingReview}, nil)

	created, fieldErrs, err := service.Signup(context.Background(), validSignup())

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Equal(t, StatusPendingReview, created.Status)
	repo.AssertExpectations(t)
}

func TestNetworkService_Signup_ValidationFailures(t *testing.T) {
	repo := new(mockNetworkRepository)
	service := NewNetworkService(repo)

	_, fieldErrs, err := service.Signup(context.Background(), NetworkSignup{Email: "bad", Role: "Founder"})

	require.NoError(t, err)
	require.Contains(t, fieldErrs, "name")
	require.Contains(t, fieldErrs, "email")
	require.Contains(t, fieldErrs, "role")
	repo.AssertNotCalled(t, "CreateSignup", mock.Anything, mock.Anything)
}

func TestNetworkService_Signup_DuplicateEmail(t *testing.T) {
	repo := new(mockNetworkRepository)
	service := NewNetworkService(repo)

	repo.On("CreateSignup", mock.Anything, mock.Anything).Return(NetworkSignup{}, &pgconn.PgError{Code: "23505"})

	_, _, err := service.Signup(context.Background(), validSignup())

	require.ErrorIs(t, err, ErrEmailAlreadySignedUp)
}

func TestNetworkService_Signup_OtherRepoError(t *testing.T) {
	repo := new(mockNetworkRepository)
	service := NewNetworkService(repo)

	repo.On("CreateSignup", mock.Anything, mock.Anything).Return(NetworkSignup{}, errors.New("connection reset"))

	_, _, err := service.Signup(context.Background(), validSignup())

	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailAlreadySignedUp)
}

func TestNetworkService_SetStatus_ApproveAndDecline(t *testing.T) {
	for _, status := range []string{StatusApproved, StatusDeclined} {
		repo := new(mockNetworkRepository)
		service := NewNetworkService(repo)

		repo.On("GetSignupByID", mock.Anything, int64(3)).Return(NetworkSignup{ID: 3, Status: StatusPendingReview}, nil)
		repo.On("UpdateStatus", mock.Anything, int64(3), status).Return(nil)

		require.NoError(t, service.SetStatus(context.Background(), 3, status))
		repo.AssertExpectations(t)
	}
}

func TestNetworkService_SetStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(mockNetworkRepository)
	service := NewNetworkService(repo)

	err := service.SetStatus(context.Background(), 3, StatusPendingReview)

	require.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestNetworkService_SetStatus_MissingSignup(t *testing.T) {
	repo := new(mockNetworkRepository)
	service := NewNetworkService(repo)

	repo.On("GetSignupByID", mock.Anything, int64(9)).Return(NetworkSignup{}, ErrSignupNotFound)

	err := service.SetStatus(context.Background(), 9, StatusApproved)

	require.ErrorIs(t, err, ErrSignupNotFound)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
