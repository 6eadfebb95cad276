package network

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailAlreadySignedUp = errors.New("a signup already exists for that email")
	ErrInvalidStatus        = errors.New("invalid signup status")
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

type NetworkService interface {
	Signup(ctx context.Context, input NetworkSignup) (NetworkSignup, map[string]string, error)
	SetStatus(ctx context.Context, id int64, status string) error
	ListSignups(ctx context.Context, role string, page, limit int) ([]NetworkSignup, int64, error)
}

type networkService struct {
	repo NetworkRepository
}

func NewNetworkService(repo NetworkRepository) NetworkService {
	return &networkService{repo: repo}
}

func (s *networkService) Signup(ctx context.Context, input NetworkSignup) (NetworkSignup, map[string]string, error) {
	fieldErrs := make(map[string]string)
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs["name"] = "name is required"
	}
	if !emailPattern.MatchString(input.Email) {
		fieldErrs["email"] = "a valid email address is required"
	}
	if input.Role != RoleMentor && input.Role != RoleInvestor {
		fieldErrs["role"] = "role must be Mentor or Investor"
	}
	if len(fieldErrs) > 0 {
		return NetworkSignup{}, fieldErrs, nil
	}

	input.Status = StatusPendingReview

	created, err := s.repo.CreateSignup(ctx, input)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return NetworkSignup{}, nil, ErrEmailAlreadySignedUp
		}
		return NetworkSignup{}, nil, err
	}
	return created, nil, nil
}

func (s *networkService) SetStatus(ctx context.Context, id int64, status string) error {
	switch status {
	case StatusApproved, StatusDeclined:
	default:
		return ErrInvalidStatus
	}

	if _, err := s.repo.GetSignupByID(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *networkService) ListSignups(ctx context.Context, role string, page, limit int) ([]NetworkSignup, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListSignups(ctx, role, limit, offset)
}
