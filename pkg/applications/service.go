package applications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrTooManySubmissions = errors.New("too many submissions from this email. Please try again later")
	ErrInvalidStatus      = errors.New("invalid application status")
	ErrInvalidTransition  = errors.New("status can only move forward")
)

// submissionsPerHour caps how many applications one email address may file
// within an hour.
const submissionsPerHour = 3

// Notifier receives a committed application for best-effort follow-up
// messaging. Implementations must never influence the submission outcome.
type Notifier interface {
	SubmissionReceived(app Application)
}

type ApplicationService interface {
	Submit(ctx context.Context, sub Submission, refs FileRefs) (Application, error)
	GetByTrackingID(ctx context.Context, trackingID string) (Application, error)
	SetStatus(ctx context.Context, id int64, status Status) error
	ListApplications(ctx context.Context, page, limit int) ([]Application, int64, error)
}

type applicationService struct {
	repo           ApplicationRepository
	notifier       Notifier
	persistTimeout time.Duration
}

// NewApplicationService wires the submission workflow. The notifier may be
// nil, in which case no confirmation messages are sent.
func NewApplicationService(repo ApplicationRepository, notifier Notifier) ApplicationService {
	return &applicationService{
		repo:           repo,
		notifier:       notifier,
		persistTimeout: 10 * time.Second,
	}
}

// Submit re-validates the complete record, allocates a tracking token and
// persists the application with status Submitted. File objects referenced by
// refs were already written by the upload handler; on validation failure they
// are left in place. Notifications fire after the record commits and cannot
// fail the submission.
func (s *applicationService) Submit(ctx context.Context, sub Submission, refs FileRefs) (Application, error) {
	fieldErrs := Validate(sub)
	if refs.PitchDeckKey == "" {
		fieldErrs["pitchDeck"] = "pitch deck upload is required"
	}
	if len(fieldErrs) > 0 {
		return Application{}, &ValidationError{Fields: fieldErrs}
	}

	industry := sub.Industry
	if industry == "" {
		industry = DefaultIndustry
	}

	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	count, err := s.repo.CountRecentByEmail(ctx, sub.Email, time.Now().Add(-time.Hour))
	if err != nil {
		return Application{}, fmt.Errorf("check submission rate: %w", err)
	}
	if count >= submissionsPerHour {
		return Application{}, ErrTooManySubmissions
	}

	input := Application{
		FounderName:     sub.FounderName,
		Email:           sub.Email,
		Phone:           sub.Phone,
		VentureName:     sub.VentureName,
		Industry:        industry,
		PitchDeckKey:    refs.PitchDeckKey,
		BusinessPlanKey: refs.BusinessPlanKey,
		GDPRConsent:     sub.GDPRConsent,
		Status:          StatusSubmitted,
	}

	var created Application
	// UUID collisions are effectively impossible, but the tracking_id column
	// carries a unique index; regenerate once rather than surface a 23505.
	for attempt := 0; attempt < 2; attempt++ {
		input.TrackingID = uuid.NewString()
		created, err = s.repo.CreateApplication(ctx, input)
		if err == nil {
			break
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return Application{}, fmt.Errorf("persist application: %w", err)
	}
	if err != nil {
		return Application{}, fmt.Errorf("persist application: %w", err)
	}

	if s.notifier != nil {
		go s.notifier.SubmissionReceived(created)
	}

	return created, nil
}

func (s *applicationService) GetByTrackingID(ctx context.Context, trackingID string) (Application, error) {
	return s.repo.GetApplicationByTrackingID(ctx, trackingID)
}

// statusRank orders the review pipeline. Accepted and Rejected share the top
// rank: both are terminal outcomes.
var statusRank = map[Status]int{
	StatusSubmitted:   1,
	StatusUnderReview: 2,
	StatusInterview:   3,
	StatusAccepted:    4,
	StatusRejected:    4,
}

// SetStatus applies an admin-driven status change. Transitions must move
// forward through the pipeline; terminal states never change.
func (s *applicationService) SetStatus(ctx context.Context, id int64, status Status) error {
	if _, ok := statusRank[status]; !ok {
		return ErrInvalidStatus
	}

	current, err := s.repo.GetApplicationByID(ctx, id)
	if err != nil {
		return err
	}

	if current.Status == StatusAccepted || current.Status == StatusRejected {
		return ErrInvalidTransition
	}
	if statusRank[status] <= statusRank[current.Status] {
		return ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *applicationService) ListApplications(ctx context.Context, page, limit int) ([]Application, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListApplications(ctx, limit, offset)
}
