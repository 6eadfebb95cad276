package events

import (
	"context"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

type EventService interface {
	Register(ctx context.Context, input EventRegistration) (EventRegistration, map[string]string, error)
	ListRegistrations(ctx context.Context, eventName string, page, limit int) ([]EventRegistration, int64, error)
}

type eventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) Register(ctx context.Context, input EventRegistration) (EventRegistration, map[string]string, error) {
	fieldErrs := make(map[string]string)
	if strings.TrimSpace(input.EventName) == "" {
		fieldErrs["eventName"] = "event name is required"
	}
	if !emailPattern.MatchString(input.Email) {
		fieldErrs["email"] = "a valid email address is required"
	}
	if len(fieldErrs) > 0 {
		return EventRegistration{}, fieldErrs, nil
	}

	created, err := s.repo.CreateRegistration(ctx, input)
	if err != nil {
		return EventRegistration{}, nil, err
	}
	return created, nil, nil
}

func (s *eventService) ListRegistrations(ctx context.Context, eventName string, page, limit int) ([]EventRegistration, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListRegistrations(ctx, eventName, limit, offset)
}
