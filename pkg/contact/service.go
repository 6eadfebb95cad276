package contact

import (
	"context"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

type ContactService interface {
	CreateMessage(ctx context.Context, input ContactMessage) (ContactMessage, map[string]string, error)
	ListMessages(ctx context.Context, page, limit int) ([]ContactMessage, int64, error)
	MarkResolved(ctx context.Context, id int64) error
}

type contactService struct {
	repo ContactRepository
}

func NewContactService(repo ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// CreateMessage validates and persists one contact form record. Field
// failures come back in the map with a nil error.
func (s *contactService) CreateMessage(ctx context.Context, input ContactMessage) (ContactMessage, map[string]string, error) {
	fieldErrs := make(map[string]string)
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs["name"] = "name is required"
	}
	if !emailPattern.MatchString(input.Email) {
		fieldErrs["email"] = "a valid email address is required"
	}
	if strings.TrimSpace(input.Message) == "" {
		fieldErrs["message"] = "message is required"
	}
	if len(fieldErrs) > 0 {
		return ContactMessage{}, fieldErrs, nil
	}

	created, err := s.repo.CreateMessage(ctx, input)
	if err != nil {
		return ContactMessage{}, nil, err
	}
	return created, nil, nil
}

func (s *contactService) ListMessages(ctx context.Context, page, limit int) ([]ContactMessage, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListMessages(ctx, limit, offset)
}

func (s *contactService) MarkResolved(ctx context.Context, id int64) error {
	return s.repo.MarkResolved(ctx, id)
}
