package notify

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"incuhub/pkg/applications"
)

type sentEmail struct {
	subject string
	to      string
	plain   string
	html    string
}

type fakeEmailService struct {
	mu     sync.Mutex
	sent   []sentEmail
	failTo map[string]error
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{failTo: make(map[string]error)}
}

func (f *fakeEmailService) SendEmail(subject, toEmail, plainTextContent, htmlContent string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failTo[toEmail]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentEmail{subject: subject, to: toEmail, plain: plainTextContent, html: htmlContent})
	return nil
}

func (f *fakeEmailService) sentTo(to string) []sentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sentEmail
	for _, e := range f.sent {
		if e.to == to {
			out = append(out, e)
		}
	}
	return out
}

type fakeFeed struct {
	mu     sync.Mutex
	events []any
}

func (f *fakeFeed) Broadcast(event any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeFeed) all() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.events...)
}

func sampleApplication() applications.Application {
	return applications.Application{
		ID:          42,
		TrackingID:  "3f6c2c44-8c1e-4e43-9a9d-8a6f1c2e7b10",
		FounderName: "Ada Lovelace",
		Email:       "ada@example.com",
		VentureName: "Analytical Engines",
		Industry:    "Technology",
		Status:      applications.StatusSubmitted,
		CreatedAt:   time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_SendsConfirmationWithTrackingID(t *testing.T) {
	emails := newFakeEmailService()
	dispatcher := NewDispatcher(emails, nil, "")

	app := sampleApplication()
	dispatcher.SubmissionReceived(app)

	sent := emails.sentTo(app.Email)
	require.Len(t, sent, 1)
	require.Contains(t, sent[0].plain, app.TrackingID)
	require.Contains(t, sent[0].html, app.TrackingID)
	require.Contains(t, sent[0].html, app.VentureName)
}

func TestDispatcher_SendsReviewAlertWhenInboxConfigured(t *testing.T) {
	emails := newFakeEmailService()
	dispatcher := NewDispatcher(emails, nil, "review@incuhub.example")

	app := sampleApplication()
	dispatcher.SubmissionReceived(app)

	alerts := emails.sentTo("review@incuhub.example")
	require.Len(t, alerts, 1)
	require.Contains(t, alerts[0].subject, app.VentureName)
	require.Contains(t, alerts[0].plain, app.Email)
}

func TestDispatcher_NoReviewAlertWithoutInbox(t *testing.T) {
	emails := newFakeEmailService()
	dispatcher := NewDispatcher(emails, nil, "")

	dispatcher.SubmissionReceived(sampleApplication())

	require.Len(t, emails.sent, 1, "only the applicant confirmation should go out")
}

func TestDispatcher_BroadcastsSubmissionEvent(t *testing.T) {
	emails := newFakeEmailService()
	feed := &fakeFeed{}
	dispatcher := NewDispatcher(emails, feed, "")

	app := sampleApplication()
	dispatcher.SubmissionReceived(app)

	events := feed.all()
	require.Len(t, events, 1)

	event, ok := events[0].(SubmissionEvent)
	require.True(t, ok)
	require.Equal(t, "application_submitted", event.EventType)
	require.Equal(t, app.TrackingID, event.TrackingID)
	require.Equal(t, app.VentureName, event.VentureName)
}

func TestDispatcher_ConfirmationFailureDoesNotBlockOtherChannels(t *testing.T) {
	emails := newFakeEmailService()
	feed := &fakeFeed{}
	app := sampleApplication()
	emails.failTo[app.Email] = errors.New("sendgrid unavailable")

	dispatcher := NewDispatcher(emails, feed, "review@incuhub.example")
	dispatcher.SubmissionReceived(app)

	require.Len(t, emails.sentTo("review@incuhub.example"), 1)
	require.Len(t, feed.all(), 1)
}

func TestDispatcher_AlertFailureDoesNotBlockFeed(t *testing.T) {
	emails := newFakeEmailService()
	feed := &fakeFeed{}
	emails.failTo["review@incuhub.example"] = errors.New("sendgrid unavailable")

	dispatcher := NewDispatcher(emails, feed, "review@incuhub.example")
	dispatcher.SubmissionReceived(sampleApplication())

	require.Len(t, emails.sentTo("ada@example.com"), 1)
	require.Len(t, feed.all(), 1)
}
