package notify

import (
	"fmt"
	"log"
	"time"

	"incuhub/pkg/applications"
	"incuhub/pkg/sendemail"
)

// Broadcaster fans an event out to the internal review channel.
type Broadcaster interface {
	Broadcast(event any)
}

// SubmissionEvent is pushed to connected reviewers when an application
// commits.
type SubmissionEvent struct {
	EventType    string    `json:"event_type"`
	SubmissionID int64     `json:"submission_id"`
	TrackingID   string    `json:"tracking_id"`
	VentureName  string    `json:"venture_name"`
	Industry     string    `json:"industry"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Dispatcher sends best-effort notifications for committed submissions: a
// confirmation to the applicant, an alert email to the review inbox and an
// event on the reviewer feed. Every send is independent and attempted exactly
// once; failures are logged and never reach the submitter.
type Dispatcher struct {
	emails      sendemail.EmailService
	feed        Broadcaster
	reviewInbox string
	logger      *log.Logger
}

// NewDispatcher builds a dispatcher. feed may be nil (no reviewer WebSocket
// feed); reviewInbox may be empty (no internal alert email).
func NewDispatcher(emails sendemail.EmailService, feed Broadcaster, reviewInbox string) *Dispatcher {
	return &Dispatcher{
		emails:      emails,
		feed:        feed,
		reviewInbox: reviewInbox,
		logger:      log.New(log.Writer(), "[notify] ", log.LstdFlags),
	}
}

func (d *Dispatcher) SubmissionReceived(app applications.Application) {
	if err := d.sendConfirmation(app); err != nil {
		d.logger.Printf("confirmation email for application %d failed: %v", app.ID, err)
	}

	if d.reviewInbox != "" {
		if err := d.sendReviewAlert(app); err != nil {
			d.logger.Printf("review alert for application %d failed: %v", app.ID, err)
		}
	}

	if d.feed != nil {
		d.feed.Broadcast(SubmissionEvent{
			EventType:    "application_submitted",
			SubmissionID: app.ID,
			TrackingID:   app.TrackingID,
			VentureName:  app.VentureName,
			Industry:     app.Industry,
			SubmittedAt:  app.CreatedAt,
		})
	}
}

func (d *Dispatcher) sendConfirmation(app applications.Application) error {
	subject := "We received your application"
	plain := fmt.Sprintf("Hi %s, your application for %s has been received. Track its status with this ID: %s",
		app.FounderName, app.VentureName, app.TrackingID)
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>Application received</h2>
			<p>Hi %s,</p>
			<p>Your application for <strong>%s</strong> has been received and is now under status <strong>%s</strong>.</p>
			<p>Your tracking ID:</p>
			<div style="font-size: 20px; font-weight: bold; color: #333; padding: 10px; background-color: #f5f5f5; border-radius: 5px; display: inline-block;">
				%s
			</div>
			<p>Keep this ID to look up the status of your application at any time.</p>
		</div>
	`, app.FounderName, app.VentureName, app.Status, app.TrackingID)

	return d.emails.SendEmail(subject, app.Email, plain, html)
}

func (d *Dispatcher) sendReviewAlert(app applications.Application) error {
	subject := fmt.Sprintf("New application: %s", app.VentureName)
	plain := fmt.Sprintf("Application #%d (%s, %s) was submitted by %s <%s>.",
		app.ID, app.VentureName, app.Industry, app.FounderName, app.Email)
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>New application submitted</h2>
			<p><strong>%s</strong> (%s)</p>
			<p>Founder: %s &lt;%s&gt;</p>
			<p>Internal ID: %d &middot; Tracking ID: %s</p>
		</div>
	`, app.VentureName, app.Industry, app.FounderName, app.Email, app.ID, app.TrackingID)

	return d.emails.SendEmail(subject, d.reviewInbox, plain, html)
}
