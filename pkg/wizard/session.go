package wizard

import (
	"context"
	"sync"

	"incuhub/pkg/applications"
)

// SubmitFunc hands the completed record to the submission service. It is the
// only network boundary the wizard knows about.
type SubmitFunc func(ctx context.Context, sub applications.Submission) (SubmitResult, error)

// Session drives the pure reducer for one applicant. It owns the
// single-flight rule: while a submission is outstanding, further Submit
// calls are no-ops.
type Session struct {
	mu     sync.Mutex
	state  State
	submit SubmitFunc
}

func NewSession(submit SubmitFunc) *Session {
	return &Session{
		state:  NewState(),
		submit: submit,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies one action and returns the resulting state.
func (s *Session) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

// Submit performs the final submission exactly once. If the wizard is not at
// the final step, fails step validation, or already has a request in flight,
// no call is made.
func (s *Session) Submit(ctx context.Context) State {
	s.mu.Lock()
	wasSubmitting := s.state.Submitting
	s.state = Reduce(s.state, SubmitStarted{})
	started := s.state.Submitting && !wasSubmitting
	form := s.state.Form
	current := s.state
	s.mu.Unlock()

	if !started {
		return current
	}

	result, err := s.submit(ctx, form)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = Reduce(s.state, SubmitFailed{Message: err.Error()})
	} else {
		s.state = Reduce(s.state, SubmitSucceeded{Result: result})
	}
	return s.state
}
