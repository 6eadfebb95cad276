// Package wizard models the 4-step application form as an explicit state
// machine. State is an immutable snapshot; Reduce returns a new snapshot for
// every action and never mutates its input, so each transition is trivially
// testable without any UI or network.
package wizard

import "incuhub/pkg/applications"

// StepSuccess is the terminal state entered after a successful submission.
const (
	FirstStep   = 1
	LastStep    = applications.TotalSteps
	StepSuccess = applications.TotalSteps + 1
)

type State struct {
	Step           int
	Form           applications.Submission
	Errors         map[string]string
	Submitting     bool
	Result         *SubmitResult
	FailureMessage string
}

type SubmitResult struct {
	SubmissionID int64
	TrackingID   string
}

// NewState returns the empty record at step 1.
func NewState() State {
	return State{
		Step: FirstStep,
		Form: applications.Submission{Industry: applications.DefaultIndustry},
	}
}

type Action interface {
	isAction()
}

// UpdateForm replaces the accumulated record with an edited copy.
type UpdateForm struct {
	Form applications.Submission
}

// Next advances to the following step if the current one validates.
type Next struct{}

// Back returns to the previous step and clears the departed step's errors.
type Back struct{}

// SubmitStarted marks the single in-flight submission attempt.
type SubmitStarted struct{}

// SubmitSucceeded moves the wizard to its terminal Success state.
type SubmitSucceeded struct {
	Result SubmitResult
}

// SubmitFailed keeps the wizard at the final step with the server's message.
type SubmitFailed struct {
	Message string
}

// Reset returns to step 1 with an empty record.
type Reset struct{}

func (UpdateForm) isAction()      {}
func (Next) isAction()            {}
func (Back) isAction()            {}
func (SubmitStarted) isAction()   {}
func (SubmitSucceeded) isAction() {}
func (SubmitFailed) isAction()    {}
func (Reset) isAction()           {}

// Reduce computes the next state for an action. Unknown or currently
// inapplicable actions leave the state unchanged.
func Reduce(s State, a Action) State {
	switch action := a.(type) {
	case UpdateForm:
		if s.Submitting || s.Step == StepSuccess {
			return s
		}
		s.Form = action.Form
		return s

	case Next:
		if s.Submitting || s.Step >= LastStep {
			return s
		}
		if errs := applications.ValidateStep(s.Step, s.Form); len(errs) > 0 {
			s.Errors = errs
			return s
		}
		s.Step++
		s.Errors = nil
		return s

	case Back:
		if s.Submitting || s.Step <= FirstStep || s.Step == StepSuccess {
			return s
		}
		s.Step--
		s.Errors = nil
		return s

	case SubmitStarted:
		if s.Submitting || s.Step != LastStep {
			return s
		}
		if errs := applications.ValidateStep(LastStep, s.Form); len(errs) > 0 {
			s.Errors = errs
			return s
		}
		s.Submitting = true
		s.Errors = nil
		s.FailureMessage = ""
		return s

	case SubmitSucceeded:
		if !s.Submitting {
			return s
		}
		result := action.Result
		s.Submitting = false
		s.Step = StepSuccess
		s.Result = &result
		return s

	case SubmitFailed:
		if !s.Submitting {
			return s
		}
		s.Submitting = false
		s.FailureMessage = action.Message
		return s

	case Reset:
		return NewState()
	}

	return s
}
