package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/talentscout/internal/evaluator"
	"github.com/abhisek/talentscout/internal/inputcheck"
	"github.com/abhisek/talentscout/internal/questionbank"
)

// DefaultRetryLimit is how many non-adequate outcomes a question allows
// before the session force-advances past it.
const DefaultRetryLimit = 2

// Recorder persists a finished session's transcript. Implemented by the
// transcript package; failures are surfaced as warnings, never as fatal
// session errors.
type Recorder interface {
	// Record builds and persists the transcript, returning its location.
	Record(ctx context.Context, s *Session) (string, error)
}

// InputKind discriminates the turn input union.
type InputKind int

const (
	// InputConsent carries the consent decision (Accepted field).
	InputConsent InputKind = iota

	// InputProfile carries a submitted profile (Profile field).
	InputProfile

	// InputAnswer carries free text (Text field): an interview answer,
	// or an exit command at the form stage.
	InputAnswer

	// InputRestart discards the session and returns to consent.
	InputRestart
)

// Input is one unit of candidate input driving a turn.
type Input struct {
	Kind     InputKind
	Accepted bool
	Profile  *CandidateProfile
	Text     string
}

// Turn is the outcome of handling one input.
type Turn struct {
	// Messages are the assistant messages appended this turn.
	Messages []ChatMessage

	// FieldErrors is non-empty when a profile submission failed
	// field-level validation; the stage did not change.
	FieldErrors []FieldError

	// RecordPath is the transcript location when this turn reached a
	// terminal stage and persistence succeeded.
	RecordPath string

	// RecordErr reports a persistence failure. The session still
	// reached its terminal stage; callers show this as a warning.
	RecordErr error
}

// Controller drives the interview state machine. One controller handles
// one session at a time; turns are processed to completion, including
// any generation-service call, before the next is accepted.
type Controller struct {
	questions  *questionbank.Generator
	evaluator  *evaluator.Evaluator
	recorder   Recorder
	retryLimit int
}

// NewController wires the interview components together.
func NewController(gen *questionbank.Generator, eval *evaluator.Evaluator, rec Recorder) *Controller {
	return &Controller{
		questions:  gen,
		evaluator:  eval,
		recorder:   rec,
		retryLimit: DefaultRetryLimit,
	}
}

// SetRetryLimit overrides the per-question retry budget.
func (c *Controller) SetRetryLimit(n int) {
	if n > 0 {
		c.retryLimit = n
	}
}

// HandleTurn processes one input against the session and returns what
// the assistant said. It returns an error only for inputs that make no
// sense in the current stage; candidate mistakes are handled in-band.
func (c *Controller) HandleTurn(ctx context.Context, s *Session, in Input) (*Turn, error) {
	if in.Kind == InputRestart {
		if !s.Stage.Terminal() {
			return nil, fmt.Errorf("restart is only available from a terminal stage")
		}
		*s = *NewSession(s.Language)
		return &Turn{}, nil
	}

	switch s.Stage {
	case StageConsent:
		return c.handleConsent(s, in)
	case StageProfileForm:
		return c.handleProfileForm(ctx, s, in)
	case StageInterview:
		return c.handleInterview(ctx, s, in)
	default:
		return nil, fmt.Errorf("no input accepted in stage %s", s.Stage)
	}
}

func (c *Controller) handleConsent(s *Session, in Input) (*Turn, error) {
	if in.Kind != InputConsent {
		return nil, fmt.Errorf("stage %s expects a consent decision", s.Stage)
	}

	turn := &Turn{}
	if in.Accepted {
		s.ConsentGiven = true
		s.Stage = StageProfileForm
		turn.Messages = append(turn.Messages, s.appendAssistant(msgConsentAccepted))
		return turn, nil
	}

	// A declined session terminates without persisting anything.
	s.Stage = StageEnded
	s.Recorded = true
	turn.Messages = append(turn.Messages, s.appendAssistant(msgConsentDeclined))
	return turn, nil
}

func (c *Controller) handleProfileForm(ctx context.Context, s *Session, in Input) (*Turn, error) {
	switch in.Kind {
	case InputAnswer:
		if IsExitCommand(in.Text, s.Language) {
			return c.endEarly(ctx, s, in.Text), nil
		}
		return nil, fmt.Errorf("stage %s expects a profile submission", s.Stage)

	case InputProfile:
		if in.Profile == nil {
			return nil, fmt.Errorf("profile submission carries no profile")
		}
		if errs := in.Profile.Validate(); len(errs) > 0 {
			return &Turn{FieldErrors: errs}, nil
		}

		profile := *in.Profile
		profile.SubmittedAt = time.Now()
		s.Profile = &profile

		// Populate the question set before entering the interview; the
		// generator's fallback guarantees this cannot fail.
		s.Questions, s.QuestionSource = c.questions.Generate(ctx, questionbank.GenerateInput{
			TechStack:       profile.TechStack,
			ExperienceYears: profile.ExperienceYears(),
			Language:        s.Language,
		})
		s.CurrentQuestion = 0
		s.RetryCount = 0
		s.Stage = StageInterview

		turn := &Turn{}
		turn.Messages = append(turn.Messages,
			s.appendAssistant(greetingMessage(profile.FullName, profile.TechStack)))
		return turn, nil

	default:
		return nil, fmt.Errorf("stage %s expects a profile submission", s.Stage)
	}
}

func (c *Controller) handleInterview(ctx context.Context, s *Session, in Input) (*Turn, error) {
	if in.Kind != InputAnswer {
		return nil, fmt.Errorf("stage %s expects an answer", s.Stage)
	}

	// Exit wins over everything, including pending retries.
	if IsExitCommand(in.Text, s.Language) {
		return c.endEarly(ctx, s, in.Text), nil
	}

	question := s.CurrentQuestionRef()
	if question == nil {
		return nil, fmt.Errorf("no question awaiting an answer")
	}

	// Cheap screening before the classification call. Unusable input
	// leaves all counters untouched; only the log grows.
	if check := inputcheck.Validate(in.Text, true); !check.Valid {
		s.appendUser(in.Text, s.CurrentQuestion, "")
		turn := &Turn{}
		turn.Messages = append(turn.Messages, s.appendAssistant(check.Message))
		return turn, nil
	}

	result := c.evaluator.Evaluate(ctx, question.Text, in.Text, s.Profile.TechStack, s.Language)
	s.appendUser(in.Text, s.CurrentQuestion, result.Classification)

	turn := &Turn{}
	if result.Adequate {
		question.Resolution = questionbank.ResolutionAdequate
		c.advance(s)
		turn.Messages = append(turn.Messages, s.appendAssistant(result.Feedback))
	} else {
		s.RetryCount++
		if s.RetryCount >= c.retryLimit {
			// Retry budget exhausted: guarantee forward progress.
			question.Resolution = questionbank.ResolutionFailedAttempts
			c.advance(s)
			turn.Messages = append(turn.Messages, s.appendAssistant(msgForceAdvance))
		} else {
			turn.Messages = append(turn.Messages, s.appendAssistant(result.Feedback))
		}
	}

	if s.CurrentQuestion >= QuestionCount {
		s.Stage = StageCompleted
		turn.Messages = append(turn.Messages, s.appendAssistant(msgCompleted))
		c.record(ctx, s, turn)
	}

	return turn, nil
}

// advance moves to the next question and resets the retry budget.
func (c *Controller) advance(s *Session) {
	s.CurrentQuestion++
	s.RetryCount = 0
}

// endEarly transitions to Ended from any pre-terminal stage.
func (c *Controller) endEarly(ctx context.Context, s *Session, userText string) *Turn {
	s.appendUser(userText, NoQuestion, "")
	s.Stage = StageEnded

	turn := &Turn{}
	turn.Messages = append(turn.Messages, s.appendAssistant(msgEndedEarly))
	c.record(ctx, s, turn)
	return turn
}

// record persists the transcript exactly once per session. Failures are
// reported on the turn but never undo the terminal transition.
func (c *Controller) record(ctx context.Context, s *Session, turn *Turn) {
	if s.Recorded || c.recorder == nil {
		return
	}
	s.Recorded = true

	path, err := c.recorder.Record(ctx, s)
	turn.RecordPath = path
	turn.RecordErr = err
}
