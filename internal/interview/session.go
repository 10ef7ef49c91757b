package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/talentscout/internal/evaluator"
	"github.com/abhisek/talentscout/internal/questionbank"
	"github.com/abhisek/talentscout/internal/sentiment"
)

// Stage is one state of the interview state machine.
type Stage int

const (
	StageConsent Stage = iota
	StageProfileForm
	StageInterview
	StageCompleted
	StageEnded
)

// String returns the stage name used in logs and transcripts.
func (s Stage) String() string {
	switch s {
	case StageConsent:
		return "consent"
	case StageProfileForm:
		return "profile_form"
	case StageInterview:
		return "interview"
	case StageCompleted:
		return "completed"
	case StageEnded:
		return "ended"
	}
	return "unknown"
}

// Terminal reports whether the stage accepts no further interview turns.
func (s Stage) Terminal() bool {
	return s == StageCompleted || s == StageEnded
}

// ChatRole identifies a message sender.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// NoQuestion marks a chat message that does not answer any question.
const NoQuestion = -1

// ChatMessage is one entry of the append-only conversation log.
// Messages are never mutated after creation.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`

	// QuestionIndex is the question a user message answers, or
	// NoQuestion for everything else.
	QuestionIndex int `json:"question_index"`

	// Classification is the evaluator's verdict recorded at answer
	// time; empty for non-answer messages.
	Classification evaluator.Classification `json:"classification,omitempty"`

	// Sentiment is attached by the transcript recorder; empty until then.
	Sentiment sentiment.Label `json:"sentiment,omitempty"`
}

// QuestionCount is the fixed size of an interview's question set.
const QuestionCount = 4

// Session is the full mutable state of one interview run. It is owned
// by a single controller for its lifetime and processed one turn at a
// time; nothing here is safe for concurrent mutation.
//
// Invariants: 0 <= CurrentQuestion <= len(Questions) == QuestionCount
// once the interview stage is entered; RetryCount resets to 0 whenever
// CurrentQuestion advances; CurrentQuestion == QuestionCount exactly
// when the stage is Completed (or Ended after finishing).
type Session struct {
	ID        string
	Stage     Stage
	Language  string
	StartedAt time.Time

	// Profile is nil until the form stage completes.
	Profile *CandidateProfile

	// Questions holds the four-question set, populated on entry to the
	// interview stage.
	Questions      []questionbank.Question
	QuestionSource questionbank.Source

	// CurrentQuestion indexes the question awaiting an answer.
	CurrentQuestion int

	// RetryCount counts non-adequate outcomes for the current question.
	RetryCount int

	// Messages is the append-only chat log.
	Messages []ChatMessage

	// ConsentGiven records the consent decision; a declined session is
	// never persisted.
	ConsentGiven bool

	// Recorded guards the one-shot transcript persistence on entry to a
	// terminal stage.
	Recorded bool
}

// NewSession creates a fresh session at the consent stage.
func NewSession(language string) *Session {
	if language == "" {
		language = "en"
	}
	return &Session{
		ID:        uuid.NewString(),
		Stage:     StageConsent,
		Language:  language,
		StartedAt: time.Now(),
	}
}

// CurrentQuestionRef returns the question awaiting an answer, or nil
// when the interview is not in progress.
func (s *Session) CurrentQuestionRef() *questionbank.Question {
	if s.Stage != StageInterview {
		return nil
	}
	if s.CurrentQuestion < 0 || s.CurrentQuestion >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentQuestion]
}

// AnsweredCount returns how many questions have been resolved.
func (s *Session) AnsweredCount() int {
	return s.CurrentQuestion
}

// appendAssistant adds an assistant message to the log and returns it.
func (s *Session) appendAssistant(text string) ChatMessage {
	msg := ChatMessage{
		Role:          RoleAssistant,
		Text:          text,
		Timestamp:     time.Now(),
		QuestionIndex: NoQuestion,
	}
	s.Messages = append(s.Messages, msg)
	return msg
}

// appendUser adds a user message to the log.
func (s *Session) appendUser(text string, questionIndex int, class evaluator.Classification) {
	s.Messages = append(s.Messages, ChatMessage{
		Role:           RoleUser,
		Text:           text,
		Timestamp:      time.Now(),
		QuestionIndex:  questionIndex,
		Classification: class,
	})
}
