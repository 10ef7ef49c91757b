package transcript

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abhisek/talentscout/internal/interview"
	"github.com/abhisek/talentscout/internal/questionbank"
	"github.com/abhisek/talentscout/internal/sentiment"
)

// SchemaVersion is written into every record so later readers can
// detect layout changes.
const SchemaVersion = 1

// Status is the terminal outcome of a session.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusEndedEarly Status = "ended_early"
)

// AnalyticsSummary holds metrics derived from a finished session. It is
// pure derivation; rebuilding it from the same record yields the same
// values.
type AnalyticsSummary struct {
	// CompletionRate is answered questions over the fixed set size.
	CompletionRate float64 `json:"completion_rate"`

	// AverageAnswerLength is the mean character length of user messages.
	AverageAnswerLength float64 `json:"average_answer_length"`

	// SentimentCounts tallies user messages per sentiment label.
	SentimentCounts map[sentiment.Label]int `json:"sentiment_counts"`
}

// Record is the durable, denormalized transcript of one session.
// It is created once at stage termination and never mutated after
// persistence.
type Record struct {
	ID             string                      `json:"id"`
	SchemaVersion  int                         `json:"schema_version"`
	CreatedAt      time.Time                   `json:"created_at"`
	Status         Status                      `json:"status"`
	Profile        *interview.CandidateProfile `json:"profile"`
	Questions      []questionbank.Question     `json:"questions"`
	QuestionSource questionbank.Source         `json:"question_source"`
	Messages       []interview.ChatMessage     `json:"messages"`
	AnsweredCount  int                         `json:"answered_count"`
	Analytics      AnalyticsSummary            `json:"analytics"`
}

// Build assembles a Record from a session at a terminal stage. User
// messages are annotated with sentiment labels here; the analyzer must
// not fail (it degrades to neutral), so building always succeeds.
func Build(ctx context.Context, s *interview.Session, analyzer sentiment.Analyzer) *Record {
	status := StatusEndedEarly
	if s.Stage == interview.StageCompleted {
		status = StatusCompleted
	}

	now := time.Now()
	rec := &Record{
		ID:             recordID(s.Profile, now),
		SchemaVersion:  SchemaVersion,
		CreatedAt:      now,
		Status:         status,
		Profile:        s.Profile,
		Questions:      append([]questionbank.Question(nil), s.Questions...),
		QuestionSource: s.QuestionSource,
		AnsweredCount:  s.AnsweredCount(),
	}

	rec.Messages = make([]interview.ChatMessage, len(s.Messages))
	copy(rec.Messages, s.Messages)
	for i := range rec.Messages {
		if rec.Messages[i].Role == interview.RoleUser {
			rec.Messages[i].Sentiment = analyzer.Analyze(ctx, rec.Messages[i].Text)
		}
	}

	rec.Analytics = buildAnalytics(rec)
	return rec
}

func buildAnalytics(rec *Record) AnalyticsSummary {
	summary := AnalyticsSummary{
		CompletionRate:  float64(rec.AnsweredCount) / float64(interview.QuestionCount),
		SentimentCounts: make(map[sentiment.Label]int),
	}

	var userMessages, totalLength int
	for _, m := range rec.Messages {
		if m.Role != interview.RoleUser {
			continue
		}
		userMessages++
		totalLength += utf8.RuneCountInString(m.Text)
		summary.SentimentCounts[m.Sentiment]++
	}
	if userMessages > 0 {
		summary.AverageAnswerLength = float64(totalLength) / float64(userMessages)
	}

	return summary
}

// recordID derives the persistence key from the submission time and a
// profile fragment (the local part of the email). Sessions without a
// profile fall back to "anonymous".
func recordID(profile *interview.CandidateProfile, t time.Time) string {
	fragment := "anonymous"
	if profile != nil {
		if i := strings.Index(profile.Email, "@"); i > 0 {
			fragment = sanitize(profile.Email[:i])
		}
	}
	return fmt.Sprintf("%s_%s", fragment, t.Format("20060102_150405"))
}

// sanitize keeps the fragment filesystem-safe.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
