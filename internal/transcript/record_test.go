package transcript

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/talentscout/internal/evaluator"
	"github.com/abhisek/talentscout/internal/interview"
	"github.com/abhisek/talentscout/internal/questionbank"
	"github.com/abhisek/talentscout/internal/sentiment"
	"github.com/abhisek/talentscout/internal/store"
)

func completedSession(t *testing.T) *interview.Session {
	t.Helper()

	gen := questionbank.New(nil, questionbank.DefaultConfig())
	eval := evaluator.New(nil, evaluator.DefaultConfig())
	ctrl := interview.NewController(gen, eval, nil)

	s := interview.NewSession("en")
	ctx := context.Background()

	_, err := ctrl.HandleTurn(ctx, s, interview.Input{Kind: interview.InputConsent, Accepted: true})
	require.NoError(t, err)

	profile := &interview.CandidateProfile{
		FullName:   "Ana Torres",
		Email:      "Ana.Torres@example.com",
		Phone:      "+14155550100",
		Experience: "3-5",
		Position:   "Backend Engineer",
		Location:   "Madrid, Spain",
		TechStack:  "Python, SQL",
	}
	_, err = ctrl.HandleTurn(ctx, s, interview.Input{Kind: interview.InputProfile, Profile: profile})
	require.NoError(t, err)

	answers := []string{
		"I really enjoy working with Python because of its great ecosystem.",
		"Lists are mutable while tuples are immutable, which matters for hashing.",
		"I would cache the hot path in Redis and batch the writes to the database.",
		"Profiling first, then indexing and query rewrites before touching hardware.",
	}
	for _, a := range answers {
		_, err = ctrl.HandleTurn(ctx, s, interview.Input{Kind: interview.InputAnswer, Text: a})
		require.NoError(t, err)
	}
	require.Equal(t, interview.StageCompleted, s.Stage)
	return s
}

func TestBuild_CompletedSession(t *testing.T) {
	s := completedSession(t)
	rec := Build(context.Background(), s, sentiment.NewLexiconAnalyzer())

	assert.Equal(t, SchemaVersion, rec.SchemaVersion)
	assert.Equal(t, StatusCompleted, rec.Status)
	assert.Equal(t, 4, rec.AnsweredCount)
	assert.InDelta(t, 1.0, rec.Analytics.CompletionRate, 1e-9)
	assert.Equal(t, questionbank.SourceFallback, rec.QuestionSource)
	assert.Len(t, rec.Questions, 4)

	// ID derives from the email local part, sanitized.
	assert.True(t, strings.HasPrefix(rec.ID, "ana.torres_"), "ID = %s", rec.ID)

	// Every user message got a sentiment label; assistant messages did not.
	var userCount int
	for _, m := range rec.Messages {
		if m.Role == interview.RoleUser {
			userCount++
			assert.NotEmpty(t, m.Sentiment)
		} else {
			assert.Empty(t, m.Sentiment)
		}
	}
	assert.Equal(t, 4, userCount)

	total := 0
	for _, n := range rec.Analytics.SentimentCounts {
		total += n
	}
	assert.Equal(t, userCount, total)
	assert.Greater(t, rec.Analytics.AverageAnswerLength, 0.0)

	// The original session log is untouched by annotation.
	for _, m := range s.Messages {
		assert.Empty(t, m.Sentiment)
	}
}

func TestBuild_AverageAnswerLengthCountsRunes(t *testing.T) {
	s := interview.NewSession("en")
	s.Messages = append(s.Messages,
		interview.ChatMessage{Role: interview.RoleUser, Text: "señal", QuestionIndex: interview.NoQuestion},
		interview.ChatMessage{Role: interview.RoleAssistant, Text: "ok", QuestionIndex: interview.NoQuestion},
	)

	rec := Build(context.Background(), s, sentiment.NewLexiconAnalyzer())

	// "señal" is 5 characters even though ñ is two bytes.
	assert.InDelta(t, 5.0, rec.Analytics.AverageAnswerLength, 1e-9)
}

func TestBuild_AnonymousWithoutProfile(t *testing.T) {
	s := interview.NewSession("en")
	rec := Build(context.Background(), s, sentiment.NewLexiconAnalyzer())

	assert.Equal(t, StatusEndedEarly, rec.Status)
	assert.True(t, strings.HasPrefix(rec.ID, "anonymous_"), "ID = %s", rec.ID)
	assert.Equal(t, 0.0, rec.Analytics.CompletionRate)
}

func TestFileRecorder_RoundTrip(t *testing.T) {
	s := completedSession(t)
	dir := t.TempDir()

	st, err := store.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	recorder := NewFileRecorder(dir, st, nil)
	path, err := recorder.Record(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "interview_"))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, loaded.Status)
	assert.Equal(t, s.Profile.Email, loaded.Profile.Email)
	assert.Equal(t, s.Profile.TechStack, loaded.Profile.TechStack)
	assert.Len(t, loaded.Messages, len(s.Messages))
	assert.Len(t, loaded.Questions, 4)
	for i, q := range loaded.Questions {
		assert.Equal(t, s.Questions[i].Difficulty, q.Difficulty)
		assert.Equal(t, s.Questions[i].Text, q.Text)
		assert.Equal(t, questionbank.ResolutionAdequate, q.Resolution)
	}
	assert.WithinDuration(t, time.Now(), loaded.CreatedAt, time.Minute)

	// The session fed the cross-session aggregate.
	agg, err := st.GetAggregate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, agg.TotalSessions)
	assert.Equal(t, 1, agg.CompletedSessions)
	assert.InDelta(t, 1.0, agg.AverageCompletionRate, 1e-9)
}

func TestFileRecorder_NilStoreSkipsAggregate(t *testing.T) {
	s := completedSession(t)
	recorder := NewFileRecorder(t.TempDir(), nil, nil)

	path, err := recorder.Record(context.Background(), s)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}
