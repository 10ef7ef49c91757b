package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/talentscout/internal/interview"
	"github.com/abhisek/talentscout/internal/sentiment"
	"github.com/abhisek/talentscout/internal/store"
)

// FileRecorder persists one JSON file per session and folds the session
// into the cross-session aggregate. It implements interview.Recorder.
type FileRecorder struct {
	dir      string
	store    *store.Store
	analyzer sentiment.Analyzer
}

// NewFileRecorder creates a recorder writing transcripts under dir.
// The store may be nil, which skips aggregate updates (used by tests).
func NewFileRecorder(dir string, st *store.Store, analyzer sentiment.Analyzer) *FileRecorder {
	if analyzer == nil {
		analyzer = sentiment.NewLexiconAnalyzer()
	}
	return &FileRecorder{dir: dir, store: st, analyzer: analyzer}
}

// Record builds the transcript, writes it, and updates the aggregate.
// The returned path is valid whenever the file write succeeded, even if
// the aggregate update failed; both failures come back joined so the
// caller can warn about either.
func (r *FileRecorder) Record(ctx context.Context, s *interview.Session) (string, error) {
	rec := Build(ctx, s, r.analyzer)

	path, writeErr := r.writeFile(rec)

	var aggErr error
	if r.store != nil {
		aggErr = r.store.RecordSession(ctx, rec.Status == StatusCompleted, rec.Analytics.CompletionRate)
		if aggErr != nil {
			aggErr = fmt.Errorf("update aggregate: %w", aggErr)
		}
	}

	return path, errors.Join(writeErr, aggErr)
}

func (r *FileRecorder) writeFile(rec *Record) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create transcript dir: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal transcript: %w", err)
	}

	path := filepath.Join(r.dir, fmt.Sprintf("interview_%s.json", rec.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	return path, nil
}

// Load reads a persisted transcript back. Used by the stats command and
// round-trip tests.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	return &rec, nil
}
