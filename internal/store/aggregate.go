package store

import (
	"context"
	"fmt"
)

// Aggregate holds running totals across all recorded interview sessions.
type Aggregate struct {
	TotalSessions     int
	CompletedSessions int

	// AverageCompletionRate is the mean of per-session completion rates
	// (answered questions / 4), over all sessions.
	AverageCompletionRate float64
}

// RecordSession folds one finished session into the aggregate.
// The read-modify-write runs inside a single transaction so concurrent
// writers cannot lose updates.
func (s *Store) RecordSession(ctx context.Context, completed bool, completionRate float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin aggregate tx: %w", err)
	}
	defer tx.Rollback()

	var total, done int
	var rateSum float64
	err = tx.QueryRowContext(ctx,
		`SELECT total_sessions, completed_sessions, completion_rate_sum
		 FROM session_aggregate WHERE id = 1`).Scan(&total, &done, &rateSum)
	if err != nil {
		return fmt.Errorf("read aggregate: %w", err)
	}

	total++
	if completed {
		done++
	}
	rateSum += completionRate

	_, err = tx.ExecContext(ctx,
		`UPDATE session_aggregate
		 SET total_sessions = ?, completed_sessions = ?, completion_rate_sum = ?
		 WHERE id = 1`, total, done, rateSum)
	if err != nil {
		return fmt.Errorf("write aggregate: %w", err)
	}

	return tx.Commit()
}

// GetAggregate returns the current cross-session totals.
func (s *Store) GetAggregate(ctx context.Context) (*Aggregate, error) {
	var agg Aggregate
	var rateSum float64
	err := s.db.QueryRowContext(ctx,
		`SELECT total_sessions, completed_sessions, completion_rate_sum
		 FROM session_aggregate WHERE id = 1`).
		Scan(&agg.TotalSessions, &agg.CompletedSessions, &rateSum)
	if err != nil {
		return nil, fmt.Errorf("read aggregate: %w", err)
	}
	if agg.TotalSessions > 0 {
		agg.AverageCompletionRate = rateSum / float64(agg.TotalSessions)
	}
	return &agg, nil
}
