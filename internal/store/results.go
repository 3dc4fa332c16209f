package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PracticeResult is one row of the append-only answer log.
type PracticeResult struct {
	ID            string
	Timestamp     time.Time
	Student       string
	Standard      string
	QuestionText  string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// AppendResult records an answered question. The log is best-effort:
// callers report failures and continue the session.
func (s *Store) AppendResult(ctx context.Context, r PracticeResult) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO practice_results
		 (id, timestamp, student, standard, question_text, user_answer, correct_answer, is_correct)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Timestamp, r.Student, r.Standard, r.QuestionText,
		r.UserAnswer, r.CorrectAnswer, r.IsCorrect)
	if err != nil {
		return fmt.Errorf("append practice result: %w", err)
	}
	return nil
}

// ListResults returns practice results, newest first. A non-empty
// student filters to that student; limit 0 means unlimited.
func (s *Store) ListResults(ctx context.Context, student string, limit int) ([]PracticeResult, error) {
	query := `SELECT id, timestamp, student, standard, question_text, user_answer, correct_answer, is_correct
	          FROM practice_results`
	var args []any
	if student != "" {
		query += " WHERE student = ?"
		args = append(args, student)
	}
	query += " ORDER BY timestamp DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list practice results: %w", err)
	}
	defer rows.Close()

	var results []PracticeResult
	for rows.Next() {
		var r PracticeResult
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Student, &r.Standard,
			&r.QuestionText, &r.UserAnswer, &r.CorrectAnswer, &r.IsCorrect); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
