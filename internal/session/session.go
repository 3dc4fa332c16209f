// Package session tracks one practice sitting: the logged-in student,
// the question history used for uniqueness checks, and the state of the
// question currently on screen.
package session

import (
	"context"
	"time"

	"github.com/mlevine/mathdash/internal/question"
	"github.com/mlevine/mathdash/internal/store"
)

// ResultRecorder appends answered questions to the practice log.
type ResultRecorder interface {
	AppendResult(ctx context.Context, r store.PracticeResult) error
}

// Session is single-goroutine state owned by the UI loop. It lives for
// the duration of the program and is discarded on exit.
type Session struct {
	Student  string
	Username string

	history []question.HistoryEntry

	current     *question.Question
	currentType question.QuestionType
	standard    string

	options *question.OptionSet

	recorder ResultRecorder
}

// New starts a session for an authenticated student.
func New(username, student string, recorder ResultRecorder) *Session {
	return &Session{Student: student, Username: username, recorder: recorder}
}

// History returns the accumulated question history. The slice is shared;
// callers must not mutate it.
func (s *Session) History() []question.HistoryEntry {
	return s.history
}

// SetCurrent installs a newly generated question as the one on screen,
// appends it to history, and clears any option set from the previous
// question.
func (s *Session) SetCurrent(standard string, q *question.Question, qt question.QuestionType) {
	s.current = q
	s.currentType = qt
	s.standard = standard
	s.options = nil

	if q != nil {
		s.history = append(s.history, question.HistoryEntry{
			Standard:  standard,
			Question:  q,
			Timestamp: time.Now(),
		})
	}
}

// Current returns the question on screen, its type, and its standard.
func (s *Session) Current() (*question.Question, question.QuestionType, string) {
	return s.current, s.currentType, s.standard
}

// Options returns the multiple-choice option set for the current
// question, building it on first use. The set is cached so that the
// option order and correct label stay fixed while the question is on
// screen.
func (s *Session) Options(build func(*question.Question) *question.OptionSet) *question.OptionSet {
	if s.current == nil {
		return nil
	}
	if s.options == nil {
		s.options = build(s.current)
	}
	return s.options
}

// Record appends the student's answer to the practice log. Logging is
// best-effort: the returned error is for surfacing a warning, not for
// aborting the session.
func (s *Session) Record(ctx context.Context, userAnswer string, isCorrect bool) error {
	if s.current == nil || s.recorder == nil {
		return nil
	}
	return s.recorder.AppendResult(ctx, store.PracticeResult{
		Student:       s.Student,
		Standard:      s.standard,
		QuestionText:  s.current.Text,
		UserAnswer:    userAnswer,
		CorrectAnswer: s.current.CorrectAnswer,
		IsCorrect:     isCorrect,
	})
}
