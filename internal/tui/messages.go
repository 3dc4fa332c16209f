package tui

import (
	"github.com/mlevine/mathdash/internal/provision"
	"github.com/mlevine/mathdash/internal/question"
)

// questionReadyMsg carries the result of an asynchronous generation
// call. Options is non-nil only for multiple-choice questions; it is
// produced in the same command so the option set is complete before the
// question reaches the screen.
type questionReadyMsg struct {
	Standard string
	Question *question.Question
	Type     question.QuestionType
	Options  []string
	Err      error
}

// resultRecordedMsg reports the outcome of appending to the practice
// log. A failure is surfaced as a warning, never as a session abort.
type resultRecordedMsg struct {
	Err error
}

// adminActionMsg carries the outcome of a store operation performed on
// the admin screen.
type adminActionMsg struct {
	OK      bool
	Message string
}

// provisionDoneMsg reports bulk account creation results.
type provisionDoneMsg struct {
	Created []provision.Result
	Err     error
}
