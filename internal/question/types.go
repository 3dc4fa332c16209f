package question

import "time"

// Question is a generated practice question ready for display and grading.
// Instances are constructed only by Parse; no other code path should build
// one by hand.
type Question struct {
	// Text is the question prompt shown to the student.
	Text string

	// CorrectAnswer is the canonical correct answer as a string.
	// Numeric answers are carried as text (e.g. "5", "3.14", "-2") and
	// parsed on demand during validation.
	CorrectAnswer string

	// AnswerType describes how CorrectAnswer should be compared.
	AnswerType AnswerType

	// Explanation is a step-by-step worked solution shown after answering.
	Explanation string

	// Equation is the core equation if applicable, otherwise "none".
	Equation string

	// Table is an optional data table; the first row is the header.
	// Cell values are strings or numbers as decoded from JSON.
	// Nil when the question has no table.
	Table [][]any

	// Graph is an optional line-graph payload. Nil when absent.
	// At most one of Table/Graph is set on a parsed question.
	Graph *Graph
}

// Graph describes a line graph accompanying a question.
type Graph struct {
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Label string    `json:"label"`
}

// AnswerType describes the expected shape of the correct answer.
type AnswerType string

const (
	// AnswerNumeric means the answer is a single numeric value.
	AnswerNumeric AnswerType = "numeric"

	// AnswerText means the answer is free text.
	AnswerText AnswerType = "text"

	// AnswerMixed is used for free-response questions where the answer
	// may combine prose and numbers. Validated through the text path.
	AnswerMixed AnswerType = "mixed"
)

// QuestionType describes how the student answers.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeFreeResponse   QuestionType = "free_response"

	// TypeError tags a generation attempt that failed before producing
	// a question. Callers must check for it before using raw output.
	TypeError QuestionType = "error"
)

// Mode selects the kind of questions a student wants to practice.
type Mode string

const (
	ModeMultipleChoice Mode = "Multiple Choice"
	ModeShortResponse  Mode = "Short Response"

	// ModeEither lets the generator pick randomly per question.
	ModeEither Mode = "Either"
)

// VariationParams are the randomized prompt-shaping knobs used to
// diversify generated questions. They are regenerated per attempt and
// never persisted.
type VariationParams struct {
	Difficulty string
	Context    string
	Approach   string
}

// HistoryEntry records one accepted question within a practice session.
// Entries accumulate monotonically and are discarded at session end;
// they exist only for duplicate suppression.
type HistoryEntry struct {
	Standard  string
	Question  *Question
	Timestamp time.Time
}
