package question

import (
	"strconv"
	"strings"
)

// OptionLabels are the fixed multiple-choice labels.
var OptionLabels = []string{"A", "B", "C", "D"}

// OptionSet maps the fixed label set A-D to option values, with one
// designated correct label. Built once when a multiple-choice question
// is first displayed and held immutable for the life of that display;
// rebuilding per redraw would shuffle the correct answer's position
// under the student.
type OptionSet struct {
	labels  []string
	values  map[string]string
	correct string
}

// NewOptionSet pairs options with labels in order and resolves the
// correct label. Numeric answers are matched by tolerance first; if that
// fails (or the answer is text), a trimmed string match is used, falling
// back to the first label.
func NewOptionSet(q *Question, options []string) *OptionSet {
	set := &OptionSet{
		labels: OptionLabels[:min(len(options), len(OptionLabels))],
		values: make(map[string]string, len(options)),
	}
	for i, label := range set.labels {
		set.values[label] = options[i]
	}
	set.correct = set.resolveCorrect(q)
	return set
}

func (s *OptionSet) resolveCorrect(q *Question) string {
	if q.AnswerType == AnswerNumeric {
		if correct, err := strconv.ParseFloat(strings.TrimSpace(q.CorrectAnswer), 64); err == nil {
			for _, label := range s.labels {
				v, err := strconv.ParseFloat(strings.TrimSpace(s.values[label]), 64)
				if err != nil {
					continue
				}
				if abs(v-correct) < tolerance {
					return label
				}
			}
		}
	}

	for _, label := range s.labels {
		if strings.TrimSpace(s.values[label]) == strings.TrimSpace(q.CorrectAnswer) {
			return label
		}
	}
	return s.labels[0]
}

// Labels returns the labels in display order.
func (s *OptionSet) Labels() []string {
	return s.labels
}

// Value returns the option value for a label.
func (s *OptionSet) Value(label string) string {
	return s.values[label]
}

// CorrectLabel returns the label of the correct option.
func (s *OptionSet) CorrectLabel() string {
	return s.correct
}

// IsCorrect reports whether the picked label is the correct one.
func (s *OptionSet) IsCorrect(label string) bool {
	return label == s.correct
}
