package question

import (
	"errors"
	"strings"
	"testing"
)

const validPayload = `{
	"question_text": "What is 3 + 4?",
	"correct_answer": 7,
	"answer_type": "numeric",
	"explanation": "Add the two numbers: 3 + 4 = 7.",
	"equation": "3 + 4 = x",
	"table": null,
	"graph": null
}`

func TestParse_ValidPayload(t *testing.T) {
	q, err := Parse(validPayload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "What is 3 + 4?" {
		t.Errorf("wrong question text: %q", q.Text)
	}
	if q.CorrectAnswer != "7" {
		t.Errorf("numeric correct_answer should stringify as %q, got %q", "7", q.CorrectAnswer)
	}
	if q.AnswerType != AnswerNumeric {
		t.Errorf("wrong answer type: %q", q.AnswerType)
	}
	if q.Equation != "3 + 4 = x" {
		t.Errorf("wrong equation: %q", q.Equation)
	}
	if q.Table != nil || q.Graph != nil {
		t.Error("null table/graph should decode as absent")
	}
}

func TestParse_RecoversFromSurroundingProse(t *testing.T) {
	raw := "Here is your question:\n" + validPayload + "\nLet me know if you need another!"
	q, err := Parse(raw)
	if err != nil {
		t.Fatalf("expected recovery via brace trimming, got: %v", err)
	}
	if q.CorrectAnswer != "7" {
		t.Errorf("wrong answer after recovery: %q", q.CorrectAnswer)
	}
}

func TestParse_MissingFieldNamesTheField(t *testing.T) {
	for _, field := range []string{"question_text", "correct_answer", "answer_type", "explanation"} {
		payload := map[string]string{
			"question_text":  `"q"`,
			"correct_answer": `"a"`,
			"answer_type":    `"text"`,
			"explanation":    `"e"`,
		}
		delete(payload, field)

		var parts []string
		for k, v := range payload {
			parts = append(parts, `"`+k+`": `+v)
		}
		raw := "{" + strings.Join(parts, ", ") + "}"

		_, err := Parse(raw)
		if err == nil {
			t.Fatalf("expected error for missing %s", field)
		}
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should name missing field %s, got: %v", field, err)
		}
	}
}

func TestParse_BackendErrorSentinel(t *testing.T) {
	_, err := Parse(ErrorPrefix + " connection refused")
	if err == nil {
		t.Fatal("expected error")
	}
	var be *BackendError
	if !errors.As(err, &be) {
		t.Fatalf("expected BackendError, got %T", err)
	}
}

func TestParse_NotJSON(t *testing.T) {
	_, err := Parse("I cannot answer that.")
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %T", err)
	}
}

func TestParse_RejectsBothTableAndGraph(t *testing.T) {
	raw := `{
		"question_text": "q",
		"correct_answer": "a",
		"answer_type": "text",
		"explanation": "e",
		"table": [["x", "y"], [1, 2]],
		"graph": {"x": [1, 2], "y": [3, 4], "label": "line"}
	}`
	_, err := Parse(raw)
	if err == nil {
		t.Fatal("payload with both table and graph should be rejected")
	}
	if !strings.Contains(err.Error(), "both table and graph") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_EquationDefaultsToNone(t *testing.T) {
	raw := `{
		"question_text": "q",
		"correct_answer": "a",
		"answer_type": "text",
		"explanation": "e"
	}`
	q, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Equation != "none" {
		t.Errorf("missing equation should default to %q, got %q", "none", q.Equation)
	}
}

func TestParse_DecodesTable(t *testing.T) {
	raw := `{
		"question_text": "Use the table.",
		"correct_answer": 12,
		"answer_type": "numeric",
		"explanation": "e",
		"table": [["x", "y"], [1, 4], [2, 8]]
	}`
	q, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Table) != 3 {
		t.Fatalf("expected 3 table rows, got %d", len(q.Table))
	}
	if q.Table[0][0] != "x" {
		t.Errorf("wrong header cell: %v", q.Table[0][0])
	}
}

func TestParse_DecodesGraph(t *testing.T) {
	raw := `{
		"question_text": "Use the graph.",
		"correct_answer": 2,
		"answer_type": "numeric",
		"explanation": "e",
		"graph": {"x": [0, 1, 2], "y": [0, 2, 4], "label": "y = 2x"}
	}`
	q, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Graph == nil {
		t.Fatal("graph should be decoded")
	}
	if len(q.Graph.X) != 3 || len(q.Graph.Y) != 3 || q.Graph.Label != "y = 2x" {
		t.Errorf("graph decoded wrong: %+v", q.Graph)
	}
}

func TestParse_RejectsMalformedGraph(t *testing.T) {
	raw := `{
		"question_text": "q",
		"correct_answer": "a",
		"answer_type": "text",
		"explanation": "e",
		"graph": {"x": ["a", "b"], "y": [1, 2]}
	}`
	if _, err := Parse(raw); err == nil {
		t.Error("non-numeric graph coordinates should be rejected")
	}
}
