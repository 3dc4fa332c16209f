package question

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ErrorPrefix marks raw generator output that is a backend failure
// message rather than a question payload. The parser recognizes it and
// reports the failure without attempting JSON decoding.
const ErrorPrefix = "Error generating question:"

// requiredFields must all be present in a decoded payload.
var requiredFields = []string{"question_text", "correct_answer", "answer_type", "explanation"}

// ParseError reports a malformed or incomplete question payload.
// Raw carries the offending backend output for debugging.
type ParseError struct {
	Msg string
	Raw string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// BackendError reports a generation backend failure that was carried as
// a sentinel error string.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

// Parse decodes raw backend output into a validated Question.
//
// It tolerates prose wrapped around the JSON object: when direct decoding
// fails, the input is trimmed to the substring from the first '{' through
// the last '}' and decoded once more. Missing required fields are
// reported by name. Optional fields are backfilled: equation defaults to
// "none", table and graph to absent.
func Parse(raw string) (*Question, error) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, ErrorPrefix) {
		return nil, &BackendError{Message: trimmed}
	}

	decoded, err := decodeObject(trimmed)
	if err != nil {
		return nil, &ParseError{Msg: err.Error(), Raw: raw}
	}

	for _, field := range requiredFields {
		if _, ok := decoded[field]; !ok {
			return nil, &ParseError{
				Msg: fmt.Sprintf("missing required field: %s", field),
				Raw: raw,
			}
		}
	}

	if hasValue(decoded, "table") && hasValue(decoded, "graph") {
		return nil, &ParseError{
			Msg: "payload contains both table and graph; exactly one is allowed",
			Raw: raw,
		}
	}

	if err := validatePayloadShape(any(decoded)); err != nil {
		return nil, &ParseError{
			Msg: fmt.Sprintf("payload shape invalid: %v", err),
			Raw: raw,
		}
	}

	q := &Question{
		Text:          stringify(decoded["question_text"]),
		CorrectAnswer: stringify(decoded["correct_answer"]),
		AnswerType:    AnswerType(stringify(decoded["answer_type"])),
		Explanation:   stringify(decoded["explanation"]),
		Equation:      "none",
	}

	if v, ok := decoded["equation"]; ok && v != nil {
		q.Equation = stringify(v)
	}

	if hasValue(decoded, "table") {
		table, err := decodeTable(decoded["table"])
		if err != nil {
			return nil, &ParseError{Msg: err.Error(), Raw: raw}
		}
		q.Table = table
	}

	if hasValue(decoded, "graph") {
		graph, err := decodeGraph(decoded["graph"])
		if err != nil {
			return nil, &ParseError{Msg: err.Error(), Raw: raw}
		}
		q.Graph = graph
	}

	return q, nil
}

// decodeObject parses raw as a JSON object, retrying once on a substring
// trimmed to the outermost braces.
func decodeObject(raw string) (map[string]any, error) {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		return decoded, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("response does not contain a JSON object")
	}

	sanitized := raw[start : end+1]
	if err := json.Unmarshal([]byte(sanitized), &decoded); err != nil {
		return nil, fmt.Errorf("could not parse response as JSON after sanitization: %v", err)
	}
	return decoded, nil
}

// hasValue reports whether key is present and non-null.
func hasValue(m map[string]any, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

// stringify converts a decoded JSON scalar to its string form. Numbers
// keep their shortest representation so "5" stays "5", not "5.000000".
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

func decodeTable(v any) ([][]any, error) {
	rows, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("table must be an array of rows")
	}
	table := make([][]any, 0, len(rows))
	for i, r := range rows {
		cells, ok := r.([]any)
		if !ok {
			return nil, fmt.Errorf("table row %d is not an array", i)
		}
		table = append(table, cells)
	}
	return table, nil
}

func decodeGraph(v any) (*Graph, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("graph must be an object")
	}

	g := &Graph{}
	var err error
	if g.X, err = floatSlice(obj["x"]); err != nil {
		return nil, fmt.Errorf("graph x: %v", err)
	}
	if g.Y, err = floatSlice(obj["y"]); err != nil {
		return nil, fmt.Errorf("graph y: %v", err)
	}
	if label, ok := obj["label"].(string); ok {
		g.Label = label
	}
	return g, nil
}

func floatSlice(v any) ([]float64, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array of numbers")
	}
	out := make([]float64, 0, len(raw))
	for _, e := range raw {
		f, ok := e.(float64)
		if !ok {
			return nil, fmt.Errorf("expected an array of numbers")
		}
		out = append(out, f)
	}
	return out, nil
}
