package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// payloadSchema is the JSON Schema for the question payload the backend
// must satisfy. Required-field presence is checked separately so missing
// fields get a named error; this schema guards the shape of what is
// present (table is an array of row arrays, graph has numeric x/y, and
// so on).
var payloadSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question_text":  map[string]any{"type": "string"},
		"correct_answer": map[string]any{"type": []any{"string", "number"}},
		"answer_type": map[string]any{
			"type": "string",
			"enum": []any{"numeric", "text", "mixed"},
		},
		"explanation": map[string]any{"type": "string"},
		"equation":    map[string]any{"type": []any{"string", "null"}},
		"table": map[string]any{
			"type": []any{"array", "null"},
			"items": map[string]any{
				"type": "array",
			},
		},
		"graph": map[string]any{
			"type": []any{"object", "null"},
			"properties": map[string]any{
				"x":     map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
				"y":     map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
				"label": map[string]any{"type": "string"},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledPayloadSchema compiles payloadSchema once and caches it.
func compiledPayloadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so round-trip
		// the definition through encoding/json first.
		defBytes, err := json.Marshal(payloadSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal payload schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse payload schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-payload.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validatePayloadShape checks the decoded payload against payloadSchema.
func validatePayloadShape(decoded any) error {
	schema, err := compiledPayloadSchema()
	if err != nil {
		return err
	}
	return schema.Validate(decoded)
}
