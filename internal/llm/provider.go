package llm

import "context"

// Provider is the generation backend abstraction. Consumers call
// Complete with a prompt and receive the model's text output.
type Provider interface {
	// Complete sends the prompt to the model and returns its response.
	// When the request sets JSONOnly, the provider uses its native
	// mechanism to coerce the output into a single JSON object.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// JSONOnly hints the provider to force a single JSON object as
	// output (OpenAI json_object response format, Gemini JSON MIME
	// type, a trailing instruction for providers without a native
	// mechanism).
	JSONOnly bool

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int
}

// Response holds the model's output.
type Response struct {
	// Text is the generated output. With JSONOnly set this should be a
	// single JSON object, but callers must still parse defensively.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// jsonOnlyInstruction is appended for providers without a native
// JSON-object output mode.
const jsonOnlyInstruction = "Respond with a single valid JSON object and nothing else. No markdown, no comments."
