package store

import (
	"context"
	"fmt"
	"time"
)

// LLMRequestData captures one generation backend call for the request log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRepo provides append access to the LLM request log.
type LLMRequestRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestData) error
}

// AppendLLMRequest records a generation backend call event.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}
