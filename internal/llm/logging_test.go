package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/mlevine/mathdash/internal/store"
)

type repoStub struct {
	events []store.LLMRequestData
	err    error
}

func (r *repoStub) AppendLLMRequest(_ context.Context, data store.LLMRequestData) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &repoStub{}
	mock := NewMockProvider(MockResponse{
		Text:  "ok",
		Usage: Usage{InputTokens: 10, OutputTokens: 20},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "question-gen")
	if _, err := p.Complete(ctx, Request{Prompt: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success || e.Purpose != "question-gen" {
		t.Errorf("logged event is wrong: %+v", e)
	}
	if e.InputTokens != 10 || e.OutputTokens != 20 {
		t.Errorf("token usage not logged: %+v", e)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &repoStub{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, repo)

	if _, err := p.Complete(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected the provider error to surface")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success || e.ErrorMessage == "" {
		t.Errorf("failure should be logged with its message: %+v", e)
	}
}

func TestLogging_LogFailureIsNotFatal(t *testing.T) {
	repo := &repoStub{err: errors.New("db locked")}
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, repo)

	resp, err := p.Complete(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("a logging failure must not fail the request: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("wrong response: %q", resp.Text)
	}
}
