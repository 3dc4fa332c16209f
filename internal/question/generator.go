package question

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mlevine/mathdash/internal/llm"
)

// Config controls the behavior of the Generator.
type Config struct {
	// MaxAttempts bounds the uniqueness loop.
	MaxAttempts int

	// SimilarityThreshold rejects a candidate whose Jaccard similarity
	// against any prior accepted question exceeds it.
	SimilarityThreshold float64

	// MaxTokens is the token budget for the backend response.
	MaxTokens int

	// Temperature controls backend output randomness.
	Temperature float64

	// Rand is the pseudo-random source for mode and variation draws.
	// Defaults to a time-seeded source when nil.
	Rand *rand.Rand
}

// DefaultConfig returns the standard generation knobs.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:         5,
		SimilarityThreshold: 0.70,
		MaxTokens:           4000,
		Temperature:         0.3,
	}
}

// GenerationError reports that no usable question came out of the
// attempt budget. Raw carries the final attempt's output.
type GenerationError struct {
	Raw string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator produces practice questions for a curriculum standard using
// the generation backend, retrying with fresh variation parameters
// until the result is sufficiently dissimilar from session history.
type Generator struct {
	provider llm.Provider
	cfg      Config
	rng      *rand.Rand
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{provider: provider, cfg: cfg, rng: rng}
}

// Generate produces a question for the standard that is not too similar
// to any question in history.
//
// Up to MaxAttempts candidates are generated, each with freshly
// randomized variation parameters and a new backend call. A candidate is
// accepted when its text's similarity to every prior question stays at
// or below the threshold. If no attempt qualifies, the last attempt's
// output is returned as-is — not the least-similar candidate of the
// batch. Parse failures on intermediate attempts consume attempt budget
// without aborting the loop.
func (g *Generator) Generate(ctx context.Context, standard string, history []HistoryEntry, mode Mode) (*Question, QuestionType, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	var lastRaw string
	var lastType QuestionType

	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		questionType := g.resolveType(mode)
		answerType := g.resolveAnswerType(questionType)
		params := randomVariation(g.rng)

		raw := g.complete(ctx, standard, params, questionType, answerType)
		lastRaw, lastType = raw, questionType

		q, err := Parse(raw)
		if err != nil {
			continue
		}
		if g.isUnique(q, history) {
			return q, questionType, nil
		}
	}

	// Fallback: use the last attempt, similar or not.
	q, err := Parse(lastRaw)
	if err != nil {
		return nil, TypeError, &GenerationError{Raw: lastRaw, Err: err}
	}
	return q, lastType, nil
}

// complete performs one backend call. Failures are folded into the
// sentinel error string the parser recognizes, so a dead backend costs
// attempt budget instead of aborting the loop.
func (g *Generator) complete(ctx context.Context, standard string, params VariationParams, questionType QuestionType, answerType AnswerType) string {
	if g.provider == nil {
		return fmt.Sprintf("%s no generation backend configured", ErrorPrefix)
	}
	resp, err := g.provider.Complete(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(standard, params, questionType, answerType),
		JSONOnly:    true,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		return fmt.Sprintf("%s %v", ErrorPrefix, err)
	}
	return resp.Text
}

func (g *Generator) resolveType(mode Mode) QuestionType {
	switch mode {
	case ModeMultipleChoice:
		return TypeMultipleChoice
	case ModeShortResponse:
		return TypeFreeResponse
	default:
		if g.rng.Intn(2) == 0 {
			return TypeMultipleChoice
		}
		return TypeFreeResponse
	}
}

// resolveAnswerType picks numeric or text for multiple choice; free
// response always uses mixed.
func (g *Generator) resolveAnswerType(questionType QuestionType) AnswerType {
	if questionType == TypeMultipleChoice {
		if g.rng.Intn(2) == 0 {
			return AnswerNumeric
		}
		return AnswerText
	}
	return AnswerMixed
}

func (g *Generator) isUnique(q *Question, history []HistoryEntry) bool {
	for _, entry := range history {
		if entry.Question == nil {
			continue
		}
		if Similarity(q.Text, entry.Question.Text) > g.cfg.SimilarityThreshold {
			return false
		}
	}
	return true
}
