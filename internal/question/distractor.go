package question

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mlevine/mathdash/internal/llm"
)

// numericFallback and textFallback are the placeholder option sets used
// when the correct answer cannot be parsed or the distractor backend
// fails. Degraded but usable; never surfaced as an error.
var (
	numericFallback = []string{"Error option 1", "Error option 2", "Error option 3"}
	textFallback    = []string{"Incorrect option 1", "Incorrect option 2", "Incorrect option 3"}
)

// Distractors generates multiple-choice option sets: the correct answer
// plus three plausible wrong answers, shuffled.
//
// Generation is deterministic per question: the pseudo-random source is
// seeded from a hash of the question text and correct answer, so the
// same question always yields the same options in the same order. The
// source is local to each call; the package never touches the global
// rand state.
type Distractors struct {
	provider llm.Provider
}

// NewDistractors creates a distractor generator. The provider is used
// only for text-answer questions; pass nil to always use the fallback
// text options.
func NewDistractors(provider llm.Provider) *Distractors {
	return &Distractors{provider: provider}
}

// Options returns exactly 4 options containing the (rounded) correct
// answer once. Numeric answers get arithmetic-perturbation distractors;
// text answers get model-generated misconceptions with a local fallback.
func (d *Distractors) Options(ctx context.Context, q *Question) []string {
	rng := rand.New(rand.NewSource(contentSeed(q.Text, q.CorrectAnswer)))

	var options []string
	if q.AnswerType == AnswerNumeric {
		options = d.numericOptions(q.CorrectAnswer, rng)
	} else {
		options = d.textOptions(ctx, q)
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// contentSeed derives a deterministic seed from question content.
func contentSeed(text, answer string) int64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	h.Write([]byte(answer))
	return int64(h.Sum64())
}

// numericOptions builds distractors modeled on common student errors.
func (d *Distractors) numericOptions(correctAnswer string, rng *rand.Rand) []string {
	correct, err := strconv.ParseFloat(strings.TrimSpace(correctAnswer), 64)
	if err != nil {
		return append([]string{correctAnswer}, numericFallback...)
	}
	correctRounded := round2(correct)

	perturbations := []float64{-2, -1, 1, 2}
	candidates := make([]float64, 0, 4)

	// Sign error. A zero answer would duplicate itself, use 1 instead.
	if correct != 0 {
		candidates = append(candidates, -correct)
	} else {
		candidates = append(candidates, 1)
	}

	// Typical off-by-one-or-two computation errors.
	for i := 0; i < 2; i++ {
		candidates = append(candidates, correct+perturbations[rng.Intn(len(perturbations))])
	}

	// Order-of-magnitude error.
	if abs(correct) < 1 {
		candidates = append(candidates, correct*10)
	} else {
		candidates = append(candidates, correct/10)
	}

	// Round, drop collisions with the correct answer, de-duplicate
	// preserving first occurrence, and keep at most 3.
	var distractors []float64
	for _, c := range candidates {
		c = round2(c)
		if abs(c-correctRounded) <= tolerance {
			continue
		}
		if containsFloat(distractors, c) {
			continue
		}
		distractors = append(distractors, c)
		if len(distractors) == 3 {
			break
		}
	}

	// Pad with random offsets until we have 3 distinct distractors.
	for len(distractors) < 3 {
		candidate := round2(correct + (rng.Float64()*10 - 5))
		if abs(candidate-correctRounded) <= tolerance || containsFloat(distractors, candidate) {
			continue
		}
		distractors = append(distractors, candidate)
	}

	options := make([]string, 0, 4)
	options = append(options, formatFloat(correctRounded))
	for _, v := range distractors {
		options = append(options, formatFloat(v))
	}
	return options
}

// textOptions asks the backend for 3 plausible misconception answers.
func (d *Distractors) textOptions(ctx context.Context, q *Question) []string {
	options := append([]string{q.CorrectAnswer}, textFallback...)
	if d.provider == nil {
		return options
	}

	prompt := fmt.Sprintf(
		"Question: %s\nCorrect answer: %s\n\n"+
			"Generate 3 plausible but incorrect answers that a student might choose, "+
			"based on common misconceptions or errors. "+
			"Format as a JSON object with a key 'distractors' containing an array.",
		q.Text, q.CorrectAnswer,
	)

	ctx = llm.WithPurpose(ctx, "distractor-gen")
	resp, err := d.provider.Complete(ctx, llm.Request{
		Prompt:      prompt,
		JSONOnly:    true,
		Temperature: 0.3,
		MaxTokens:   800,
	})
	if err != nil {
		return options
	}

	var payload struct {
		Distractors []any `json:"distractors"`
	}
	if err := json.Unmarshal([]byte(resp.Text), &payload); err != nil || len(payload.Distractors) < 3 {
		return options
	}

	generated := make([]string, 0, 3)
	for _, v := range payload.Distractors[:3] {
		generated = append(generated, stringify(v))
	}
	return append([]string{q.CorrectAnswer}, generated...)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func containsFloat(s []float64, v float64) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
