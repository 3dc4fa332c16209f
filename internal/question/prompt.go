package question

import (
	"fmt"
	"math/rand"
	"strings"
)

// systemPrompt pins the backend to JSON-only output.
const systemPrompt = "You are a specialized math education AI that outputs valid JSON formatted responses only."

// Variation parameter pools. One value from each pool is drawn per
// generation attempt to diversify questions for the same standard.
var (
	difficulties = []string{"basic", "intermediate", "challenging"}
	contexts     = []string{"abstract", "real-world", "visual", "data-analysis"}
	approaches   = []string{"computational", "conceptual", "problem-solving", "pattern-recognition"}
)

// randomVariation draws a fresh parameter combination.
func randomVariation(rng *rand.Rand) VariationParams {
	return VariationParams{
		Difficulty: difficulties[rng.Intn(len(difficulties))],
		Context:    contexts[rng.Intn(len(contexts))],
		Approach:   approaches[rng.Intn(len(approaches))],
	}
}

// buildPrompt constructs the generation prompt: the standard, the
// variation knobs, and the structured-output contract the parser relies
// on (field names and types, the one-of-table/graph rule, no markdown).
func buildPrompt(standard string, params VariationParams, questionType QuestionType, answerType AnswerType) string {
	typeLabel := strings.ReplaceAll(string(questionType), "_", " ")

	var b strings.Builder
	fmt.Fprintf(&b,
		"Create a %s 8th-grade math question as a %s question aligned to standard %s "+
			"that would be similar to what students would see in the 8th Grade NYS Exam.\n",
		params.Difficulty, typeLabel, standard)
	fmt.Fprintf(&b, "Use a %s context and focus on %s skills.\n\n", params.Context, params.Approach)

	b.WriteString("IMPORTANT: Format your response as a clean, properly spaced JSON object with the following structure:\n")
	b.WriteString("{\n")
	b.WriteString(`"question_text": "Clear, properly spaced question text with no formatting errors",` + "\n")
	b.WriteString(`"correct_answer": "The exact expected answer",` + "\n")
	fmt.Fprintf(&b, `"answer_type": %q,`+"\n", answerType)
	b.WriteString(`"explanation": "Step by step explanation with proper spacing",` + "\n")
	b.WriteString(`"equation": "The core equation if applicable, otherwise none",` + "\n")
	b.WriteString(`"table": [["header1", "header2"], [row1val1, row1val2]] or null,` + "\n")
	b.WriteString(`"graph": {"x": [x1, x2], "y": [y1, y2], "label": "Graph title"} or null` + "\n")
	b.WriteString("}\n\n")

	b.WriteString("Ensure all text is properly spaced with no run-together words.\n")
	b.WriteString("For numeric answers, provide the exact value (e.g., 5, 3.14, -2).\n")
	b.WriteString("For text answers, provide the exact expected text response.\n")
	b.WriteString("ONLY include either table or graph, not both. Use line graphs (not bar graphs).\n")
	b.WriteString("Ensure your output is valid JSON. Do not include markdown formatting or comments.")

	return b.String()
}
