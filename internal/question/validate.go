package question

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// tolerance is the maximum absolute difference for two numeric values to
// be considered equal.
const tolerance = 0.001

// numberRe matches digit runs with an optional decimal part, e.g. "3",
// "3.14", "10.". Signs are not captured; this mirrors the lenient
// extraction used for fallback comparison.
var numberRe = regexp.MustCompile(`\d+\.?\d*`)

// Validate compares a student's answer against the canonical answer.
//
// Numeric answers are compared as floats within tolerance; when either
// side fails to parse directly, all embedded numbers are extracted from
// both, sorted, and compared pairwise (order-insensitive). Text answers
// are compared after lowercasing and whitespace collapsing, falling back
// to comparing the sets of embedded numbers.
//
// The comparison is intentionally lenient: it privileges not penalizing
// formatting differences over precision, so unrelated answers sharing
// the same embedded numbers can produce false positives.
func Validate(userAnswer, correctAnswer string, answerType AnswerType) bool {
	if answerType == AnswerNumeric {
		return validateNumeric(userAnswer, correctAnswer)
	}
	return validateText(userAnswer, correctAnswer)
}

func validateNumeric(userAnswer, correctAnswer string) bool {
	user, errU := strconv.ParseFloat(strings.TrimSpace(userAnswer), 64)
	correct, errC := strconv.ParseFloat(strings.TrimSpace(correctAnswer), 64)
	if errU == nil && errC == nil {
		return abs(user-correct) < tolerance
	}

	// Multi-number fallback: compare all embedded numbers, sorted.
	userNums := extractNumbers(userAnswer)
	correctNums := extractNumbers(correctAnswer)
	if len(userNums) == 0 || len(userNums) != len(correctNums) {
		return false
	}

	sort.Float64s(userNums)
	sort.Float64s(correctNums)
	for i := range userNums {
		if abs(userNums[i]-correctNums[i]) >= tolerance {
			return false
		}
	}
	return true
}

func validateText(userAnswer, correctAnswer string) bool {
	userText := normalizeText(userAnswer)
	correctText := normalizeText(correctAnswer)
	if userText == correctText {
		return true
	}

	// Same embedded numbers, order- and duplicate-insensitive.
	userNums := extractNumbers(userAnswer)
	correctNums := extractNumbers(correctAnswer)
	if len(userNums) == 0 && len(correctNums) == 0 {
		return false
	}
	return sameNumberSet(userNums, correctNums)
}

// normalizeText lowercases and collapses whitespace runs to single spaces.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// extractNumbers returns every numeric substring of s as a float.
func extractNumbers(s string) []float64 {
	matches := numberRe.FindAllString(s, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		f, err := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64)
		if err != nil {
			continue
		}
		nums = append(nums, f)
	}
	return nums
}

func sameNumberSet(a, b []float64) bool {
	setA := make(map[float64]struct{}, len(a))
	for _, n := range a {
		setA[n] = struct{}{}
	}
	setB := make(map[float64]struct{}, len(b))
	for _, n := range b {
		setB[n] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for n := range setA {
		if _, ok := setB[n]; !ok {
			return false
		}
	}
	return true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
