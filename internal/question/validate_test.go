package question

import "testing"

func TestValidate_NumericWithinTolerance(t *testing.T) {
	cases := []struct {
		user, correct string
		want          bool
	}{
		{"5", "5", true},
		{"5.0", "5", true},
		{"5.0005", "5", true},     // within 0.001
		{"5.01", "5", false},      // outside 0.001
		{"-2", "-2.0004", true},
		{" 7 ", "7", true},        // whitespace tolerated
		{"8", "7", false},
	}
	for _, c := range cases {
		if got := Validate(c.user, c.correct, AnswerNumeric); got != c.want {
			t.Errorf("Validate(%q, %q, numeric) = %v, want %v", c.user, c.correct, got, c.want)
		}
	}
}

func TestValidate_NumericMultiNumberFallback(t *testing.T) {
	// Order should not matter once both sides fail direct parsing.
	if !Validate("3 and 5", "5 and 3", AnswerNumeric) {
		t.Error("same numbers in different order should validate")
	}
	if Validate("3 and 5", "3 and 6", AnswerNumeric) {
		t.Error("different numbers should not validate")
	}
	if Validate("no numbers here", "also none", AnswerNumeric) {
		t.Error("numeric comparison with no numbers should fail")
	}
	if Validate("3", "3 and 5", AnswerNumeric) {
		t.Error("mismatched number counts should fail")
	}
}

func TestValidate_TextExactAfterNormalization(t *testing.T) {
	cases := []struct {
		user, correct string
		want          bool
	}{
		{"The Slope", "the slope", true},
		{"the   slope", "the slope", true}, // whitespace collapsed
		{"a line", "the slope", false},
	}
	for _, c := range cases {
		if got := Validate(c.user, c.correct, AnswerText); got != c.want {
			t.Errorf("Validate(%q, %q, text) = %v, want %v", c.user, c.correct, got, c.want)
		}
	}
}

func TestValidate_TextNumberSetFallback(t *testing.T) {
	// Text answers with the same embedded numbers pass even when the
	// prose differs.
	if !Validate("x = 4, y = 7", "y is 7 and x is 4", AnswerText) {
		t.Error("same number sets should validate")
	}
	if Validate("x = 4", "x = 5", AnswerText) {
		t.Error("different number sets should not validate")
	}
}

func TestValidate_TextWithNoNumbersRequiresExactMatch(t *testing.T) {
	// Two digit-free answers that differ must not fall through to a
	// vacuous empty-set comparison.
	if Validate("a parallelogram", "a triangle", AnswerText) {
		t.Error("digit-free mismatched text should fail")
	}
}

func TestValidate_MixedUsesTextPath(t *testing.T) {
	if !Validate("The answer is 12", "12", AnswerMixed) {
		t.Error("mixed answers should compare embedded numbers")
	}
}
