package question

import "testing"

func TestSimilarity_IdenticalText(t *testing.T) {
	s := Similarity("Solve for x: 2x + 3 = 7", "Solve for x: 2x + 3 = 7")
	if s != 1.0 {
		t.Errorf("identical text should score 1.0, got %v", s)
	}
}

func TestSimilarity_DisjointText(t *testing.T) {
	s := Similarity("apples and oranges", "triangles plus circles")
	if s != 0 {
		t.Errorf("disjoint word sets should score 0, got %v", s)
	}
}

func TestSimilarity_IgnoresCaseAndPunctuation(t *testing.T) {
	s := Similarity("What is 2+2?", "what is 22")
	if s != 1.0 {
		t.Errorf("case and punctuation should not matter, got %v", s)
	}
}

func TestSimilarity_PartialOverlap(t *testing.T) {
	// {a, b, c} vs {a, b, d}: intersection 2, union 4.
	s := Similarity("a b c", "a b d")
	if s != 0.5 {
		t.Errorf("expected 0.5, got %v", s)
	}
}

func TestSimilarity_BothEmpty(t *testing.T) {
	if s := Similarity("", ""); s != 0 {
		t.Errorf("empty inputs should score 0, got %v", s)
	}
}

func TestSimilarity_RepeatedWordsCountOnce(t *testing.T) {
	a := Similarity("five five five apples", "five apples")
	b := Similarity("five apples", "five apples")
	if a != b {
		t.Errorf("duplicate words should not change the score: %v vs %v", a, b)
	}
}
