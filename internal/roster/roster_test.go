package roster

import (
	"strings"
	"testing"
)

const sampleExport = `Student,8.EE.7,8.F.3,8.G.7
Student,8.EE.7,8.F.3,8.G.7
Jane Smith (12345),0.85,0.55,0.62
John Doe (67890),0.40,0.90,
Total,0.62,0.72,0.62
,,,
Applied filters: Grade 8,,,
`

func parseSample(t *testing.T) *Roster {
	t.Helper()
	r, err := Parse(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestParse_DropsNonStudentRows(t *testing.T) {
	r := parseSample(t)

	students := r.Students()
	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %v", students)
	}
	if r.HasStudent("Total") {
		t.Error("Total row should be dropped")
	}
	for _, s := range students {
		if strings.Contains(strings.ToLower(s), "applied filters") {
			t.Errorf("filter footer row leaked into students: %q", s)
		}
	}
}

func TestParse_StripsNameParenthetical(t *testing.T) {
	r := parseSample(t)

	if !r.HasStudent("Jane Smith") {
		t.Errorf("ID suffix should be stripped, students: %v", r.Students())
	}
	if r.HasStudent("Jane Smith (12345)") {
		t.Error("raw name with ID should not survive")
	}
}

func TestParse_ScoresAndMissingCells(t *testing.T) {
	r := parseSample(t)

	score, ok := r.Score("Jane Smith", "8.EE.7")
	if !ok || score != 0.85 {
		t.Errorf("Score(Jane Smith, 8.EE.7) = %v, %v", score, ok)
	}

	// John Doe's 8.G.7 cell is empty.
	if _, ok := r.Score("John Doe", "8.G.7"); ok {
		t.Error("empty cell should report absent")
	}

	if _, ok := r.Scores("Nobody"); ok {
		t.Error("unknown student should report absent")
	}
}

func TestParse_PercentCells(t *testing.T) {
	data := "Student,8.EE.7\nJane Smith,85%\n"
	r, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	score, ok := r.Score("Jane Smith", "8.EE.7")
	if !ok || score != 0.85 {
		t.Errorf("percent cell should normalize to fraction, got %v, %v", score, ok)
	}
}

func TestWeakStandards(t *testing.T) {
	r := parseSample(t)

	weak := r.WeakStandards("Jane Smith", DefaultWeakThreshold)
	want := []string{"8.F.3", "8.G.7"}
	if len(weak) != len(want) {
		t.Fatalf("weak = %v, want %v", weak, want)
	}
	for i := range want {
		if weak[i] != want[i] {
			t.Errorf("weak[%d] = %s, want %s (sheet order)", i, weak[i], want[i])
		}
	}

	// A missing cell is not weak; it is unknown.
	weak = r.WeakStandards("John Doe", DefaultWeakThreshold)
	for _, code := range weak {
		if code == "8.G.7" {
			t.Error("missing cells must not be counted as weak")
		}
	}
}

func TestParse_EmptyRosterFails(t *testing.T) {
	if _, err := Parse(strings.NewReader("Student,8.EE.7\nTotal,0.5\n")); err == nil {
		t.Error("a roster with no student rows should fail")
	}
}
