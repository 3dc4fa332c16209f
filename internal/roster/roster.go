// Package roster loads the gradebook export that drives the dashboard:
// one row per student, one column per standard, cells holding mastery
// fractions in [0, 1].
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultWeakThreshold marks a standard as a focus area when the
// student's mastery fraction falls below it.
const DefaultWeakThreshold = 0.70

var parenRe = regexp.MustCompile(`\s*\(.*?\)`)

// Roster holds the cleaned gradebook: ordered student names, ordered
// standard codes, and per-student scores keyed by standard.
type Roster struct {
	students  []string
	standards []string
	scores    map[string]map[string]float64
}

// Load reads and cleans a gradebook CSV export.
//
// Export tools pad the sheet with rows that are not students: a fake
// header row under the real one, a "Total" aggregate, blank separator
// rows, and a trailing "Applied filters: ..." footer. All of those are
// dropped. Student names carry an ID suffix in parentheses which is
// stripped.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a gradebook export from r. See Load for the cleaning
// rules applied.
func Parse(r io.Reader) (*Roster, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read roster header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("roster header has %d columns, need at least 2", len(header))
	}

	standards := make([]string, 0, len(header)-1)
	for _, code := range header[1:] {
		standards = append(standards, strings.TrimSpace(code))
	}

	ro := &Roster{
		standards: standards,
		scores:    make(map[string]map[string]float64),
	}

	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read roster row: %w", err)
		}

		// The export repeats a decorative header row under the real one.
		if first {
			first = false
			if looksLikeHeader(record, standards) {
				continue
			}
		}

		name := strings.TrimSpace(record[0])
		if name == "" || name == "Total" {
			continue
		}
		if strings.Contains(strings.ToLower(name), "applied filters") {
			continue
		}

		name = strings.TrimSpace(parenRe.ReplaceAllString(name, ""))
		if name == "" {
			continue
		}

		row := make(map[string]float64, len(standards))
		for i, code := range standards {
			if i+1 >= len(record) {
				break
			}
			cell := strings.TrimSpace(record[i+1])
			if cell == "" {
				continue
			}
			score, err := parseScore(cell)
			if err != nil {
				continue
			}
			row[code] = score
		}

		if _, seen := ro.scores[name]; !seen {
			ro.students = append(ro.students, name)
		}
		ro.scores[name] = row
	}

	if len(ro.students) == 0 {
		return nil, fmt.Errorf("roster contains no student rows")
	}
	return ro, nil
}

// looksLikeHeader reports whether a row echoes the column header
// instead of carrying scores.
func looksLikeHeader(record []string, standards []string) bool {
	if len(record) < 2 {
		return true
	}
	for _, cell := range record[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := parseScore(cell); err == nil {
			return false
		}
	}
	return true
}

// parseScore accepts mastery cells as fractions ("0.85") or percent
// strings ("85%"), normalizing to a fraction.
func parseScore(cell string) (float64, error) {
	if strings.HasSuffix(cell, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(cell, "%")), 64)
		if err != nil {
			return 0, err
		}
		return pct / 100, nil
	}
	return strconv.ParseFloat(cell, 64)
}

// Students returns student names in sheet order.
func (r *Roster) Students() []string {
	out := make([]string, len(r.students))
	copy(out, r.students)
	return out
}

// Standards returns the standard codes in sheet order.
func (r *Roster) Standards() []string {
	out := make([]string, len(r.standards))
	copy(out, r.standards)
	return out
}

// Scores returns a student's mastery fractions keyed by standard code.
// The second return is false when the student is not on the roster.
func (r *Roster) Scores(student string) (map[string]float64, bool) {
	row, ok := r.scores[student]
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out, true
}

// Score returns one student's mastery fraction for a standard. The
// second return is false when the student or cell is missing.
func (r *Roster) Score(student, standard string) (float64, bool) {
	row, ok := r.scores[student]
	if !ok {
		return 0, false
	}
	score, ok := row[standard]
	return score, ok
}

// WeakStandards returns the standards where the student scores below
// threshold, in sheet order.
func (r *Roster) WeakStandards(student string, threshold float64) []string {
	row, ok := r.scores[student]
	if !ok {
		return nil
	}
	var weak []string
	for _, code := range r.standards {
		score, present := row[code]
		if present && score < threshold {
			weak = append(weak, code)
		}
	}
	return weak
}

// HasStudent reports whether the student appears on the roster.
func (r *Roster) HasStudent(student string) bool {
	_, ok := r.scores[student]
	return ok
}

// SortedStudents returns student names alphabetically.
func (r *Roster) SortedStudents() []string {
	out := r.Students()
	sort.Strings(out)
	return out
}
