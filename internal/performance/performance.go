// Package performance turns raw roster scores into the category-grouped
// summary the dashboard displays.
package performance

import (
	"math"
	"sort"

	"github.com/mlevine/mathdash/internal/roster"
)

// Status buckets a score for display.
type Status int

const (
	StatusGood Status = iota // >= 80%
	StatusWarn               // >= 60%
	StatusWeak               // below 60%
)

// Marker returns the status indicator shown next to a standard.
func (s Status) Marker() string {
	switch s {
	case StatusGood:
		return "🟢"
	case StatusWarn:
		return "🟡"
	default:
		return "🔴"
	}
}

// Entry is one standard's summary line.
type Entry struct {
	Label   string
	Code    string
	Percent float64
	Status  Status
}

// Summary groups entries by reporting category.
type Summary struct {
	Categories map[string][]Entry
}

// Format builds a student's performance summary. Gradebook columns
// that are not recognized standards, and cells with no score, are
// skipped.
func Format(r *roster.Roster, student string) (*Summary, bool) {
	scores, ok := r.Scores(student)
	if !ok {
		return nil, false
	}

	s := &Summary{Categories: make(map[string][]Entry)}
	for _, code := range r.Standards() {
		if !Known(code) {
			continue
		}
		frac, present := scores[code]
		if !present {
			continue
		}

		detail, _ := Detail(code)
		pct := math.Round(frac*1000) / 10

		status := StatusWeak
		switch {
		case pct >= 80:
			status = StatusGood
		case pct >= 60:
			status = StatusWarn
		}

		s.Categories[detail.Category] = append(s.Categories[detail.Category], Entry{
			Label:   detail.Label,
			Code:    code,
			Percent: pct,
			Status:  status,
		})
	}
	return s, true
}

// CategoryNames returns the summary's categories alphabetically.
func (s *Summary) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
