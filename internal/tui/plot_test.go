package tui

import (
	"strings"
	"testing"

	"github.com/mlevine/mathdash/internal/question"
)

func TestRenderTable_HeaderAndCells(t *testing.T) {
	out := renderTable([][]any{
		{"x", "y"},
		{float64(1), float64(4)},
		{float64(2), 8.5},
	})

	for _, want := range []string{"x", "y", "1", "4", "2", "8.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if out := renderTable(nil); out != "" {
		t.Errorf("empty table should render nothing, got %q", out)
	}
}

func TestRenderGraph_PlotsPointsAndExtents(t *testing.T) {
	out := renderGraph(&question.Graph{
		X:     []float64{0, 1, 2, 3},
		Y:     []float64{0, 2, 4, 6},
		Label: "y = 2x",
	})

	if !strings.Contains(out, "y = 2x") {
		t.Error("graph label should be rendered")
	}
	if !strings.Contains(out, "●") {
		t.Error("graph should contain point markers")
	}
	if !strings.Contains(out, "x: 0 to 3") || !strings.Contains(out, "y: 0 to 6") {
		t.Errorf("graph should annotate axis extents:\n%s", out)
	}
}

func TestRenderGraph_DegenerateInput(t *testing.T) {
	if out := renderGraph(nil); out != "" {
		t.Errorf("nil graph should render nothing, got %q", out)
	}
	if out := renderGraph(&question.Graph{X: []float64{1, 2}, Y: []float64{3}}); out != "" {
		t.Errorf("mismatched coordinate lengths should render nothing, got %q", out)
	}
}

func TestRenderGraph_FlatLine(t *testing.T) {
	// A constant function must not divide by a zero y-range.
	out := renderGraph(&question.Graph{
		X: []float64{0, 1, 2},
		Y: []float64{5, 5, 5},
	})
	if !strings.Contains(out, "●") {
		t.Error("flat line should still plot markers")
	}
}
