package tui

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mlevine/mathdash/internal/question"
)

const (
	plotWidth  = 41
	plotHeight = 12
)

// renderTable renders a question's table: first row is the header, the
// rest are data rows.
func renderTable(table [][]any) string {
	if len(table) == 0 {
		return ""
	}

	cells := make([][]string, len(table))
	cols := 0
	for i, row := range table {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = formatCell(v)
		}
		if len(row) > cols {
			cols = len(row)
		}
	}

	widths := make([]int, cols)
	for _, row := range cells {
		for j, c := range row {
			if w := lipgloss.Width(c); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	for i, row := range cells {
		for j, c := range row {
			padded := c + strings.Repeat(" ", widths[j]-lipgloss.Width(c))
			if i == 0 {
				b.WriteString(tableHeaderStyle.Render(padded))
			} else {
				b.WriteString(tableCellStyle.Render(padded))
			}
			if j < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
		if i == 0 {
			b.WriteString(subtitleStyle.Render(strings.Repeat("─", totalWidth(widths))))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	if total > 2 {
		total -= 2
	}
	return total
}

func formatCell(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return fmt.Sprintf("%.0f", t)
		}
		return fmt.Sprintf("%g", t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// renderGraph plots (x, y) points as an ASCII line chart with axis
// extents annotated below.
func renderGraph(g *question.Graph) string {
	if g == nil || len(g.X) == 0 || len(g.X) != len(g.Y) {
		return ""
	}

	minX, maxX := minMax(g.X)
	minY, maxY := minMax(g.Y)
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	grid := make([][]rune, plotHeight)
	for i := range grid {
		grid[i] = make([]rune, plotWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Plot markers, connecting consecutive points with interpolated dots.
	for i := range g.X {
		col, row := project(g.X[i], g.Y[i], minX, maxX, minY, maxY)
		grid[row][col] = '●'

		if i > 0 {
			pc, pr := project(g.X[i-1], g.Y[i-1], minX, maxX, minY, maxY)
			steps := max(absInt(col-pc), absInt(pr-row))
			for s := 1; s < steps; s++ {
				f := float64(s) / float64(steps)
				ic := pc + int(math.Round(f*float64(col-pc)))
				ir := pr + int(math.Round(f*float64(row-pr)))
				if grid[ir][ic] == ' ' {
					grid[ir][ic] = '·'
				}
			}
		}
	}

	var b strings.Builder
	if g.Label != "" {
		b.WriteString(accentStyle.Render(g.Label))
		b.WriteString("\n")
	}
	for _, row := range grid {
		b.WriteString(subtitleStyle.Render("│"))
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString(subtitleStyle.Render("└" + strings.Repeat("─", plotWidth)))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf("x: %g to %g   y: %g to %g", minX, maxX, minY, maxY)))
	return b.String()
}

func project(x, y, minX, maxX, minY, maxY float64) (col, row int) {
	col = int(math.Round((x - minX) / (maxX - minX) * float64(plotWidth-1)))
	row = plotHeight - 1 - int(math.Round((y-minY)/(maxY-minY)*float64(plotHeight-1)))
	return col, row
}

func minMax(vals []float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
