package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mlevine/mathdash/internal/performance"
	"github.com/mlevine/mathdash/internal/question"
)

type dashState struct {
	summary *performance.Summary
	weak    []string
	cursor  int
	mode    question.Mode
	errMsg  string
}

func newDashState(deps Deps, student string) dashState {
	d := dashState{mode: question.ModeMultipleChoice}

	summary, ok := performance.Format(deps.Roster, student)
	if !ok {
		d.errMsg = fmt.Sprintf("%s is not on the roster", student)
		return d
	}
	d.summary = summary
	d.weak = deps.Roster.WeakStandards(student, deps.WeakThreshold)
	return d
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.dash.cursor > 0 {
			m.dash.cursor--
		}
	case "down", "j":
		if m.dash.cursor < len(m.dash.weak)-1 {
			m.dash.cursor++
		}
	case "m":
		if m.dash.mode == question.ModeMultipleChoice {
			m.dash.mode = question.ModeShortResponse
		} else {
			m.dash.mode = question.ModeMultipleChoice
		}
	case "enter":
		if len(m.dash.weak) == 0 {
			return m, nil
		}
		standard := m.dash.weak[m.dash.cursor]
		return m.startPractice(standard, m.dash.mode)
	case "esc":
		m.sess = nil
		m.screen = screenLogin
		m.login = newLoginState()
		return m, m.login.username.Focus()
	}
	return m, nil
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📊 8th Grade Standards Dashboard"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Signed in as " + m.sess.Student))
	b.WriteString("\n\n")

	if m.dash.errMsg != "" {
		b.WriteString(errorStyle.Render(m.dash.errMsg))
		b.WriteString("\n")
		return cardStyle.Render(b.String())
	}

	b.WriteString(bodyStyle.Render(fmt.Sprintf("📈 Performance for %s", m.sess.Student)))
	b.WriteString("\n\n")
	for _, category := range m.dash.summary.CategoryNames() {
		b.WriteString(accentStyle.Render("📂 " + category))
		b.WriteString("\n")
		for _, e := range m.dash.summary.Categories[category] {
			line := fmt.Sprintf("  %s %s — %.1f%%", e.Status.Marker(), e.Label, e.Percent)
			b.WriteString(bodyStyle.Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if len(m.dash.weak) == 0 {
		b.WriteString(successStyle.Render("No weak standards — great job!"))
		b.WriteString("\n")
		return cardStyle.Render(b.String())
	}

	b.WriteString(errorStyle.Render("⚠️  Focus Areas"))
	b.WriteString("\n")
	for i, code := range m.dash.weak {
		detail, _ := performance.Detail(code)
		line := fmt.Sprintf("%s (%s)", code, detail.Label)
		if i == m.dash.cursor {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(bodyStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render("Question mode: ") + accentStyle.Render(string(m.dash.mode)))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("↑↓: select standard · m: change mode · Enter: practice · Esc: sign out"))
	return cardStyle.Render(b.String())
}
