package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/mlevine/mathdash/internal/question"
)

type feedback struct {
	correct       bool
	correctAnswer string
	explanation   string
}

type practiceState struct {
	standard string
	mode     question.Mode

	loading bool
	spin    spinner.Model

	current *question.Question
	qType   question.QuestionType
	options *question.OptionSet

	selected int
	input    textinput.Model

	feedback *feedback
	errMsg   string
	warnMsg  string
}

func newPracticeState(standard string, mode question.Mode) practiceState {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	in := textinput.New()
	in.Placeholder = "Your answer..."
	in.CharLimit = 120

	return practiceState{
		standard: standard,
		mode:     mode,
		spin:     sp,
		input:    in,
	}
}

// startPractice switches to the practice screen and kicks off
// generation. The screen stays in the loading state, with input
// disabled, until the result message arrives.
func (m Model) startPractice(standard string, mode question.Mode) (tea.Model, tea.Cmd) {
	m.screen = screenPractice
	m.practice = newPracticeState(standard, mode)
	m.practice.loading = true
	return m, tea.Batch(m.generateCmd(standard, mode), m.practice.spin.Tick)
}

// generateCmd runs the generation pipeline off the UI goroutine. For
// multiple choice the option set is produced in the same command, so
// the question arrives ready to display.
func (m Model) generateCmd(standard string, mode question.Mode) tea.Cmd {
	gen := m.deps.Generator
	dis := m.deps.Distractors
	history := m.sess.History()

	return func() tea.Msg {
		ctx := context.Background()
		q, qt, err := gen.Generate(ctx, standard, history, mode)
		if err != nil {
			return questionReadyMsg{Standard: standard, Err: err}
		}
		var options []string
		if qt == question.TypeMultipleChoice {
			options = dis.Options(ctx, q)
		}
		return questionReadyMsg{Standard: standard, Question: q, Type: qt, Options: options}
	}
}

func (m Model) recordCmd(userAnswer string, isCorrect bool) tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		return resultRecordedMsg{Err: sess.Record(context.Background(), userAnswer, isCorrect)}
	}
}

func (m Model) updatePractice(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.practice.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.practice.spin, cmd = m.practice.spin.Update(msg)
		return m, cmd

	case questionReadyMsg:
		return m.handleQuestionReady(msg)

	case resultRecordedMsg:
		if msg.Err != nil {
			m.practice.warnMsg = "Could not save this result; your session continues"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handlePracticeKey(msg)
	}

	if m.canTypeAnswer() {
		var cmd tea.Cmd
		m.practice.input, cmd = m.practice.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleQuestionReady(msg questionReadyMsg) (tea.Model, tea.Cmd) {
	m.practice.loading = false

	if msg.Err != nil {
		m.practice.errMsg = "Failed to generate a properly formatted question. Please try again."
		return m, nil
	}

	m.sess.SetCurrent(msg.Standard, msg.Question, msg.Type)
	m.practice.current = msg.Question
	m.practice.qType = msg.Type
	m.practice.selected = 0
	m.practice.feedback = nil
	m.practice.errMsg = ""
	m.practice.warnMsg = ""
	m.practice.input.SetValue("")

	if msg.Type == question.TypeMultipleChoice {
		m.practice.options = m.sess.Options(func(q *question.Question) *question.OptionSet {
			return question.NewOptionSet(q, msg.Options)
		})
		return m, nil
	}
	m.practice.options = nil
	return m, m.practice.input.Focus()
}

func (m Model) handlePracticeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := key.String()

	if s == "esc" {
		return m.enterDashboard()
	}

	// Generate is disabled while a call is in flight.
	if m.practice.loading {
		return m, nil
	}

	if s == "ctrl+g" || (m.practice.errMsg != "" && s == "enter") {
		m.practice.loading = true
		m.practice.errMsg = ""
		return m, tea.Batch(m.generateCmd(m.practice.standard, m.practice.mode), m.practice.spin.Tick)
	}

	if m.practice.feedback != nil {
		if s == "enter" || s == "n" {
			m.practice.loading = true
			return m, tea.Batch(m.generateCmd(m.practice.standard, m.practice.mode), m.practice.spin.Tick)
		}
		return m, nil
	}

	if m.practice.current == nil {
		return m, nil
	}

	if m.practice.qType == question.TypeMultipleChoice {
		return m.handleChoiceKey(s)
	}
	return m.handleResponseKey(key)
}

func (m Model) handleChoiceKey(s string) (tea.Model, tea.Cmd) {
	labels := m.practice.options.Labels()

	switch s {
	case "up", "k":
		if m.practice.selected > 0 {
			m.practice.selected--
		}
	case "down", "j":
		if m.practice.selected < len(labels)-1 {
			m.practice.selected++
		}
	case "a", "b", "c", "d":
		idx := int(strings.ToUpper(s)[0] - 'A')
		if idx < len(labels) {
			m.practice.selected = idx
		}
	case "enter":
		picked := labels[m.practice.selected]
		isCorrect := m.practice.options.IsCorrect(picked)
		correctLabel := m.practice.options.CorrectLabel()

		m.practice.feedback = &feedback{
			correct:       isCorrect,
			correctAnswer: fmt.Sprintf("%s) %s", correctLabel, m.practice.options.Value(correctLabel)),
			explanation:   m.practice.current.Explanation,
		}
		return m, m.recordCmd(m.practice.options.Value(picked), isCorrect)
	}
	return m, nil
}

func (m Model) handleResponseKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "enter" {
		answer := strings.TrimSpace(m.practice.input.Value())
		if answer == "" {
			return m, nil
		}
		q := m.practice.current
		isCorrect := question.Validate(answer, q.CorrectAnswer, q.AnswerType)

		m.practice.feedback = &feedback{
			correct:       isCorrect,
			correctAnswer: q.CorrectAnswer,
			explanation:   q.Explanation,
		}
		return m, m.recordCmd(answer, isCorrect)
	}

	var cmd tea.Cmd
	m.practice.input, cmd = m.practice.input.Update(key)
	return m, cmd
}

func (m Model) canTypeAnswer() bool {
	return !m.practice.loading &&
		m.practice.feedback == nil &&
		m.practice.current != nil &&
		m.practice.qType == question.TypeFreeResponse
}

func (m Model) viewPractice() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📘 Practice Question"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Standard %s · %s", m.practice.standard, m.practice.mode)))
	b.WriteString("\n\n")

	switch {
	case m.practice.loading:
		b.WriteString(m.practice.spin.View() + bodyStyle.Render(" Generating question..."))
		b.WriteString("\n")

	case m.practice.errMsg != "":
		b.WriteString(errorStyle.Render("⚠️  " + m.practice.errMsg))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("Enter: try again · Esc: back to dashboard"))

	case m.practice.current != nil:
		m.renderQuestion(&b)

	default:
		b.WriteString(hintStyle.Render("Esc: back to dashboard"))
	}

	return cardStyle.Render(b.String())
}

func (m Model) renderQuestion(b *strings.Builder) {
	q := m.practice.current

	b.WriteString(bodyStyle.Render(q.Text))
	b.WriteString("\n")

	if len(q.Table) > 0 {
		b.WriteString("\n")
		b.WriteString(renderTable(q.Table))
		b.WriteString("\n")
	}
	if q.Graph != nil {
		b.WriteString("\n")
		b.WriteString(renderGraph(q.Graph))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.practice.qType == question.TypeMultipleChoice {
		labels := m.practice.options.Labels()
		for i, label := range labels {
			line := fmt.Sprintf("%s) %s", label, m.practice.options.Value(label))
			if i == m.practice.selected && m.practice.feedback == nil {
				b.WriteString(selectedStyle.Render("▸ " + line))
			} else {
				b.WriteString(bodyStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	} else if m.practice.feedback == nil {
		b.WriteString("Your answer: " + m.practice.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if fb := m.practice.feedback; fb != nil {
		if fb.correct {
			b.WriteString(successStyle.Render("🎉 Correct!"))
		} else {
			b.WriteString(errorStyle.Render("❌ Incorrect. Correct answer: " + fb.correctAnswer))
		}
		b.WriteString("\n")
		b.WriteString(bodyStyle.Render("🧠 Explanation: " + fb.explanation))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("Enter: next question · Esc: back to dashboard"))
	} else if m.practice.qType == question.TypeMultipleChoice {
		b.WriteString(hintStyle.Render("↑↓ or A-D: choose · Enter: submit · Ctrl+G: new question · Esc: back"))
	} else {
		b.WriteString(hintStyle.Render("Enter: check answer · Ctrl+G: new question · Esc: back"))
	}

	if m.practice.warnMsg != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("⚠ " + m.practice.warnMsg))
	}
}
