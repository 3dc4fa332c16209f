// Package tui is the terminal front end: login, the performance
// dashboard, the practice loop, and the admin screen.
package tui

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/mlevine/mathdash/internal/question"
	"github.com/mlevine/mathdash/internal/roster"
	"github.com/mlevine/mathdash/internal/session"
	"github.com/mlevine/mathdash/internal/store"
)

type screenID int

const (
	screenLogin screenID = iota
	screenDashboard
	screenPractice
	screenAdmin
)

// Deps carries the collaborators the UI needs. All fields are required
// except AdminPassword; when it is empty the admin screen is disabled.
type Deps struct {
	Roster        *roster.Roster
	Store         *store.Store
	Generator     *question.Generator
	Distractors   *question.Distractors
	AdminPassword string
	WeakThreshold float64
}

// Model is the root Bubble Tea model. Screen state lives in the
// per-screen sub-structs; the session is created at login.
type Model struct {
	deps   Deps
	screen screenID
	width  int
	height int

	sess *session.Session

	login    loginState
	dash     dashState
	practice practiceState
	admin    adminState
}

// NewModel creates the root model starting at the login screen. A
// non-empty student name skips login and binds the session directly,
// which keeps local development usable without provisioning accounts.
func NewModel(deps Deps, student string) Model {
	m := Model{
		deps:  deps,
		login: newLoginState(),
		admin: newAdminState(),
	}
	if student != "" {
		m.sess = session.New(student, student, deps.Store)
		m.screen = screenDashboard
		m.dash = newDashState(deps, student)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenLogin {
		return m.login.username.Focus()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenPractice:
		return m.updatePractice(msg)
	case screenAdmin:
		return m.updateAdmin(msg)
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch m.screen {
	case screenLogin:
		content = m.viewLogin()
	case screenDashboard:
		content = m.viewDashboard()
	case screenPractice:
		content = m.viewPractice()
	case screenAdmin:
		content = m.viewAdmin()
	}

	v.SetContent(content)
	return v
}

// enterDashboard switches to the dashboard, rebuilding its state for
// the session's student.
func (m Model) enterDashboard() (tea.Model, tea.Cmd) {
	m.screen = screenDashboard
	m.dash = newDashState(m.deps, m.sess.Student)
	return m, nil
}

// Run starts the program.
func Run(deps Deps, student string) error {
	p := tea.NewProgram(NewModel(deps, student))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
