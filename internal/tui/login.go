package tui

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/mlevine/mathdash/internal/session"
)

type loginState struct {
	username textinput.Model
	password textinput.Model
	focusPwd bool
	errMsg   string
}

func newLoginState() loginState {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 40

	pwd := textinput.New()
	pwd.Placeholder = "password"
	pwd.CharLimit = 40
	pwd.EchoMode = textinput.EchoPassword

	return loginState{username: user, password: pwd}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			m.login.focusPwd = !m.login.focusPwd
			if m.login.focusPwd {
				m.login.username.Blur()
				return m, m.login.password.Focus()
			}
			m.login.password.Blur()
			return m, m.login.username.Focus()

		case "ctrl+a":
			if m.deps.AdminPassword != "" {
				m.screen = screenAdmin
				m.admin = newAdminState()
				return m, m.admin.focusCmd()
			}
			m.login.errMsg = "Admin access is not configured"
			return m, nil

		case "enter":
			return m.submitLogin()
		}
	}

	var cmd tea.Cmd
	if m.login.focusPwd {
		m.login.password, cmd = m.login.password.Update(msg)
	} else {
		m.login.username, cmd = m.login.username.Update(msg)
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(m.login.username.Value())
	password := m.login.password.Value()
	if username == "" || password == "" {
		m.login.errMsg = "Enter a username and password"
		return m, nil
	}

	ok, student := m.deps.Store.Authenticate(context.Background(), username, password)
	if !ok {
		m.login.errMsg = "Invalid username or password"
		m.login.password.SetValue("")
		return m, nil
	}

	m.sess = session.New(username, student, m.deps.Store)
	return m.enterDashboard()
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📊 Math Practice Dashboard"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Sign in to see your standards"))
	b.WriteString("\n\n")
	b.WriteString("Username: " + m.login.username.View())
	b.WriteString("\n")
	b.WriteString("Password: " + m.login.password.View())
	b.WriteString("\n\n")
	if m.login.errMsg != "" {
		b.WriteString(errorStyle.Render(m.login.errMsg))
		b.WriteString("\n\n")
	}
	b.WriteString(hintStyle.Render("Tab: switch field · Enter: sign in · Ctrl+A: admin · Ctrl+C: quit"))
	return cardStyle.Render(b.String())
}
