package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/mlevine/mathdash/internal/provision"
)

type adminForm int

const (
	adminFormNone adminForm = iota
	adminFormCreate
	adminFormReset
)

type adminState struct {
	authed bool
	pwd    textinput.Model

	menu int
	form adminForm

	username    textinput.Model
	password    textinput.Model
	studentName textinput.Model
	focus       int

	status   string
	statusOK bool

	provisioned []provision.Result
}

var adminMenuItems = []string{
	"Create student account",
	"Reset a password",
	"Provision all roster students",
	"Back to login",
}

func newAdminState() adminState {
	pwd := textinput.New()
	pwd.Placeholder = "admin password"
	pwd.EchoMode = textinput.EchoPassword
	pwd.CharLimit = 60

	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 40

	newPwd := textinput.New()
	newPwd.Placeholder = "password (blank = generate)"
	newPwd.CharLimit = 40

	student := textinput.New()
	student.Placeholder = "student name (as on roster)"
	student.CharLimit = 60

	return adminState{pwd: pwd, username: user, password: newPwd, studentName: student}
}

func (a adminState) focusCmd() tea.Cmd {
	return a.pwd.Focus()
}

func (m Model) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adminActionMsg:
		m.admin.status = msg.Message
		m.admin.statusOK = msg.OK
		return m, nil

	case provisionDoneMsg:
		if msg.Err != nil {
			m.admin.status = fmt.Sprintf("Provisioning failed: %v", msg.Err)
			m.admin.statusOK = false
		} else {
			m.admin.provisioned = msg.Created
			m.admin.status = fmt.Sprintf("Provisioned %d accounts", countCreated(msg.Created))
			m.admin.statusOK = true
		}
		return m, nil

	case tea.KeyMsg:
		if !m.admin.authed {
			return m.updateAdminGate(msg)
		}
		if m.admin.form != adminFormNone {
			return m.updateAdminForm(msg)
		}
		return m.updateAdminMenu(msg)
	}

	return m.forwardAdminInput(msg)
}

func (m Model) updateAdminGate(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenLogin
		m.login = newLoginState()
		return m, m.login.username.Focus()
	case "enter":
		if m.admin.pwd.Value() == m.deps.AdminPassword {
			m.admin.authed = true
			m.admin.status = ""
			return m, nil
		}
		m.admin.status = "Invalid admin password"
		m.admin.statusOK = false
		m.admin.pwd.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.admin.pwd, cmd = m.admin.pwd.Update(key)
	return m, cmd
}

func (m Model) updateAdminMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.admin.menu > 0 {
			m.admin.menu--
		}
	case "down", "j":
		if m.admin.menu < len(adminMenuItems)-1 {
			m.admin.menu++
		}
	case "esc":
		m.screen = screenLogin
		m.login = newLoginState()
		return m, m.login.username.Focus()
	case "enter":
		switch m.admin.menu {
		case 0:
			m.admin.form = adminFormCreate
			m.admin.focus = 0
			m.admin.status = ""
			return m, m.admin.username.Focus()
		case 1:
			m.admin.form = adminFormReset
			m.admin.focus = 0
			m.admin.status = ""
			return m, m.admin.username.Focus()
		case 2:
			m.admin.status = "Provisioning..."
			m.admin.statusOK = true
			return m, m.provisionCmd()
		case 3:
			m.screen = screenLogin
			m.login = newLoginState()
			return m, m.login.username.Focus()
		}
	}
	return m, nil
}

func (m Model) updateAdminForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.admin.form = adminFormNone
		m.resetAdminForm()
		return m, nil

	case "tab", "shift+tab", "down", "up":
		fields := m.adminFormFields()
		next := m.admin.focus + 1
		if key.String() == "shift+tab" || key.String() == "up" {
			next = m.admin.focus - 1
		}
		if next < 0 {
			next = len(fields) - 1
		}
		m.admin.focus = next % len(fields)
		for i, f := range fields {
			if i == m.admin.focus {
				continue
			}
			f.Blur()
		}
		return m, fields[m.admin.focus].Focus()

	case "enter":
		return m.submitAdminForm()
	}

	return m.forwardAdminInput(key)
}

func (m Model) forwardAdminInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if !m.admin.authed {
		m.admin.pwd, cmd = m.admin.pwd.Update(msg)
		return m, cmd
	}
	switch m.admin.focus {
	case 0:
		m.admin.username, cmd = m.admin.username.Update(msg)
	case 1:
		m.admin.password, cmd = m.admin.password.Update(msg)
	case 2:
		m.admin.studentName, cmd = m.admin.studentName.Update(msg)
	}
	return m, cmd
}

// adminFormFields returns the active form's inputs in tab order.
func (m *Model) adminFormFields() []*textinput.Model {
	if m.admin.form == adminFormCreate {
		return []*textinput.Model{&m.admin.username, &m.admin.password, &m.admin.studentName}
	}
	return []*textinput.Model{&m.admin.username, &m.admin.password}
}

func (m *Model) resetAdminForm() {
	m.admin.username.SetValue("")
	m.admin.password.SetValue("")
	m.admin.studentName.SetValue("")
	m.admin.focus = 0
}

func (m Model) submitAdminForm() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(m.admin.username.Value())
	password := m.admin.password.Value()
	student := strings.TrimSpace(m.admin.studentName.Value())

	if username == "" {
		m.admin.status = "Username is required"
		m.admin.statusOK = false
		return m, nil
	}
	if password == "" {
		password = provision.GeneratePassword()
	}

	form := m.admin.form
	st := m.deps.Store
	m.admin.form = adminFormNone
	m.resetAdminForm()

	return m, func() tea.Msg {
		ctx := context.Background()
		if form == adminFormCreate {
			ok, message := st.CreateUser(ctx, username, password, student)
			if ok {
				message = fmt.Sprintf("Account created — username: %s, password: %s", username, password)
			}
			return adminActionMsg{OK: ok, Message: message}
		}
		ok, message := st.ResetPassword(ctx, username, password)
		if ok {
			message = fmt.Sprintf("Password reset — new password: %s", password)
		}
		return adminActionMsg{OK: ok, Message: message}
	}
}

func (m Model) provisionCmd() tea.Cmd {
	st := m.deps.Store
	r := m.deps.Roster
	return func() tea.Msg {
		results, err := provision.All(context.Background(), st, r)
		return provisionDoneMsg{Created: results, Err: err}
	}
}

func countCreated(results []provision.Result) int {
	n := 0
	for _, r := range results {
		if r.Created {
			n++
		}
	}
	return n
}

func (m Model) viewAdmin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🔑 Teacher Admin Panel"))
	b.WriteString("\n\n")

	if !m.admin.authed {
		b.WriteString("Admin password: " + m.admin.pwd.View())
		b.WriteString("\n\n")
		if m.admin.status != "" {
			b.WriteString(errorStyle.Render(m.admin.status))
			b.WriteString("\n\n")
		}
		b.WriteString(hintStyle.Render("Enter: unlock · Esc: back to login"))
		return cardStyle.Render(b.String())
	}

	if m.admin.form != adminFormNone {
		m.renderAdminForm(&b)
		return cardStyle.Render(b.String())
	}

	for i, item := range adminMenuItems {
		if i == m.admin.menu {
			b.WriteString(selectedStyle.Render("▸ " + item))
		} else {
			b.WriteString(bodyStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.admin.status != "" {
		if m.admin.statusOK {
			b.WriteString(successStyle.Render(m.admin.status))
		} else {
			b.WriteString(errorStyle.Render(m.admin.status))
		}
		b.WriteString("\n")
	}

	if len(m.admin.provisioned) > 0 {
		b.WriteString("\n")
		b.WriteString(tableHeaderStyle.Render("Student / Username / Password"))
		b.WriteString("\n")
		for _, r := range m.admin.provisioned {
			line := fmt.Sprintf("%s / %s / %s", r.Student, r.Username, r.Password)
			if !r.Created {
				line = fmt.Sprintf("%s / %s / failed: %s", r.Student, r.Username, r.Message)
			}
			b.WriteString(bodyStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("↑↓: navigate · Enter: select · Esc: back to login"))
	return cardStyle.Render(b.String())
}

func (m Model) renderAdminForm(b *strings.Builder) {
	if m.admin.form == adminFormCreate {
		b.WriteString(subtitleStyle.Render("Create student account"))
		b.WriteString("\n\n")
		b.WriteString("Username:     " + m.admin.username.View() + "\n")
		b.WriteString("Password:     " + m.admin.password.View() + "\n")
		b.WriteString("Student name: " + m.admin.studentName.View() + "\n")
	} else {
		b.WriteString(subtitleStyle.Render("Reset a password"))
		b.WriteString("\n\n")
		b.WriteString("Username:     " + m.admin.username.View() + "\n")
		b.WriteString("New password: " + m.admin.password.View() + "\n")
	}
	b.WriteString("\n")
	if m.admin.status != "" {
		b.WriteString(errorStyle.Render(m.admin.status))
		b.WriteString("\n\n")
	}
	b.WriteString(hintStyle.Render("Tab: next field · Enter: submit · Esc: cancel"))
}
