package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/bundakue/titipan/internal/auth"
)

// LoggedInMsg is emitted once the operator credentials check out.
type LoggedInMsg struct{}

type LoginModel struct {
	CommonModel
	authService *auth.Service

	form     *huh.Form
	username string
	password string
	status   string
}

func NewLoginModel(svc *auth.Service) LoginModel {
	m := LoginModel{authService: svc}
	m.form = m.buildForm()

	return m
}

func (m LoginModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(&m.username),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.password),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m LoginModel) Title() string     { return "Login" }
func (m LoginModel) ShortHelp() string { return "Enter: submit | Ctrl+C: quit" }

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	username := m.form.GetString("username")
	password := m.form.GetString("password")

	if _, err := m.authService.Login(username, password); err != nil {
		m.status = "Wrong username or password"
		m.username = username
		m.password = ""
		m.form = m.buildForm()

		return m, m.form.Init()
	}

	return m, func() tea.Msg { return LoggedInMsg{} }
}

func (m LoginModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("Kue Bunda")

	content := fmt.Sprintf("%s\n\n%s", title, m.form.View())

	if m.status != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status)
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}
