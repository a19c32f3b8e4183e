package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/bundakue/titipan/internal/catalog"
)

type partnersState int

const (
	partnersStateBrowse partnersState = iota
	partnersStateAdd
)

type PartnersModel struct {
	CommonModel
	catalogService *catalog.Service

	state    partnersState
	table    table.Model
	partners []*catalog.Partner
	form     *huh.Form

	loading bool
	err     error
	status  string
}

func NewPartnersModel(svc *catalog.Service) PartnersModel {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Address", Width: 35},
		{Title: "Contact", Width: 15},
		{Title: "Since", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return PartnersModel{
		catalogService: svc,
		table:          t,
	}
}

func (m PartnersModel) Title() string { return "Partners" }
func (m PartnersModel) ShortHelp() string {
	if m.state == partnersStateAdd {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | x: delete | r: refresh"
}

func (m PartnersModel) Init() tea.Cmd {
	return m.loadPartnersCmd()
}

func (m PartnersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPartnersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.partners = msg.partners
		m.refreshTable()
		return m, nil

	case partnerSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = partnersStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadPartnersCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case partnersStateBrowse:
		return m.updateBrowse(msg)
	case partnersStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m PartnersModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadPartnersCmd()
		case "a":
			return m.enterAddMode()
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m PartnersModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("address").
				Title("Address").
				Placeholder("Jl. ..."),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = partnersStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m PartnersModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = partnersStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd(m.form.GetString("name"), m.form.GetString("address"))
}

func (m PartnersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading partners...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == partnersStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("New Partner\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *PartnersModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.partners))
	for _, p := range m.partners {
		rows = append(rows, table.Row{
			p.Name,
			p.Address,
			p.Contact,
			FormatDate(p.CreatedAt),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadPartnersMsg struct {
	partners []*catalog.Partner
	err      error
}

func (m PartnersModel) loadPartnersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		partners, err := m.catalogService.ListPartners(ctx)
		return loadPartnersMsg{partners: partners, err: err}
	}
}

type partnerSavedMsg struct {
	err error
}

func (m PartnersModel) saveCmd(name, address string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		_, err := m.catalogService.AddPartner(ctx, catalog.PartnerParams{
			Name:    name,
			Address: address,
		})
		return partnerSavedMsg{err: err}
	}
}

func (m PartnersModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.partners) {
		return nil
	}

	id := m.partners[idx].ID

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		return partnerSavedMsg{err: m.catalogService.DeletePartner(ctx, id)}
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return s
}
