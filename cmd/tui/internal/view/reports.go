package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/report"
)

var periodCycle = []report.Period{
	report.PeriodDaily,
	report.PeriodMonthly,
	report.PeriodYearly,
}

type ReportsModel struct {
	CommonModel
	reportService  *report.Service
	catalogService *catalog.Service

	table    table.Model
	rep      *report.Report
	partners []*catalog.Partner

	periodIdx int
	// Partner filter cycling; 0 is "all partners".
	partnerFilterIdx int

	loading bool
	err     error
}

func NewReportsModel(reportSvc *report.Service, catalogSvc *catalog.Service) ReportsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Partner", Width: 18},
		{Title: "Product", Width: 22},
		{Title: "Sent", Width: 6},
		{Title: "Sold", Width: 6},
		{Title: "Retur", Width: 6},
		{Title: "Price", Width: 11},
		{Title: "Total", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(tableStyles())

	return ReportsModel{
		reportService:  reportSvc,
		catalogService: catalogSvc,
		table:          t,
	}
}

func (m ReportsModel) Title() string { return "Sales Report" }
func (m ReportsModel) ShortHelp() string {
	return "Esc: back | w: period | p: partner filter | r: refresh"
}

func (m ReportsModel) Init() tea.Cmd {
	return m.loadReportCmd()
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReportMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rep = msg.rep
		m.partners = msg.partners
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadReportCmd()
		case "w":
			m.periodIdx = (m.periodIdx + 1) % len(periodCycle)
			return m, m.loadReportCmd()
		case "p":
			m.partnerFilterIdx = (m.partnerFilterIdx + 1) % (len(m.partners) + 1)
			return m, m.loadReportCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ReportsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Computing report...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf(
		"Filter: [w] Period: %s | [p] Partner: %s",
		activeStyle(string(periodCycle[m.periodIdx])),
		activeStyle(m.partnerFilterLabel()),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	totals := ""
	if m.rep != nil {
		totals = fmt.Sprintf(
			"Batches: %d | Sold: %d pcs | Returned: %d pcs | Revenue: %s",
			m.rep.Count,
			m.rep.TotalSold,
			m.rep.TotalReturned,
			FormatRupiah(m.rep.TotalRevenue),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Bold(true).PaddingTop(1).Render(totals),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ReportsModel) partnerFilterLabel() string {
	if m.partnerFilterIdx == 0 || m.partnerFilterIdx > len(m.partners) {
		return "All"
	}

	return m.partners[m.partnerFilterIdx-1].Name
}

func (m ReportsModel) currentFilter() report.Filter {
	filter := report.Filter{
		PartnerID: report.AllPartners,
		Period:    periodCycle[m.periodIdx],
	}
	if m.partnerFilterIdx > 0 && m.partnerFilterIdx <= len(m.partners) {
		filter.PartnerID = m.partners[m.partnerFilterIdx-1].ID.String()
	}

	return filter
}

func (m *ReportsModel) refreshTable() {
	if m.rep == nil {
		return
	}

	rows := make([]table.Row, 0, len(m.rep.Rows))
	for _, r := range m.rep.Rows {
		rows = append(rows, table.Row{
			FormatDate(r.Date),
			r.Partner,
			r.Product,
			fmt.Sprintf("%d", r.Sent),
			fmt.Sprintf("%d", r.Sold),
			fmt.Sprintf("%d", r.Returned),
			FormatRupiah(r.UnitPrice),
			FormatRupiah(r.Revenue),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadReportMsg struct {
	rep      *report.Report
	partners []*catalog.Partner
	err      error
}

func (m ReportsModel) loadReportCmd() tea.Cmd {
	filter := m.currentFilter()

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		rep, err := m.reportService.Compute(ctx, filter)
		if err != nil {
			return loadReportMsg{err: err}
		}

		partners, err := m.catalogService.ListPartners(ctx)
		if err != nil {
			return loadReportMsg{err: err}
		}

		return loadReportMsg{rep: rep, partners: partners}
	}
}
