package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/consignment"
)

type consignmentsState int

const (
	consignmentsStateBrowse consignmentsState = iota
	consignmentsStateAdd
	consignmentsStateReturned
)

// statusCycle is the order the s key walks through.
var statusCycle = []consignment.Status{
	consignment.StatusPending,
	consignment.StatusInProgress,
	consignment.StatusCompleted,
}

type ConsignmentsModel struct {
	CommonModel
	consignmentService *consignment.Service
	catalogService     *catalog.Service

	state   consignmentsState
	table   table.Model
	batches []*consignment.Batch
	form    *huh.Form

	partnerNames map[uuid.UUID]string
	productNames map[uuid.UUID]string
	partners     []*catalog.Partner
	products     []*catalog.Product

	// Partner filter cycling; 0 is "all partners".
	partnerFilterIdx int
	// Date filter cycling; 0 is all dates, 1 is today only.
	dateFilterIdx int

	loading bool
	err     error
	status  string
}

func NewConsignmentsModel(consignmentSvc *consignment.Service, catalogSvc *catalog.Service) ConsignmentsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Partner", Width: 20},
		{Title: "Product", Width: 22},
		{Title: "Sent", Width: 6},
		{Title: "Sold", Width: 6},
		{Title: "Retur", Width: 6},
		{Title: "Status", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return ConsignmentsModel{
		consignmentService: consignmentSvc,
		catalogService:     catalogSvc,
		table:              t,
	}
}

func (m ConsignmentsModel) Title() string { return "Consignments" }
func (m ConsignmentsModel) ShortHelp() string {
	if m.state != consignmentsStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | t: returned | s: status | p: partner filter | d: date filter | x: delete | r: refresh"
}

func (m ConsignmentsModel) Init() tea.Cmd {
	return m.loadBatchesCmd()
}

func (m ConsignmentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBatchesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.batches = msg.batches
		m.partners = msg.partners
		m.products = msg.products
		m.partnerNames = make(map[uuid.UUID]string, len(msg.partners))
		for _, p := range msg.partners {
			m.partnerNames[p.ID] = p.Name
		}
		m.productNames = make(map[uuid.UUID]string, len(msg.products))
		for _, p := range msg.products {
			m.productNames[p.ID] = p.Name
		}
		m.refreshTable()
		return m, nil

	case batchSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = consignmentsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadBatchesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == consignmentsStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m ConsignmentsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadBatchesCmd()
		case "a":
			return m.enterAddMode()
		case "t":
			return m.enterReturnedMode()
		case "s":
			return m, m.cycleStatusCmd()
		case "p":
			m.partnerFilterIdx = (m.partnerFilterIdx + 1) % (len(m.partners) + 1)
			return m, m.loadBatchesCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 2
			return m, m.loadBatchesCmd()
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ConsignmentsModel) enterAddMode() (tea.Model, tea.Cmd) {
	if len(m.partners) == 0 || len(m.products) == 0 {
		m.status = "Add a partner and a product first"
		return m, nil
	}

	partnerOpts := make([]huh.Option[string], 0, len(m.partners))
	for _, p := range m.partners {
		partnerOpts = append(partnerOpts, huh.NewOption(p.Name, p.ID.String()))
	}

	productOpts := make([]huh.Option[string], 0, len(m.products))
	for _, p := range m.products {
		productOpts = append(productOpts, huh.NewOption(p.Name, p.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("partner").
				Title("Partner").
				Options(partnerOpts...),

			huh.NewSelect[string]().
				Key("product").
				Title("Product").
				Options(productOpts...),

			huh.NewInput().
				Key("sent").
				Title("Sent (pcs)").
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("sent must be a number")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = consignmentsStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m ConsignmentsModel) enterReturnedMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.batches) {
		return m, nil
	}

	b := m.batches[idx]

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("returned").
				Title(fmt.Sprintf("Returned (0-%d)", b.Sent)).
				Placeholder("0"),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = consignmentsStateReturned
	m.table.Blur()
	return m, m.form.Init()
}

func (m ConsignmentsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = consignmentsStateBrowse
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

	if m.state == consignmentsStateReturned {
		return m, m.setReturnedCmd(m.form.GetString("returned"))
	}

	return m, m.addCmd(
		m.form.GetString("partner"),
		m.form.GetString("product"),
		m.form.GetString("sent"),
	)
}

func (m ConsignmentsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading consignments...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	dateLabels := []string{"All", "Today"}

	header := fmt.Sprintf(
		"Filter: [p] Partner: %s | [d] Date: %s",
		activeStyle(m.partnerFilterLabel()),
		activeStyle(dateLabels[m.dateFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state != consignmentsStateBrowse && m.form != nil {
		title := "New Consignment"
		if m.state == consignmentsStateReturned {
			title = "Record Returns"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m ConsignmentsModel) partnerFilterLabel() string {
	if m.partnerFilterIdx == 0 || m.partnerFilterIdx > len(m.partners) {
		return "All"
	}

	return m.partners[m.partnerFilterIdx-1].Name
}

func (m ConsignmentsModel) currentFilter() consignment.ListFilter {
	filter := consignment.ListFilter{}
	if m.partnerFilterIdx > 0 && m.partnerFilterIdx <= len(m.partners) {
		id := m.partners[m.partnerFilterIdx-1].ID
		filter.PartnerID = &id
	}

	if m.dateFilterIdx == 1 {
		today := consignment.Today(time.Now())
		filter.Date = &today
	}

	return filter
}

func (m *ConsignmentsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.batches))
	for _, b := range m.batches {
		rows = append(rows, table.Row{
			FormatDate(b.Date),
			m.lookupName(m.partnerNames, b.PartnerID),
			m.lookupName(m.productNames, b.ProductID),
			strconv.Itoa(b.Sent),
			strconv.Itoa(b.Sold),
			strconv.Itoa(b.Returned),
			string(b.Status),
		})
	}
	m.table.SetRows(rows)
}

func (m ConsignmentsModel) lookupName(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}

	return "Unknown"
}

// Messages

type loadBatchesMsg struct {
	batches  []*consignment.Batch
	partners []*catalog.Partner
	products []*catalog.Product
	err      error
}

func (m ConsignmentsModel) loadBatchesCmd() tea.Cmd {
	filter := m.currentFilter()

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		batches, err := m.consignmentService.List(ctx, filter)
		if err != nil {
			return loadBatchesMsg{err: err}
		}

		partners, err := m.catalogService.ListPartners(ctx)
		if err != nil {
			return loadBatchesMsg{err: err}
		}

		products, err := m.catalogService.ListProducts(ctx)
		if err != nil {
			return loadBatchesMsg{err: err}
		}

		return loadBatchesMsg{batches: batches, partners: partners, products: products}
	}
}

type batchSavedMsg struct {
	err error
}

func (m ConsignmentsModel) addCmd(partnerID, productID, sent string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		pid, err := uuid.Parse(partnerID)
		if err != nil {
			return batchSavedMsg{err: err}
		}

		prodID, err := uuid.Parse(productID)
		if err != nil {
			return batchSavedMsg{err: err}
		}

		qty, _ := strconv.Atoi(strings.TrimSpace(sent))

		_, err = m.consignmentService.Create(ctx, consignment.CreateParams{
			PartnerID: pid,
			ProductID: prodID,
			Sent:      qty,
		})
		return batchSavedMsg{err: err}
	}
}

func (m ConsignmentsModel) setReturnedCmd(raw string) tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.batches) {
		return nil
	}

	id := m.batches[idx].ID

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		_, err := m.consignmentService.SetReturned(ctx, id, raw)
		return batchSavedMsg{err: err}
	}
}

func (m ConsignmentsModel) cycleStatusCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.batches) {
		return nil
	}

	b := m.batches[idx]

	next := statusCycle[0]
	for i, s := range statusCycle {
		if s == b.Status {
			next = statusCycle[(i+1)%len(statusCycle)]
			break
		}
	}

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		return batchSavedMsg{err: m.consignmentService.SetStatus(ctx, b.ID, next)}
	}
}

func (m ConsignmentsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.batches) {
		return nil
	}

	id := m.batches[idx].ID

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		return batchSavedMsg{err: m.consignmentService.Delete(ctx, id)}
	}
}
