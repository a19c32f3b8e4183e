package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/bundakue/titipan/internal/catalog"
)

type productsState int

const (
	productsStateBrowse productsState = iota
	productsStateAdd
	productsStateEdit
)

type ProductsModel struct {
	CommonModel
	catalogService *catalog.Service

	state    productsState
	table    table.Model
	products []*catalog.Product
	form     *huh.Form

	loading bool
	err     error
	status  string
}

func NewProductsModel(svc *catalog.Service) ProductsModel {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Price", Width: 12},
		{Title: "Category", Width: 15},
		{Title: "Since", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return ProductsModel{
		catalogService: svc,
		table:          t,
	}
}

func (m ProductsModel) Title() string { return "Products" }
func (m ProductsModel) ShortHelp() string {
	if m.state != productsStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | e: edit | x: delete | r: refresh"
}

func (m ProductsModel) Init() tea.Cmd {
	return m.loadProductsCmd()
}

func (m ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadProductsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.products = msg.products
		m.refreshTable()
		return m, nil

	case productSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = productsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadProductsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == productsStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m ProductsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadProductsCmd()
		case "a":
			return m.enterFormMode(productsStateAdd, "", "", "")
		case "e":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.products) {
				return m, nil
			}

			p := m.products[idx]
			return m.enterFormMode(productsStateEdit, p.Name, strconv.FormatInt(p.Price, 10), p.Category)
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ProductsModel) enterFormMode(state productsState, name, price, category string) (tea.Model, tea.Cmd) {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Value(&name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name cannot be empty")
				}
				return nil
			}),

		huh.NewInput().
			Key("price").
			Title("Price (Rp)").
			Value(&price).
			Validate(func(s string) error {
				if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
					return fmt.Errorf("price must be a number")
				}
				return nil
			}),
	}

	if state == productsStateAdd {
		fields = append(fields, huh.NewInput().
			Key("category").
			Title("Category").
			Placeholder(catalog.DefaultCategory).
			Value(&category))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...)).WithWidth(45).WithShowHelp(false)
	m.state = state
	m.table.Blur()
	return m, m.form.Init()
}

func (m ProductsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = productsStateBrowse
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

	name := m.form.GetString("name")
	price, _ := strconv.ParseInt(strings.TrimSpace(m.form.GetString("price")), 10, 64)

	if m.state == productsStateEdit {
		return m, m.editCmd(name, price)
	}

	return m, m.addCmd(name, price, m.form.GetString("category"))
}

func (m ProductsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading products...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state != productsStateBrowse && m.form != nil {
		title := "New Product"
		if m.state == productsStateEdit {
			title = "Edit Product"
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

func (m *ProductsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.products))
	for _, p := range m.products {
		rows = append(rows, table.Row{
			p.Name,
			FormatRupiah(p.Price),
			p.Category,
			FormatDate(p.CreatedAt),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadProductsMsg struct {
	products []*catalog.Product
	err      error
}

func (m ProductsModel) loadProductsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		products, err := m.catalogService.ListProducts(ctx)
		return loadProductsMsg{products: products, err: err}
	}
}

type productSavedMsg struct {
	err error
}

func (m ProductsModel) addCmd(name string, price int64, category string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		_, err := m.catalogService.AddProduct(ctx, catalog.ProductParams{
			Name:     name,
			Price:    price,
			Category: category,
		})
		return productSavedMsg{err: err}
	}
}

func (m ProductsModel) editCmd(name string, price int64) tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.products) {
		return nil
	}

	id := m.products[idx].ID

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		_, err := m.catalogService.EditProduct(ctx, id, name, price)
		return productSavedMsg{err: err}
	}
}

func (m ProductsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.products) {
		return nil
	}

	id := m.products[idx].ID

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		return productSavedMsg{err: m.catalogService.DeleteProduct(ctx, id)}
	}
}
