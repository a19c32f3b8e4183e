package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/bundakue/titipan/cmd/tui/internal/view"
	"github.com/bundakue/titipan/internal/auth"
	"github.com/bundakue/titipan/internal/catalog"
	"github.com/bundakue/titipan/internal/config"
	"github.com/bundakue/titipan/internal/consignment"
	"github.com/bundakue/titipan/internal/export"
	"github.com/bundakue/titipan/internal/report"
	"github.com/bundakue/titipan/internal/seed"
	"github.com/bundakue/titipan/internal/store/memory"
)

type model struct {
	catalogService     *catalog.Service
	consignmentService *consignment.Service
	reportService      *report.Service
	exportService      *export.Service

	currentView View
	overview    *report.Overview

	loginView        view.LoginModel
	partnersView     view.PartnersModel
	productsView     view.ProductsModel
	consignmentsView view.ConsignmentsModel
	reportsView      view.ReportsModel
	exportView       view.ExportModel
}

type View int

const (
	ViewLogin        View = 0
	ViewMenu         View = 1
	ViewPartners     View = 2
	ViewProducts     View = 3
	ViewConsignments View = 4
	ViewReports      View = 5
	ViewExport       View = 6
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store := memory.New()

	authSvc := auth.NewService(cfg.Session.Username, cfg.Session.Password, cfg.Session.Secret, cfg.Session.TTL)
	catalogSvc := catalog.NewService(store)
	consignmentSvc := consignment.NewService(store)
	reportSvc := report.NewService(store, store)
	exportSvc := export.NewService(reportSvc)

	if cfg.Seed.DemoData {
		if err := seed.Load(context.Background(), catalogSvc, consignmentSvc); err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	return model{
		catalogService:     catalogSvc,
		consignmentService: consignmentSvc,
		reportService:      reportSvc,
		exportService:      exportSvc,
		currentView:        ViewLogin,
		loginView:          view.NewLoginModel(authSvc),
		partnersView:       view.NewPartnersModel(catalogSvc),
		productsView:       view.NewProductsModel(catalogSvc),
		consignmentsView:   view.NewConsignmentsModel(consignmentSvc, catalogSvc),
		reportsView:        view.NewReportsModel(reportSvc, catalogSvc),
		exportView:         view.NewExportModel(exportSvc),
	}
}

type overviewMsg struct {
	overview *report.Overview
}

func (m model) loadOverviewCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.OpCtx()
		defer cancel()

		ov, err := m.reportService.Overview(ctx)
		if err != nil {
			return overviewMsg{}
		}

		return overviewMsg{overview: ov}
	}
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case view.LoggedInMsg:
		m.currentView = ViewMenu
		return m, m.loadOverviewCmd()

	case overviewMsg:
		if msg.overview != nil {
			m.overview = msg.overview
		}
		return m, nil

	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewPartners
				m.partnersView = view.NewPartnersModel(m.catalogService)

				return m, m.partnersView.Init()
			case "2":
				m.currentView = ViewProducts
				m.productsView = view.NewProductsModel(m.catalogService)

				return m, m.productsView.Init()
			case "3":
				m.currentView = ViewConsignments
				m.consignmentsView = view.NewConsignmentsModel(m.consignmentService, m.catalogService)

				return m, m.consignmentsView.Init()
			case "4":
				m.currentView = ViewReports
				m.reportsView = view.NewReportsModel(m.reportService, m.catalogService)

				return m, m.reportsView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, m.loadOverviewCmd()
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewPartners:
		var newModel tea.Model
		newModel, cmd = m.partnersView.Update(msg)
		m.partnersView = newModel.(view.PartnersModel)
	case ViewProducts:
		var newModel tea.Model
		newModel, cmd = m.productsView.Update(msg)
		m.productsView = newModel.(view.ProductsModel)
	case ViewConsignments:
		var newModel tea.Model
		newModel, cmd = m.consignmentsView.Update(msg)
		m.consignmentsView = newModel.(view.ConsignmentsModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		return m.menuView()
	case ViewPartners:
		return m.partnersView.View()
	case ViewProducts:
		return m.productsView.View()
	case ViewConsignments:
		return m.consignmentsView.View()
	case ViewReports:
		return m.reportsView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func (m model) menuView() string {
	stats := ""
	if m.overview != nil {
		stats = fmt.Sprintf(
			"Partners: %d | Products: %d | Active: %d | Revenue: %s\n\n",
			m.overview.Partners,
			m.overview.Products,
			m.overview.ActiveBatches,
			view.FormatRupiah(m.overview.TotalRevenue),
		)
	}

	return lipgloss.NewStyle().Padding(2).Render(
		"Kue Bunda\n\n" +
			stats +
			"1. Partners\n" +
			"2. Products\n" +
			"3. Consignments\n" +
			"4. Sales Report\n" +
			"5. Export Report\n\n" +
			"q. Quit",
	)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
