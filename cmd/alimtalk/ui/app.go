package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"alimtalk/internal/ledger"
)

// Page identifies a sidebar destination.
type Page int

const (
	PageDashboard Page = iota
	PageCustomers
	PageDeduction
	PageHistory
	PageDrivers
	PageSettings

	pageCount
)

var navItems = []struct {
	page  Page
	label string
}{
	{PageDashboard, "📊 대시보드"},
	{PageCustomers, "👥 고객 관리"},
	{PageDeduction, "⏱️ 시간 차감"},
	{PageHistory, "📋 알림 내역"},
	{PageDrivers, "🔧 기사 관리"},
	{PageSettings, "⚙️ 설정"},
}

// statusMsg updates the status line at the bottom of the screen.
type statusMsg struct {
	text  string
	isErr bool
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: err.Error(), isErr: true} }
}

// App is the root model: sidebar, active page and status line.
type App struct {
	svc    *ledger.Service
	logger *zap.Logger
	styles Styles

	width  int
	height int
	page   Page

	dashboard DashboardModel
	customers CustomersModel
	deduction DeductionModel
	history   HistoryModel
	drivers   DriversModel
	settings  SettingsModel

	status statusMsg
}

// NewApp builds the root model over a loaded ledger service.
func NewApp(svc *ledger.Service, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := DefaultStyles()
	app := App{
		svc:       svc,
		logger:    logger,
		styles:    styles,
		page:      PageDashboard,
		dashboard: NewDashboardModel(svc, styles),
		customers: NewCustomersModel(svc, styles),
		deduction: NewDeductionModel(svc, styles),
		history:   NewHistoryModel(svc, styles),
		drivers:   NewDriversModel(svc, styles),
		settings:  NewSettingsModel(svc, styles),
	}
	app.dashboard.Refresh()
	return app
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.setPageSizes()
		return a, nil

	case statusMsg:
		a.status = msg
		return a, nil

	case tea.KeyMsg:
		// Global keys apply only while the active page is not capturing
		// text input.
		if !a.pageCapturing() {
			switch msg.String() {
			case "ctrl+c", "q":
				// Flush everything before leaving, like the desktop
				// edition did on window close.
				if err := a.svc.SaveAll(); err != nil {
					a.logger.Warn("final save failed", zap.Error(err))
				}
				return a, tea.Quit
			case "1", "2", "3", "4", "5", "6":
				a.navigate(Page(int(msg.String()[0] - '1')))
				return a, nil
			}
		} else if msg.String() == "ctrl+c" {
			if err := a.svc.SaveAll(); err != nil {
				a.logger.Warn("final save failed", zap.Error(err))
			}
			return a, tea.Quit
		}
	}

	return a.updatePage(msg)
}

func (a App) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.page {
	case PageDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case PageCustomers:
		a.customers, cmd = a.customers.Update(msg)
	case PageDeduction:
		a.deduction, cmd = a.deduction.Update(msg)
	case PageHistory:
		a.history, cmd = a.history.Update(msg)
	case PageDrivers:
		a.drivers, cmd = a.drivers.Update(msg)
	case PageSettings:
		a.settings, cmd = a.settings.Update(msg)
	}
	return a, cmd
}

// navigate switches pages, refreshing the destination from the ledger
// so derived displays always reflect the latest state.
func (a *App) navigate(p Page) {
	if p < 0 || p >= pageCount {
		return
	}
	a.page = p
	a.status = statusMsg{}
	switch p {
	case PageDashboard:
		a.dashboard.Refresh()
	case PageCustomers:
		a.customers.Refresh()
	case PageDeduction:
		a.deduction.Refresh()
	case PageHistory:
		a.history.Refresh()
	case PageDrivers:
		a.drivers.Refresh()
	case PageSettings:
		a.settings.Refresh()
	}
}

func (a *App) pageCapturing() bool {
	switch a.page {
	case PageCustomers:
		return a.customers.InputActive()
	case PageDeduction:
		return a.deduction.InputActive()
	case PageDrivers:
		return a.drivers.InputActive()
	case PageSettings:
		return a.settings.InputActive()
	default:
		return false
	}
}

func (a *App) setPageSizes() {
	w := ContentWidth(a.width)
	h := ContentHeight(a.height)
	a.dashboard.SetSize(w, h)
	a.customers.SetSize(w, h)
	a.deduction.SetSize(w, h)
	a.history.SetSize(w, h)
	a.drivers.SetSize(w, h)
	a.settings.SetSize(w, h)
}

// View implements tea.Model.
func (a App) View() string {
	sidebar := a.viewSidebar()
	content := a.styles.Content.Render(a.viewPage())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.viewStatus())
}

func (a App) viewPage() string {
	switch a.page {
	case PageDashboard:
		return a.dashboard.View()
	case PageCustomers:
		return a.customers.View()
	case PageDeduction:
		return a.deduction.View()
	case PageHistory:
		return a.history.View()
	case PageDrivers:
		return a.drivers.View()
	case PageSettings:
		return a.settings.View()
	}
	return ""
}

func (a App) viewSidebar() string {
	var b strings.Builder
	b.WriteString(a.styles.SidebarTitle.Render("💬 알림톡 관리"))
	b.WriteString("\n")
	b.WriteString(a.styles.SidebarItem.Render("Giranteam"))
	b.WriteString("\n\n")
	for _, item := range navItems {
		style := a.styles.SidebarItem
		if item.page == a.page {
			style = a.styles.SidebarActive
		}
		b.WriteString(style.Render(item.label))
		b.WriteString("\n")
	}
	height := a.height - StatusBarHeight
	if height < MinimumTerminalHeight-StatusBarHeight {
		height = MinimumTerminalHeight - StatusBarHeight
	}
	return a.styles.Sidebar.Width(SidebarWidth).Height(height - 2).Render(b.String())
}

func (a App) viewStatus() string {
	left := a.styles.Help.Render("1-6 이동 · q 종료")
	if a.status.text == "" {
		return a.styles.StatusBar.Render(left)
	}
	style := a.styles.Success
	if a.status.isErr {
		style = a.styles.Error
	}
	return a.styles.StatusBar.Render(left + "  " + style.Render(a.status.text))
}
