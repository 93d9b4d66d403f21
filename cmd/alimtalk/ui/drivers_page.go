package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"alimtalk/internal/config"
	"alimtalk/internal/ledger"
	"alimtalk/internal/message"
	"alimtalk/internal/types"
)

type driversMode int

const (
	driversList driversMode = iota
	driversForm
	driversConfirm
)

// DriversModel is the driver roster page.
type DriversModel struct {
	svc    *ledger.Service
	styles Styles
	width  int
	height int

	mode    driversMode
	cursor  int
	drivers []types.Driver

	nameInput textinput.Model
	rateInput textinput.Model
	focusRate bool
	editingID string

	pendingDelete string
}

// NewDriversModel creates the drivers page.
func NewDriversModel(svc *ledger.Service, styles Styles) DriversModel {
	name := textinput.New()
	name.Placeholder = "기사명"
	name.CharLimit = 50
	name.Width = 24

	rate := textinput.New()
	rate.Placeholder = "5000"
	rate.CharLimit = 10
	rate.Width = 12

	return DriversModel{svc: svc, styles: styles, nameInput: name, rateInput: rate}
}

// SetSize updates the render dimensions.
func (m *DriversModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh reloads the roster.
func (m *DriversModel) Refresh() {
	m.drivers = m.svc.Drivers()
	if m.cursor >= len(m.drivers) {
		m.cursor = len(m.drivers) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// InputActive reports whether the page is capturing text input.
func (m DriversModel) InputActive() bool {
	return m.mode == driversForm
}

// Update handles messages.
func (m DriversModel) Update(msg tea.Msg) (DriversModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mode {
	case driversList:
		return m.updateList(key)
	case driversForm:
		return m.updateForm(key)
	case driversConfirm:
		return m.updateConfirm(key)
	}
	return m, nil
}

func (m DriversModel) updateList(key tea.KeyMsg) (DriversModel, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.drivers)-1 {
			m.cursor++
		}
	case "n":
		m.openForm(nil)
	case "enter", "e":
		if m.cursor < len(m.drivers) {
			d := m.drivers[m.cursor]
			m.openForm(&d)
		}
	case "d":
		if m.cursor < len(m.drivers) {
			m.pendingDelete = m.drivers[m.cursor].ID
			m.mode = driversConfirm
		}
	}
	return m, nil
}

func (m *DriversModel) openForm(d *types.Driver) {
	m.mode = driversForm
	m.focusRate = false
	if d == nil {
		m.editingID = ""
		m.nameInput.SetValue("")
		// Registration pre-fills the standard rate; editing shows the
		// stored value. Clearing the field during an edit parses to 0,
		// not back to the default.
		m.rateInput.SetValue(fmt.Sprintf("%d", config.DefaultDriverRate))
	} else {
		m.editingID = d.ID
		m.nameInput.SetValue(d.Name)
		m.rateInput.SetValue(trimFloat(d.HourlyRate))
	}
	m.rateInput.Blur()
	m.nameInput.Focus()
}

func (m DriversModel) updateForm(key tea.KeyMsg) (DriversModel, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = driversList
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.focusRate = !m.focusRate
		if m.focusRate {
			m.nameInput.Blur()
			m.rateInput.Focus()
		} else {
			m.rateInput.Blur()
			m.nameInput.Focus()
		}
		return m, nil
	case "enter":
		return m.saveForm()
	}
	var cmd tea.Cmd
	if m.focusRate {
		m.rateInput, cmd = m.rateInput.Update(key)
	} else {
		m.nameInput, cmd = m.nameInput.Update(key)
	}
	return m, cmd
}

func (m DriversModel) saveForm() (DriversModel, tea.Cmd) {
	var err error
	var note string
	if m.editingID == "" {
		rate := ledger.ParseNumberDefault(m.rateInput.Value(), config.DefaultDriverRate)
		_, err = m.svc.CreateDriver(m.nameInput.Value(), rate)
		note = "기사가 등록되었습니다"
	} else {
		rate := ledger.ParseNumber(m.rateInput.Value())
		err = m.svc.UpdateDriver(m.editingID, m.nameInput.Value(), rate)
		note = "기사 정보가 수정되었습니다"
	}
	if err != nil {
		return m, errorCmd(err)
	}
	m.mode = driversList
	m.Refresh()
	return m, statusCmd(note)
}

func (m DriversModel) updateConfirm(key tea.KeyMsg) (DriversModel, tea.Cmd) {
	switch key.String() {
	case "y":
		id := m.pendingDelete
		m.pendingDelete = ""
		m.mode = driversList
		if err := m.svc.DeleteDriver(id); err != nil {
			return m, errorCmd(err)
		}
		m.Refresh()
		return m, statusCmd("기사가 삭제되었습니다")
	case "n", "esc":
		m.pendingDelete = ""
		m.mode = driversList
	}
	return m, nil
}

// View renders the page.
func (m DriversModel) View() string {
	switch m.mode {
	case driversForm:
		return m.viewForm()
	case driversConfirm:
		return m.styles.Title.Render("기사 삭제") + "\n\n" +
			m.styles.Body.Render("정말로 이 기사를 삭제하시겠습니까?") + "\n\n" +
			m.styles.Help.Render("y 삭제 · n 취소")
	default:
		return m.viewList()
	}
}

func (m DriversModel) viewList() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("🔧 기사 관리"))
	b.WriteString("  ")
	b.WriteString(m.styles.Help.Render("n 등록 · enter 수정 · d 삭제"))
	b.WriteString("\n\n")

	if len(m.drivers) == 0 {
		b.WriteString(m.styles.Muted.Render("등록된 기사가 없습니다"))
		return b.String()
	}

	for i, d := range m.drivers {
		name := m.styles.CardTitle.Render(d.Name)
		if i == m.cursor {
			name = m.styles.Selected.Render("▸ " + d.Name)
		}
		line := name + "  " + m.styles.Muted.Render(
			fmt.Sprintf("시급 %s원", message.FormatNumber(d.HourlyRate)))
		b.WriteString(m.styles.Card.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DriversModel) viewForm() string {
	title := "기사 등록"
	if m.editingID != "" {
		title = "기사 수정"
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.FieldLabel.Render("기사명 *"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.FieldLabel.Render("시간당 단가 (원)"))
	b.WriteString("\n")
	b.WriteString(m.rateInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("enter 저장 · esc 취소 · tab 항목 이동"))
	return b.String()
}
