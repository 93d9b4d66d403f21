package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"alimtalk/internal/ledger"
	"alimtalk/internal/message"
	"alimtalk/internal/types"
)

type customersMode int

const (
	customersList customersMode = iota
	customersForm
	customersConfirm
)

// Customer form field indexes.
const (
	custFieldName = iota
	custFieldPhone
	custFieldGame
	custFieldTotal
	custFieldUsed
	custFieldMemo
	custFieldCount
)

// CustomersModel is the customer management page: a card list with a
// create/edit form and a delete confirmation.
type CustomersModel struct {
	svc    *ledger.Service
	styles Styles
	width  int
	height int

	mode      customersMode
	cursor    int
	customers []types.Customer

	inputs    []textinput.Model
	focus     int
	editingID string

	pendingDelete string
}

// NewCustomersModel creates the customers page.
func NewCustomersModel(svc *ledger.Service, styles Styles) CustomersModel {
	labels := []string{"고객명 *", "전화번호", "게임명", "총 구매 시간", "사용 시간", "메모"}
	inputs := make([]textinput.Model, custFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 100
		in.Width = 30
		inputs[i] = in
	}
	return CustomersModel{svc: svc, styles: styles, inputs: inputs}
}

// SetSize updates the render dimensions.
func (m *CustomersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh reloads the customer list.
func (m *CustomersModel) Refresh() {
	m.customers = m.svc.Customers()
	if m.cursor >= len(m.customers) {
		m.cursor = len(m.customers) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// InputActive reports whether the page is capturing text input.
func (m CustomersModel) InputActive() bool {
	return m.mode == customersForm
}

// Update handles messages.
func (m CustomersModel) Update(msg tea.Msg) (CustomersModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mode {
	case customersList:
		return m.updateList(key)
	case customersForm:
		return m.updateForm(key)
	case customersConfirm:
		return m.updateConfirm(key)
	}
	return m, nil
}

func (m CustomersModel) updateList(key tea.KeyMsg) (CustomersModel, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.customers)-1 {
			m.cursor++
		}
	case "n":
		m.openForm(nil)
	case "enter", "e":
		if m.cursor < len(m.customers) {
			c := m.customers[m.cursor]
			m.openForm(&c)
		}
	case "d":
		if m.cursor < len(m.customers) {
			m.pendingDelete = m.customers[m.cursor].ID
			m.mode = customersConfirm
		}
	}
	return m, nil
}

func (m *CustomersModel) openForm(c *types.Customer) {
	m.mode = customersForm
	m.focus = custFieldName
	if c == nil {
		m.editingID = ""
		values := []string{"", "", "리니지", "0", "0", ""}
		for i := range m.inputs {
			m.inputs[i].SetValue(values[i])
		}
	} else {
		m.editingID = c.ID
		m.inputs[custFieldName].SetValue(c.Name)
		m.inputs[custFieldPhone].SetValue(c.Phone)
		m.inputs[custFieldGame].SetValue(c.GameName)
		m.inputs[custFieldTotal].SetValue(trimFloat(c.TotalHours))
		m.inputs[custFieldUsed].SetValue(trimFloat(c.UsedHours))
		m.inputs[custFieldMemo].SetValue(c.Memo)
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
}

func (m CustomersModel) updateForm(key tea.KeyMsg) (CustomersModel, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.mode = customersList
		return m, nil
	case "tab", "down":
		m.setFocus((m.focus + 1) % custFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + custFieldCount - 1) % custFieldCount)
		return m, nil
	case "enter":
		return m.saveForm()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	return m, cmd
}

func (m *CustomersModel) setFocus(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m CustomersModel) saveForm() (CustomersModel, tea.Cmd) {
	in := ledger.CustomerInput{
		Name:       m.inputs[custFieldName].Value(),
		Phone:      m.inputs[custFieldPhone].Value(),
		GameName:   m.inputs[custFieldGame].Value(),
		TotalHours: ledger.ParseNumber(m.inputs[custFieldTotal].Value()),
		UsedHours:  ledger.ParseNumber(m.inputs[custFieldUsed].Value()),
		Memo:       m.inputs[custFieldMemo].Value(),
	}

	var err error
	var note string
	if m.editingID == "" {
		_, err = m.svc.CreateCustomer(in)
		note = "고객이 등록되었습니다"
	} else {
		err = m.svc.UpdateCustomer(m.editingID, in)
		note = "고객 정보가 수정되었습니다"
	}
	if err != nil {
		return m, errorCmd(err)
	}
	m.mode = customersList
	m.Refresh()
	return m, statusCmd(note)
}

func (m CustomersModel) updateConfirm(key tea.KeyMsg) (CustomersModel, tea.Cmd) {
	switch key.String() {
	case "y":
		id := m.pendingDelete
		m.pendingDelete = ""
		m.mode = customersList
		if err := m.svc.DeleteCustomer(id); err != nil {
			return m, errorCmd(err)
		}
		m.Refresh()
		return m, statusCmd("고객이 삭제되었습니다")
	case "n", "esc":
		m.pendingDelete = ""
		m.mode = customersList
	}
	return m, nil
}

// View renders the page.
func (m CustomersModel) View() string {
	switch m.mode {
	case customersForm:
		return m.viewForm()
	case customersConfirm:
		return m.viewConfirm()
	default:
		return m.viewList()
	}
}

func (m CustomersModel) viewList() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("👥 고객 관리"))
	b.WriteString("  ")
	b.WriteString(m.styles.Help.Render("n 등록 · enter 수정 · d 삭제"))
	b.WriteString("\n\n")

	if len(m.customers) == 0 {
		b.WriteString(m.styles.Muted.Render("등록된 고객이 없습니다"))
		return b.String()
	}

	for i, c := range m.customers {
		b.WriteString(m.viewCustomerCard(c, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m CustomersModel) viewCustomerCard(c types.Customer, selected bool) string {
	var b strings.Builder

	name := m.styles.CardTitle.Render(c.Name)
	if selected {
		name = m.styles.Selected.Render("▸ " + c.Name)
	}
	b.WriteString(name)
	if c.Phone != "" {
		b.WriteString("  " + m.styles.Muted.Render(c.Phone))
	}
	if badge := m.styles.BadgeFor(c); badge != "" {
		b.WriteString("  " + badge)
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
		"사용 %s / 총 %s", message.FormatHours(c.UsedHours), message.FormatHours(c.TotalHours))))
	b.WriteString("\n")
	b.WriteString(m.viewGauge(c))
	b.WriteString("\n")

	remainStyle := m.styles.Success
	switch c.Badge() {
	case types.BadgeUrgent:
		remainStyle = m.styles.Error
	case types.BadgeCaution:
		remainStyle = m.styles.Warning
	}
	b.WriteString(m.styles.Muted.Render("남은 시간 "))
	b.WriteString(remainStyle.Render(message.FormatHours(c.Remaining())))

	return m.styles.Card.Render(b.String())
}

func (m CustomersModel) viewGauge(c types.Customer) string {
	filled := int(c.UsedPercent() / 100 * GaugeWidth)
	if filled > GaugeWidth {
		filled = GaugeWidth
	}
	return m.styles.GaugeFill.Render(strings.Repeat("█", filled)) +
		m.styles.GaugeEmpty.Render(strings.Repeat("░", GaugeWidth-filled))
}

func (m CustomersModel) viewForm() string {
	var b strings.Builder
	title := "고객 등록"
	if m.editingID != "" {
		title = "고객 수정"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	labels := []string{"고객명 *", "전화번호", "게임명", "총 구매 시간", "사용 시간", "메모"}
	for i, in := range m.inputs {
		b.WriteString(m.styles.FieldLabel.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter 저장 · esc 취소 · tab 다음 항목"))
	return b.String()
}

func (m CustomersModel) viewConfirm() string {
	return m.styles.Title.Render("고객 삭제") + "\n\n" +
		m.styles.Body.Render("정말로 이 고객을 삭제하시겠습니까?") + "\n\n" +
		m.styles.Help.Render("y 삭제 · n 취소")
}

// trimFloat renders a float without trailing zeros for form prefill.
func trimFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
