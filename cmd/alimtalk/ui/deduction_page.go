package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alimtalk/internal/ledger"
	"alimtalk/internal/message"
	"alimtalk/internal/types"
)

// Deduction form focus positions.
const (
	dedFocusCustomer = iota
	dedFocusDriver
	dedFocusHours
	dedFocusMinutes
	dedFocusCount
)

// copyRevertMsg restores the copy button after the confirmation state.
type copyRevertMsg struct{}

// DeductionModel is the deduction entry page: pickers for customer and
// driver, an hours/minutes input pair and a live KakaoTalk-style
// preview of the notification.
type DeductionModel struct {
	svc    *ledger.Service
	styles Styles
	width  int
	height int

	customers []types.Customer
	drivers   []types.Driver

	focus       int
	customerIdx int
	driverIdx   int
	hours       textinput.Model
	minutes     textinput.Model

	copied bool
}

// NewDeductionModel creates the deduction page.
func NewDeductionModel(svc *ledger.Service, styles Styles) DeductionModel {
	hours := textinput.New()
	hours.Placeholder = "0"
	hours.CharLimit = 5
	hours.Width = 6

	minutes := textinput.New()
	minutes.Placeholder = "0"
	minutes.CharLimit = 5
	minutes.Width = 6

	return DeductionModel{svc: svc, styles: styles, hours: hours, minutes: minutes}
}

// SetSize updates the render dimensions.
func (m *DeductionModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh reloads the pickers and clears the form.
func (m *DeductionModel) Refresh() {
	m.customers = m.svc.Customers()
	m.drivers = m.svc.Drivers()
	if m.customerIdx >= len(m.customers) {
		m.customerIdx = 0
	}
	if m.driverIdx >= len(m.drivers) {
		m.driverIdx = 0
	}
	m.hours.SetValue("")
	m.minutes.SetValue("")
	m.copied = false
	m.setFocus(dedFocusCustomer)
}

// InputActive reports whether a text field has focus.
func (m DeductionModel) InputActive() bool {
	return m.focus == dedFocusHours || m.focus == dedFocusMinutes
}

// Update handles messages.
func (m DeductionModel) Update(msg tea.Msg) (DeductionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case copyRevertMsg:
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.setFocus((m.focus + 1) % dedFocusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + dedFocusCount - 1) % dedFocusCount)
			return m, nil
		case "enter":
			return m.submit()
		case "ctrl+y":
			return m.copyPreview()
		case "left", "h":
			if m.focus == dedFocusCustomer && m.customerIdx > 0 {
				m.customerIdx--
				return m, nil
			}
			if m.focus == dedFocusDriver && m.driverIdx > 0 {
				m.driverIdx--
				return m, nil
			}
		case "right", "l":
			if m.focus == dedFocusCustomer && m.customerIdx < len(m.customers)-1 {
				m.customerIdx++
				return m, nil
			}
			if m.focus == dedFocusDriver && m.driverIdx < len(m.drivers)-1 {
				m.driverIdx++
				return m, nil
			}
		}

		var cmd tea.Cmd
		switch m.focus {
		case dedFocusHours:
			m.hours, cmd = m.hours.Update(msg)
		case dedFocusMinutes:
			m.minutes, cmd = m.minutes.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *DeductionModel) setFocus(idx int) {
	m.focus = idx
	m.hours.Blur()
	m.minutes.Blur()
	switch idx {
	case dedFocusHours:
		m.hours.Focus()
	case dedFocusMinutes:
		m.minutes.Focus()
	}
}

func (m DeductionModel) playHours() float64 {
	return ledger.PlayHours(m.hours.Value(), m.minutes.Value())
}

func (m DeductionModel) selectedCustomer() (types.Customer, bool) {
	if m.customerIdx >= len(m.customers) {
		return types.Customer{}, false
	}
	return m.customers[m.customerIdx], true
}

func (m DeductionModel) selectedDriver() (types.Driver, bool) {
	if m.driverIdx >= len(m.drivers) {
		return types.Driver{}, false
	}
	return m.drivers[m.driverIdx], true
}

func (m DeductionModel) submit() (DeductionModel, tea.Cmd) {
	customer, okC := m.selectedCustomer()
	driver, okD := m.selectedDriver()
	if !okC {
		return m, errorCmd(ledger.ErrNoCustomer)
	}
	if !okD {
		return m, errorCmd(ledger.ErrNoDriver)
	}

	res, err := m.svc.SubmitDeduction(customer.ID, driver.ID, m.playHours())
	if err != nil {
		return m, errorCmd(err)
	}

	note := fmt.Sprintf("차감 등록 완료 · %s · 기사 정산 %s원",
		message.FormatHours(res.Record.PlayHours), message.FormatNumber(float64(res.Record.TotalPay)))
	if err := clipboardWriteAll(res.Message); err != nil {
		// The preview keeps showing the message for manual copying.
		note += " · 클립보드 복사 실패 (미리보기에서 직접 복사하세요)"
	} else {
		note += " · 메시지가 클립보드에 복사되었습니다"
	}

	m.Refresh()
	return m, statusCmd(note)
}

func (m DeductionModel) copyPreview() (DeductionModel, tea.Cmd) {
	customer, ok := m.selectedCustomer()
	play := m.playHours()
	if !ok || play <= 0 {
		return m, statusCmd("먼저 고객과 시간을 입력해주세요")
	}
	msg, err := m.svc.PreviewMessage(customer.ID, play)
	if err != nil {
		return m, errorCmd(err)
	}
	if err := clipboardWriteAll(msg); err != nil {
		return m, errorCmd(fmt.Errorf("클립보드 복사 실패: %w", err))
	}
	m.copied = true
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return copyRevertMsg{}
	})
}

// View renders the page: form on the left, preview on the right.
func (m DeductionModel) View() string {
	formWidth, previewWidth := SplitPaneWidths(m.width)
	form := m.viewForm(formWidth)
	preview := m.viewPreview(previewWidth)
	header := m.styles.Title.Render("⏱️ 시간 차감 등록") + "\n" +
		m.styles.Subtitle.Render("기사의 플레이 시간을 입력하고 고객에게 알림 메시지를 생성합니다") + "\n\n"
	return header + lipgloss.JoinHorizontal(lipgloss.Top, form, strings.Repeat(" ", PaneDivider), preview)
}

func (m DeductionModel) viewForm(width int) string {
	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("차감 정보 입력"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("고객 선택 *", dedFocusCustomer))
	b.WriteString("\n")
	if customer, ok := m.selectedCustomer(); ok {
		b.WriteString(m.pickerValue(fmt.Sprintf("%s (남은 %s)",
			customer.Name, message.FormatHours(customer.Remaining())), dedFocusCustomer))
	} else {
		b.WriteString(m.styles.Muted.Render("등록된 고객이 없습니다"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("기사 선택 *", dedFocusDriver))
	b.WriteString("\n")
	if driver, ok := m.selectedDriver(); ok {
		b.WriteString(m.pickerValue(fmt.Sprintf("%s (시급 %s원)",
			driver.Name, message.FormatNumber(driver.HourlyRate)), dedFocusDriver))
	} else {
		b.WriteString(m.styles.Muted.Render("등록된 기사가 없습니다"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("플레이 시간 *", dedFocusHours))
	b.WriteString("\n")
	b.WriteString(m.hours.View())
	b.WriteString(m.styles.Muted.Render(" 시간  "))
	b.WriteString(m.minutes.View())
	b.WriteString(m.styles.Muted.Render(" 분"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Help.Render("tab 항목 이동 · ←/→ 선택 변경 · enter 차감 등록 · ctrl+y 미리보기 복사"))
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m DeductionModel) fieldLabel(label string, focus int) string {
	if m.focus == focus {
		return m.styles.Selected.Render("▸ " + label)
	}
	return m.styles.FieldLabel.Render(label)
}

func (m DeductionModel) pickerValue(text string, focus int) string {
	if m.focus == focus {
		return m.styles.Selected.Render("◂ " + text + " ▸")
	}
	return m.styles.Body.Render(text)
}

func (m DeductionModel) viewPreview(width int) string {
	var b strings.Builder
	b.WriteString(m.styles.KakaoHeader.Render("💬 카카오톡 메시지 미리보기"))
	b.WriteString("\n")

	customer, ok := m.selectedCustomer()
	play := m.playHours()
	if !ok || play <= 0 {
		b.WriteString(m.styles.ChatWindow.Width(width).Render(
			m.styles.Muted.Render("고객과 시간을 입력하면\n미리보기가 표시됩니다")))
		return b.String()
	}

	msg, err := m.svc.PreviewMessage(customer.ID, play)
	if err != nil {
		b.WriteString(m.styles.ChatWindow.Width(width).Render(m.styles.Error.Render(err.Error())))
		return b.String()
	}

	bubble := m.styles.ChatSender.Render(m.svc.Settings().BusinessName) + "\n" +
		m.styles.ChatBubble.Render(msg)
	b.WriteString(m.styles.ChatWindow.Width(width).Render(bubble))
	b.WriteString("\n")

	if m.copied {
		b.WriteString(m.styles.CopyDone.Render("✅ 복사 완료!"))
	} else {
		b.WriteString(m.styles.CopyButton.Render("📋 ctrl+y 메시지 복사하기"))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("복사 후 카카오톡에 붙여넣기 하세요"))
	return b.String()
}
