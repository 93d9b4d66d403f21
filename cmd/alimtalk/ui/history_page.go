package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"alimtalk/internal/ledger"
	"alimtalk/internal/message"
)

// HistoryModel lists every deduction record newest-first and lets the
// operator re-copy a notification for rows whose customer still
// exists. Copying marks the record sent.
type HistoryModel struct {
	svc    *ledger.Service
	styles Styles
	width  int
	height int

	table table.Model
	ids   []string
	count int
}

// NewHistoryModel creates the history page.
func NewHistoryModel(svc *ledger.Service, styles Styles) HistoryModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "날짜", Width: 10},
			{Title: "고객", Width: 14},
			{Title: "기사", Width: 10},
			{Title: "시간", Width: 12},
			{Title: "정산", Width: 10},
			{Title: "상태", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	return HistoryModel{svc: svc, styles: styles, table: t}
}

// SetSize updates the render dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if height > 8 {
		m.table.SetHeight(height - 6)
	}
}

// Refresh rebuilds the table rows from the ledger.
func (m *HistoryModel) Refresh() {
	records := m.svc.RecordsNewestFirst()
	rows := make([]table.Row, 0, len(records))
	m.ids = m.ids[:0]
	for _, r := range records {
		status := "미발송"
		if r.MessageSent {
			status = "발송완료"
		}
		rows = append(rows, table.Row{
			r.Date,
			r.CustomerName,
			r.DriverName,
			message.FormatHours(r.PlayHours),
			message.FormatNumber(float64(r.TotalPay)) + "원",
			status,
		})
		m.ids = append(m.ids, r.ID)
	}
	m.table.SetRows(rows)
	m.count = len(records)
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "c":
			return m.copySelected()
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) copySelected() (HistoryModel, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.ids) {
		return m, nil
	}
	id := m.ids[idx]

	msg, err := m.svc.RenderRecordMessage(id)
	if err != nil {
		return m, errorCmd(err)
	}
	if err := clipboardWriteAll(msg); err != nil {
		return m, errorCmd(fmt.Errorf("클립보드 복사 실패: %w", err))
	}
	if err := m.svc.MarkSent(id); err != nil {
		return m, errorCmd(err)
	}
	m.Refresh()
	return m, statusCmd("메시지가 클립보드에 복사되었습니다")
}

// View renders the page.
func (m HistoryModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("📋 알림 내역"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("총 %d건의 차감 기록이 있습니다", m.count)))
	b.WriteString("\n\n")

	if m.count == 0 {
		b.WriteString(m.styles.Muted.Render("알림 내역이 없습니다"))
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ 이동 · enter 메시지 복사"))
	return b.String()
}
