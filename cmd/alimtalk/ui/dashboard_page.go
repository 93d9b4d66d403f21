package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"alimtalk/internal/ledger"
	"alimtalk/internal/message"
	"alimtalk/internal/types"
)

// DashboardModel shows the summary cards and the five most recent
// deductions.
type DashboardModel struct {
	svc    *ledger.Service
	styles Styles
	width  int
	height int

	stats  ledger.Stats
	recent []types.DeductionRecord
}

// NewDashboardModel creates the dashboard page.
func NewDashboardModel(svc *ledger.Service, styles Styles) DashboardModel {
	return DashboardModel{svc: svc, styles: styles}
}

// SetSize updates the render dimensions.
func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh recomputes the aggregates from the ledger.
func (m *DashboardModel) Refresh() {
	m.stats = m.svc.ComputeStats()
	m.recent = m.svc.RecentRecords(RecentRecordCount)
}

// Update handles messages. The dashboard is view-only.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

// View renders the page.
func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("알림톡 관리 시스템"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("고객 시간 관리 및 카카오톡 알림 메시지를 한곳에서 관리하세요"))
	b.WriteString("\n\n")

	cards := []struct {
		label string
		value string
	}{
		{"👥 총 고객 수", fmt.Sprintf("%d 명", m.stats.TotalCustomers)},
		{"⏱️ 오늘 차감", fmt.Sprintf("%d 건", m.stats.TodayDeductions)},
		{"⚠️ 미발송 알림", fmt.Sprintf("%d 건", m.stats.PendingMessages)},
		{"⏰ 총 잔여 시간", message.FormatHours(m.stats.TotalRemaining)},
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := m.styles.Muted.Render(c.label) + "\n" + m.styles.Bold.Render(c.value)
		rendered = append(rendered, m.styles.Card.Render(body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n\n")

	table := NewSimpleTable("📋 최근 차감 내역", "날짜", "고객", "기사", "시간", "상태")
	for _, r := range m.recent {
		table.AddRow(
			r.Date,
			r.CustomerName,
			r.DriverName,
			"-"+message.FormatHours(r.PlayHours),
			m.sentBadge(r.MessageSent),
		)
	}
	if len(m.recent) == 0 {
		b.WriteString(m.styles.CardTitle.Render("📋 최근 차감 내역"))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("차감 내역이 없습니다"))
		b.WriteString("\n")
	} else {
		b.WriteString(table.View(m.styles))
	}

	return b.String()
}

func (m DashboardModel) sentBadge(sent bool) string {
	if sent {
		return m.styles.BadgeSent.Render("발송완료")
	}
	return m.styles.BadgeUnsent.Render("미발송")
}
