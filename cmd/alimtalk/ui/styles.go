// Package ui provides the terminal interface for the alimtalk manager:
// a sidebar-driven page switcher over the ledger service.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"alimtalk/internal/types"
)

// Color palette carried over from the desktop edition.
var (
	ColorBackground  = lipgloss.Color("#F0F4F8")
	ColorSidebarBg   = lipgloss.Color("#1E293B")
	ColorSidebarText = lipgloss.Color("#E2E8F0")
	ColorSidebarHot  = lipgloss.Color("#334155")
	ColorAccent      = lipgloss.Color("#10B981")
	ColorCardBg      = lipgloss.Color("#FFFFFF")
	ColorTextDark    = lipgloss.Color("#1E293B")
	ColorTextMuted   = lipgloss.Color("#64748B")
	ColorPrimary     = lipgloss.Color("#3B82F6")
	ColorSuccess     = lipgloss.Color("#10B981")
	ColorWarning     = lipgloss.Color("#F59E0B")
	ColorDanger      = lipgloss.Color("#EF4444")
	ColorKakaoYellow = lipgloss.Color("#FEE500")
	ColorKakaoBrown  = lipgloss.Color("#3C1E1E")
	ColorKakaoChatBg = lipgloss.Color("#B2C7D9")
	ColorBorder      = lipgloss.Color("#E2E8F0")
)

// Styles holds the styled components shared by all pages.
type Styles struct {
	// Layout
	Sidebar       lipgloss.Style
	SidebarTitle  lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style
	Content       lipgloss.Style
	StatusBar     lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	Selected     lipgloss.Style
	BadgeUrgent  lipgloss.Style
	BadgeCaution lipgloss.Style
	BadgeSent    lipgloss.Style
	BadgeUnsent  lipgloss.Style
	GaugeFill    lipgloss.Style
	GaugeEmpty   lipgloss.Style
	FieldLabel   lipgloss.Style
	Help         lipgloss.Style

	// Kakao preview
	KakaoHeader lipgloss.Style
	ChatWindow  lipgloss.Style
	ChatBubble  lipgloss.Style
	ChatSender  lipgloss.Style
	CopyButton  lipgloss.Style
	CopyDone    lipgloss.Style
}

// DefaultStyles builds the style set.
func DefaultStyles() Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#ffffff"))

	return Styles{
		Sidebar: lipgloss.NewStyle().
			Background(ColorSidebarBg).
			Foreground(ColorSidebarText).
			Padding(1, 1),

		SidebarTitle: lipgloss.NewStyle().
			Background(ColorSidebarBg).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),

		SidebarItem: lipgloss.NewStyle().
			Background(ColorSidebarBg).
			Foreground(ColorSidebarText).
			Padding(0, 1),

		SidebarActive: lipgloss.NewStyle().
			Background(ColorSidebarHot).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		StatusBar: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(ColorTextDark).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		Body: lipgloss.NewStyle().
			Foreground(ColorTextDark),

		Muted: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		Bold: lipgloss.NewStyle().
			Foreground(ColorTextDark).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ColorDanger).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(ColorPrimary),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Foreground(ColorTextDark).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		BadgeUrgent:  badge.Background(ColorDanger),
		BadgeCaution: badge.Background(ColorWarning),
		BadgeSent:    badge.Background(ColorSuccess),
		BadgeUnsent:  badge.Background(ColorWarning),

		GaugeFill:  lipgloss.NewStyle().Foreground(ColorSuccess),
		GaugeEmpty: lipgloss.NewStyle().Foreground(ColorBorder),

		FieldLabel: lipgloss.NewStyle().
			Foreground(ColorTextDark).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		KakaoHeader: lipgloss.NewStyle().
			Background(ColorKakaoYellow).
			Foreground(ColorKakaoBrown).
			Bold(true).
			Padding(0, 1),

		ChatWindow: lipgloss.NewStyle().
			Background(ColorKakaoChatBg).
			Padding(1, 1),

		ChatBubble: lipgloss.NewStyle().
			Background(ColorCardBg).
			Foreground(ColorTextDark).
			Padding(0, 1),

		ChatSender: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		CopyButton: lipgloss.NewStyle().
			Background(ColorKakaoYellow).
			Foreground(ColorKakaoBrown).
			Bold(true).
			Padding(0, 2),

		CopyDone: lipgloss.NewStyle().
			Background(ColorSuccess).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 2),
	}
}

// BadgeFor renders the balance badge for a customer, or "" when the
// balance is healthy.
func (s Styles) BadgeFor(c types.Customer) string {
	switch c.Badge() {
	case types.BadgeUrgent:
		return s.BadgeUrgent.Render("긴급")
	case types.BadgeCaution:
		return s.BadgeCaution.Render("주의")
	default:
		return ""
	}
}
