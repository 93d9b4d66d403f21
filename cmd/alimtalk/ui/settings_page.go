package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"alimtalk/internal/ledger"
	"alimtalk/internal/message"
)

// SettingsModel edits the business name and the message template.
type SettingsModel struct {
	svc    *ledger.Service
	styles Styles
	width  int
	height int

	nameInput     textinput.Model
	template      textarea.Model
	focusTemplate bool
	browsing      bool
	confirmReset  bool
}

// NewSettingsModel creates the settings page.
func NewSettingsModel(svc *ledger.Service, styles Styles) SettingsModel {
	name := textinput.New()
	name.Placeholder = "업체명"
	name.CharLimit = 50
	name.Width = 30

	tpl := textarea.New()
	tpl.CharLimit = 0
	tpl.SetWidth(60)
	tpl.SetHeight(14)

	m := SettingsModel{svc: svc, styles: styles, nameInput: name, template: tpl}
	m.Refresh()
	return m
}

// SetSize updates the render dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 20 {
		m.template.SetWidth(width - 4)
	}
	if height > 12 {
		m.template.SetHeight(height - 10)
	}
}

// Refresh reloads the form from the stored settings.
func (m *SettingsModel) Refresh() {
	settings := m.svc.Settings()
	m.nameInput.SetValue(settings.BusinessName)
	m.template.SetValue(settings.MessageTemplate)
	m.confirmReset = false
	m.focusTemplate = false
	m.browsing = true
	m.template.Blur()
	m.nameInput.Blur()
}

// InputActive reports whether the page is capturing text input. Esc
// leaves edit mode so the sidebar keys work again.
func (m SettingsModel) InputActive() bool {
	return !m.confirmReset && !m.browsing
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmReset {
		switch key.String() {
		case "y":
			m.confirmReset = false
			if err := m.svc.ResetSettings(); err != nil {
				return m, errorCmd(err)
			}
			m.Refresh()
			return m, statusCmd("기본 설정으로 초기화되었습니다")
		case "n", "esc":
			m.confirmReset = false
		}
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.browsing = true
		m.nameInput.Blur()
		m.template.Blur()
		return m, nil
	case "enter":
		if m.browsing {
			m.browsing = false
			m.focusTemplate = false
			m.nameInput.Focus()
			return m, nil
		}
	case "tab":
		if m.browsing {
			m.browsing = false
			m.nameInput.Focus()
			m.focusTemplate = false
			return m, nil
		}
		m.focusTemplate = !m.focusTemplate
		if m.focusTemplate {
			m.nameInput.Blur()
			m.template.Focus()
		} else {
			m.template.Blur()
			m.nameInput.Focus()
		}
		return m, nil
	case "ctrl+s":
		if err := m.svc.SaveSettings(m.nameInput.Value(), m.template.Value()); err != nil {
			return m, errorCmd(err)
		}
		return m, statusCmd("설정이 저장되었습니다")
	case "ctrl+r":
		m.confirmReset = true
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusTemplate {
		m.template, cmd = m.template.Update(key)
	} else {
		m.nameInput, cmd = m.nameInput.Update(key)
	}
	return m, cmd
}

// View renders the page.
func (m SettingsModel) View() string {
	if m.confirmReset {
		return m.styles.Title.Render("설정 초기화") + "\n\n" +
			m.styles.Body.Render("기본 설정으로 초기화하시겠습니까?") + "\n\n" +
			m.styles.Help.Render("y 초기화 · n 취소")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("⚙️ 설정"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("업체 정보와 메시지 템플릿을 설정합니다"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.FieldLabel.Render("업체명"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("카카오톡 메시지에 표시되는 업체명입니다"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.FieldLabel.Render("알림 메시지 형식"))
	b.WriteString("\n")
	b.WriteString(m.template.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render("사용 가능한 변수: "))
	b.WriteString(m.styles.Info.Render(strings.Join([]string{
		message.TokenBusiness,
		message.TokenCustomer,
		message.TokenPlayTime,
		message.TokenCumulative,
		message.TokenRemaining,
	}, "  ")))
	b.WriteString("\n\n")
	if m.browsing {
		b.WriteString(m.styles.Help.Render("enter 편집 시작 · ctrl+s 저장 · ctrl+r 초기화"))
	} else {
		b.WriteString(m.styles.Help.Render("tab 항목 이동 · esc 편집 종료 · ctrl+s 저장 · ctrl+r 초기화"))
	}
	return b.String()
}
