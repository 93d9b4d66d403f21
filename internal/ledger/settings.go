package ledger

import (
	"fmt"
	"strings"

	"alimtalk/internal/config"
	"alimtalk/internal/types"
)

// Settings returns the current settings record.
func (s *Service) Settings() types.Settings {
	return s.settings
}

// SaveSettings overwrites the settings wholesale and persists. The
// template is accepted as arbitrary text; placeholder presence is not
// validated.
func (s *Service) SaveSettings(businessName, template string) error {
	s.settings = types.Settings{
		BusinessName:    strings.TrimSpace(businessName),
		MessageTemplate: template,
	}
	if err := s.store.SaveSettings(s.settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ResetSettings restores the stock business name and template and
// persists.
func (s *Service) ResetSettings() error {
	s.settings = config.DefaultSettings()
	if err := s.store.SaveSettings(s.settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
