// Package config holds the data directory layout and seed defaults for
// the alimtalk manager. There is deliberately no config file, no
// environment lookup and no flags beyond the launch command: the tool
// is a single-user desktop utility and everything it needs lives in
// the data files themselves.
package config

import (
	"os"
	"path/filepath"

	"alimtalk/internal/types"
)

// DirName is the data directory created under the user's home.
const DirName = ".alimtalk"

const (
	// DefaultGameName is applied when a customer is created with an
	// empty game name.
	DefaultGameName = "리니지"

	// DefaultBusinessName appears in the {업체명} placeholder until the
	// operator changes it.
	DefaultBusinessName = "리니지 학교"

	// DefaultDriverRate is the hourly rate suggested when registering a
	// new driver.
	DefaultDriverRate = 5000
)

// DefaultMessageTemplate is the stock notification template. The five
// placeholder tokens are substituted by the message package.
const DefaultMessageTemplate = `[{업체명}] 시간 차감 안내

안녕하세요, {고객명} 고객님!

금일 플레이가 종료되어 안내드립니다.

━━━━━━━━━━━━━━━━━━━━
  금일 플레이 시간:  {플레이시간}
  총 누적 사용 시간:  {누적시간}
  남은 이용 시간:  {남은시간}
━━━━━━━━━━━━━━━━━━━━

궁금한 점이 있으시면 언제든 문의해주세요.

감사합니다.`

// Paths locates the four data documents inside a data directory.
type Paths struct {
	Dir       string
	Customers string
	Records   string
	Drivers   string
	Settings  string
}

// NewPaths lays out the file paths under dir.
func NewPaths(dir string) Paths {
	return Paths{
		Dir:       dir,
		Customers: filepath.Join(dir, "customers.json"),
		Records:   filepath.Join(dir, "records.json"),
		Drivers:   filepath.Join(dir, "drivers.json"),
		Settings:  filepath.Join(dir, "settings.json"),
	}
}

// DataDir returns the default data directory under the user's home.
// The directory itself is created lazily on first write.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DirName), nil
}

// DefaultSettings returns the stock settings record.
func DefaultSettings() types.Settings {
	return types.Settings{
		BusinessName:    DefaultBusinessName,
		MessageTemplate: DefaultMessageTemplate,
	}
}

// SeedDrivers returns the two drivers seeded on first run.
func SeedDrivers() []types.Driver {
	return []types.Driver{
		{ID: "d1", Name: "기사A", HourlyRate: 5000},
		{ID: "d2", Name: "기사B", HourlyRate: 6000},
	}
}
