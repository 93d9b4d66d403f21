package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"alimtalk/cmd/alimtalk/ui"
	"alimtalk/internal/config"
	"alimtalk/internal/ledger"
	"alimtalk/internal/store"
)

var (
	verbose bool
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "alimtalk",
	Short: "알림톡 관리 - 고객 시간 차감 및 알림 메시지 관리 도구",
	Long: `알림톡 관리 is a terminal tool for tracking customer time balances,
logging deductions performed by drivers and producing the KakaoTalk
notification text to paste into a chat.

Data lives as plain JSON files under ~/.alimtalk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func run() error {
	dir := dataDir
	if dir == "" {
		var err error
		dir, err = config.DataDir()
		if err != nil {
			return fmt.Errorf("resolve data directory: %w", err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger, err := newLogger(dir)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	st := store.New(config.NewPaths(dir), logger)
	svc := ledger.NewService(st, logger)

	program := tea.NewProgram(ui.NewApp(svc, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}

// newLogger writes to a log file inside the data directory; the
// terminal belongs to the TUI.
func newLogger(dir string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, "alimtalk.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory (default ~/.alimtalk)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
