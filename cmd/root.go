package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/castdeck/castdeck/internal/config"
	"github.com/castdeck/castdeck/internal/preview"
	"github.com/castdeck/castdeck/internal/profile"
	"github.com/castdeck/castdeck/internal/ui/dashboard"
)

var configFlag string

var rootCmd = &cobra.Command{
	Use:   "castdeck",
	Short: "Terminal dashboard for stream-day countdowns, news, and markets",
	Long: `Castdeck is a terminal dashboard showing a launch countdown, a news
ticker, and a prediction market card, with an editable streamer profile.

Profile edits are drafted locally as you type, so an interrupted session
picks up where it left off.`,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	configPath := config.Resolve(configFlag)
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := profile.NewStore(profile.NewFileKV(config.ProfilePath(configPath)))

	previews := preview.NewFileSource("")

	p := tea.NewProgram(
		dashboard.New(cfg, store, previews),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
