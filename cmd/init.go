package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/castdeck/castdeck/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a castdeck config file in the current directory",
	Long:  `Creates a .castdeck/config.yaml file in the current directory with default settings.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := ".castdeck/config.yaml"

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := config.WriteDefault(configPath); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	fmt.Printf("Created %s\n", configPath)
	return nil
}
