package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jinchengKuang/jay-kuang/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio site generator driven by a single content document",
	Long: `Folio renders a personal portfolio website from one JSON content
document. Each section of the document (profile, education, experience,
skills, projects, contact) maps to one section of the page; absent
sections are simply skipped. The generated site is static and
self-contained, with an optional dev server that backs the contact form
and live-reloads on content changes.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
