package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/veneer/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the startup defaults file",
	Long: `Manage ~/.veneer/config.json, which holds the startup defaults: home page,
new-tab address, theme, accent color, sample data and notifications.

Available subcommands:
  init  - Write a config file with the built-in defaults
  path  - Print where the config file lives
  show  - Print the effective startup defaults`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the built-in defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the config file lives",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return fmt.Errorf("error locating config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective startup defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printConfig(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("error locating config: %w", err)
	}
	if fileExists(path) && !configForce {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.New(path)
	cfg.SetHomeURL(config.DefaultHomeURL)
	cfg.SetDefaultURL(config.DefaultHomeURL)
	cfg.SetTheme(config.DefaultTheme)
	cfg.SetAccent(config.DefaultAccent)
	cfg.SetSeedSampleData(true)
	cfg.SetNotificationsEnabled(false)

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "config:         %s\n", cfg.Path())
	fmt.Fprintf(w, "home_url:       %s\n", cfg.GetHomeURL())
	fmt.Fprintf(w, "default_url:    %s\n", cfg.GetDefaultURL())
	fmt.Fprintf(w, "theme:          %s\n", cfg.GetTheme())
	fmt.Fprintf(w, "accent:         %s\n", cfg.GetAccent())
	fmt.Fprintf(w, "sample data:    %t\n", cfg.GetSeedSampleData())
	fmt.Fprintf(w, "notifications:  %t\n", cfg.GetNotificationsEnabled())
}
