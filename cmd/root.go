package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/veneer/internal/app"
	"github.com/zhubert/veneer/internal/browser"
	"github.com/zhubert/veneer/internal/config"
	"github.com/zhubert/veneer/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	themeFlag             string
	homeFlag              string
	version, commit, date string
)

// configPath locates the config file. Tests point it at a temp dir.
var configPath = config.DefaultPath

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "veneer",
	Short: "A browser-style shell for the terminal",
	Long: `veneer is a terminal UI that models a web browser's chrome: tabs, an
address bar, back/forward, bookmarks, history and light/dark themes.
Pages are placeholders; nothing is fetched from the network.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Start with this theme (light or dark)")
	rootCmd.Flags().StringVar(&homeFlag, "home", "", "Open this address in the first tab")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("veneer %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("veneer %s\n", version)
}

// loadConfig reads the config file from configPath.
func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("error locating config: %w", err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// shellOptions turns the saved startup defaults plus any one-off flag
// overrides into browser shell options.
func shellOptions(cfg *config.Config, theme, home string) ([]browser.Option, error) {
	homeURL := cfg.GetHomeURL()
	if home != "" {
		if err := browser.ValidateURL(home); err != nil {
			return nil, fmt.Errorf("invalid --home: %w", err)
		}
		homeURL = home
	}

	themeName := cfg.GetTheme()
	if theme != "" {
		themeName = theme
	}
	t, err := browser.ParseTheme(themeName)
	if err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	opts := []browser.Option{
		browser.WithHomeTab(browser.HomeTabTitle, homeURL),
		browser.WithDefaultURL(cfg.GetDefaultURL()),
		browser.WithTheme(t),
		browser.WithAccent(cfg.GetAccent()),
	}
	if cfg.GetSeedSampleData() {
		opts = append(opts, browser.WithSampleData())
	}
	return opts, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := shellOptions(cfg, themeFlag, homeFlag)
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	log := logger.WithComponent("cmd")
	log.Info("starting veneer", "version", version, "config", cfg.Path())

	m := app.New(cfg, browser.New(opts...), version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
