package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zhubert/veneer/internal/errors"
)

// Startup defaults used when the config file is missing or a field is unset.
const (
	DefaultHomeURL = "https://example.com"
	DefaultTheme   = "light"
	DefaultAccent  = "#2563EB"
)

// Config holds startup defaults for the browser shell. Nothing the user does
// during a session is written back here unless they save from the settings
// dialog.
type Config struct {
	HomeURL              string `json:"home_url,omitempty"`              // url of the tab shown at startup
	DefaultURL           string `json:"default_url,omitempty"`           // url given to newly opened tabs
	Theme                string `json:"theme,omitempty"`                 // "light" or "dark"
	Accent               string `json:"accent,omitempty"`                // #RRGGBB accent color
	SeedSampleData       *bool  `json:"seed_sample_data,omitempty"`      // start with example history and bookmarks
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // desktop notifications for bookmark/history actions

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".veneer"), nil
}

// DefaultPath returns the path of the user's config file.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// New returns a config with defaults that will save to path.
func New(path string) *Config {
	return &Config{filePath: path}
}

// Load reads the user's config, or returns defaults if it doesn't exist.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.veneer/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if it doesn't exist.
func LoadFrom(path string) (*Config, error) {
	cfg := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every set field has a usable value.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for name, url := range map[string]string{"home_url": c.HomeURL, "default_url": c.DefaultURL} {
		if url != "" && !strings.Contains(url, "://") {
			return errors.ConfigInvalid(name + " must include a scheme, got " + url)
		}
	}

	switch strings.ToLower(c.Theme) {
	case "", "light", "dark":
	default:
		return errors.ConfigInvalid("theme must be light or dark, got " + c.Theme)
	}

	if c.Accent != "" && !isHexColor(c.Accent) {
		return errors.ConfigInvalid("accent must be a #RRGGBB color, got " + c.Accent)
	}

	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", os.ErrInvalid)
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config loads from and saves to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath changes where Save writes.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// GetHomeURL returns the startup tab url
func (c *Config) GetHomeURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.HomeURL == "" {
		return DefaultHomeURL
	}
	return c.HomeURL
}

// SetHomeURL sets the startup tab url
func (c *Config) SetHomeURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.HomeURL = url
}

// GetDefaultURL returns the url for new tabs, falling back to the home url.
func (c *Config) GetDefaultURL() string {
	c.mu.RLock()
	url := c.DefaultURL
	c.mu.RUnlock()
	if url == "" {
		return c.GetHomeURL()
	}
	return url
}

// SetDefaultURL sets the url for new tabs
func (c *Config) SetDefaultURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DefaultURL = url
}

// GetTheme returns the startup theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Theme == "" {
		return DefaultTheme
	}
	return strings.ToLower(c.Theme)
}

// SetTheme sets the startup theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetAccent returns the startup accent color
func (c *Config) GetAccent() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Accent == "" {
		return DefaultAccent
	}
	return c.Accent
}

// SetAccent sets the startup accent color
func (c *Config) SetAccent(accent string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Accent = accent
}

// GetSeedSampleData reports whether to start with example data. Defaults to true.
func (c *Config) GetSeedSampleData() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SeedSampleData == nil || *c.SeedSampleData
}

// SetSeedSampleData sets whether to start with example data
func (c *Config) SetSeedSampleData(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SeedSampleData = &enabled
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
