// Package config loads miaumon's configuration from defaults, an optional
// YAML file, and environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/miaudev/miaumon/internal/errors"
	"github.com/miaudev/miaumon/internal/stats"
)

const (
	// DefaultInterval is the dashboard refresh cadence.
	DefaultInterval = 2 * time.Second
	// DefaultTailLines is how many log lines the log panel shows.
	DefaultTailLines = 18
	// DefaultDevURL is the dev server address shown in the header.
	DefaultDevURL = "http://localhost:9245"

	configDir  = ".config/miau"
	configFile = "monitor.yaml"
)

// Config holds everything the dashboard needs to run.
type Config struct {
	// LogFile is the monitored dev log (env MIAU_LOG).
	LogFile string `mapstructure:"log-file"`
	// ErrorFile receives the extracted error block when the clipboard
	// copy fails.
	ErrorFile string `mapstructure:"error-file"`
	// DBPath is probed for existence and size, never opened.
	DBPath string `mapstructure:"db-path"`
	// DevURL is displayed in the dashboard header.
	DevURL string `mapstructure:"dev-url"`
	// Interval is the refresh tick.
	Interval time.Duration `mapstructure:"interval"`
	// TailLines bounds the log panel.
	TailLines int `mapstructure:"tail-lines"`
	// WailsPID is the primary dev process PID (env WAILS_PID); 0 means
	// not tracked.
	WailsPID int32 `mapstructure:"wails-pid"`
	// Services overrides the default monitored service list.
	Services []stats.ServiceSpec `mapstructure:"services"`
}

// Load reads configuration from the optional config file at path (default
// ~/.config/miau/monitor.yaml when empty), environment variables, and
// built-in defaults, in ascending precedence: defaults < file < env.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log-file", filepath.Join(os.TempDir(), "miau-dev.log"))
	v.SetDefault("error-file", filepath.Join(os.TempDir(), "miau-last-error.txt"))
	v.SetDefault("db-path", defaultDBPath())
	v.SetDefault("dev-url", DefaultDevURL)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("tail-lines", DefaultTailLines)
	v.SetDefault("wails-pid", 0)

	// MIAU_LOG and WAILS_PID predate this tool's config file and keep
	// their unprefixed names.
	_ = v.BindEnv("log-file", "MIAU_LOG")
	_ = v.BindEnv("wails-pid", "WAILS_PID")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigFile(filepath.Join(home, configDir, configFile))
		if err := v.ReadInConfig(); err != nil {
			// A missing user config is fine; a malformed one is not.
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Failed to read config file",
					"Check ~/.config/miau/monitor.yaml is valid YAML")
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid configuration",
			"Check field types in the config file")
	}

	if len(cfg.Services) == 0 {
		cfg.Services = DefaultServices(cfg.WailsPID)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			"Refresh interval must be positive",
			"Use a duration like 2s or 500ms")
	}
	if c.TailLines <= 0 {
		return errors.New(errors.ErrConfig,
			"tail-lines must be positive",
			"The log panel needs at least one line")
	}
	if c.LogFile == "" {
		return errors.New(errors.ErrConfig,
			"No log file configured",
			"Set MIAU_LOG or log-file in the config")
	}
	return nil
}

// DefaultServices returns the stock miau dev stack service list. wailsPID
// comes from the environment and may be 0 (untracked).
func DefaultServices(wailsPID int32) []stats.ServiceSpec {
	return []stats.ServiceSpec{
		{Name: "wails3 dev", PID: wailsPID},
		{Name: "go backend", Pattern: "miau-desktop"},
		{Name: "vite", Pattern: "vite"},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, "data", "miau.db")
}
