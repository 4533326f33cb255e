// Package config loads ace-launcher settings from a YAML file and the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	// HTTP server settings
	HTTP struct {
		Address string `yaml:"address"`
		Port    string `yaml:"port"`
	} `yaml:"http"`

	// Acestream Engine settings
	Acestream struct {
		EngineURL string `yaml:"engine_url"`
	} `yaml:"acestream"`

	// Data files. Relative file names are resolved against Dir.
	Data struct {
		Dir         string `yaml:"dir"`
		SourcesFile string `yaml:"sources_file"`
		IconsFile   string `yaml:"icons_file"`
		DBFile      string `yaml:"db_file"`
	} `yaml:"data"`

	// Playlist fetch settings
	Fetch struct {
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"fetch"`

	// Source list watcher settings
	Watch struct {
		Debounce time.Duration `yaml:"debounce"`
	} `yaml:"watch"`

	// Logging settings
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTP.Address == "" {
		errors = append(errors, "HTTP address is required")
	}
	if c.HTTP.Port == "" {
		errors = append(errors, "HTTP port is required")
	}

	if c.Acestream.EngineURL == "" {
		errors = append(errors, "Acestream engine URL is required")
	} else if u, err := url.Parse(c.Acestream.EngineURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("Acestream engine URL is invalid: %q", c.Acestream.EngineURL))
	}

	if c.Data.Dir == "" {
		errors = append(errors, "Data directory is required")
	}
	if c.Data.SourcesFile == "" {
		errors = append(errors, "Sources file is required")
	}
	if c.Data.IconsFile == "" {
		errors = append(errors, "Icons file is required")
	}
	if c.Data.DBFile == "" {
		errors = append(errors, "Database file is required")
	}

	if c.Fetch.Timeout < 0 {
		errors = append(errors, "Fetch timeout must not be negative")
	}
	if c.Watch.Debounce <= 0 {
		errors = append(errors, "Watch debounce must be positive")
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		errors = append(errors, fmt.Sprintf("Log level must be one of DEBUG, INFO, WARN, ERROR, got %q", c.Log.Level))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	cfg.HTTP.Address = "127.0.0.1"
	cfg.HTTP.Port = "8080"

	cfg.Acestream.EngineURL = "http://127.0.0.1:6878"

	cfg.Data.Dir = defaultDataDir()
	cfg.Data.SourcesFile = "channel_urls.json"
	cfg.Data.IconsFile = "channel_images.json"
	cfg.Data.DBFile = "ace-launcher.db"

	// Zero means the HTTP client default: no timeout.
	cfg.Fetch.Timeout = 0

	cfg.Watch.Debounce = 500 * time.Millisecond

	cfg.Log.Level = "INFO"

	return cfg
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "ace-launcher")
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a file (if provided) and applies environment variable overrides
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg = Default()
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("HTTP_ADDRESS"); val != "" {
		cfg.HTTP.Address = val
	}
	if val := os.Getenv("HTTP_PORT"); val != "" {
		cfg.HTTP.Port = val
	}

	if val := os.Getenv("ACESTREAM_ENGINE_URL"); val != "" {
		cfg.Acestream.EngineURL = val
	}

	if val := os.Getenv("DATA_DIR"); val != "" {
		absPath, err := validateDataDir(val)
		if err != nil {
			return err
		}
		cfg.Data.Dir = absPath
	}
	if val := os.Getenv("SOURCES_FILE"); val != "" {
		cfg.Data.SourcesFile = val
	}
	if val := os.Getenv("ICONS_FILE"); val != "" {
		cfg.Data.IconsFile = val
	}
	if val := os.Getenv("DB_PATH"); val != "" {
		cfg.Data.DBFile = val
	}

	if val := os.Getenv("FETCH_TIMEOUT"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid FETCH_TIMEOUT format (expected duration like '30s'): %w", err)
		}
		if duration < 0 {
			return fmt.Errorf("FETCH_TIMEOUT must not be negative, got: %s", val)
		}
		cfg.Fetch.Timeout = duration
	}

	if val := os.Getenv("WATCH_DEBOUNCE"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid WATCH_DEBOUNCE: %w", err)
		}
		if duration <= 0 {
			return fmt.Errorf("WATCH_DEBOUNCE must be positive")
		}
		cfg.Watch.Debounce = duration
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}

	return nil
}

// validateDataDir validates and normalizes the data directory path
func validateDataDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("data directory cannot be empty")
	}

	if !filepath.IsAbs(dir) {
		absPath, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve absolute path for data dir: %w", err)
		}
		return absPath, nil
	}

	return dir, nil
}

// SourcesPath returns the location of the source list file.
func (c *Config) SourcesPath() string {
	return c.resolve(c.Data.SourcesFile)
}

// IconsPath returns the location of the icon mapping file.
func (c *Config) IconsPath() string {
	return c.resolve(c.Data.IconsFile)
}

// DBPath returns the location of the settings database.
func (c *Config) DBPath() string {
	return c.resolve(c.Data.DBFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Data.Dir, name)
}

// ListenAddr returns the HTTP listen address in host:port form.
func (c *Config) ListenAddr() string {
	return c.HTTP.Address + ":" + c.HTTP.Port
}

// SlogLevel returns the configured log level. Unknown values fall back to INFO.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Print outputs the configuration to w
func (c *Config) Print(w io.Writer) {
	fmt.Fprintf(w, "httpAddress: %v\n", c.HTTP.Address)
	fmt.Fprintf(w, "httpPort: %v\n", c.HTTP.Port)
	fmt.Fprintf(w, "acestreamEngineUrl: %v\n", c.Acestream.EngineURL)
	fmt.Fprintf(w, "dataDir: %v\n", c.Data.Dir)
	fmt.Fprintf(w, "sourcesFile: %v\n", c.SourcesPath())
	fmt.Fprintf(w, "iconsFile: %v\n", c.IconsPath())
	fmt.Fprintf(w, "dbFile: %v\n", c.DBPath())
	fmt.Fprintf(w, "fetchTimeout: %v\n", c.Fetch.Timeout)
	fmt.Fprintf(w, "watchDebounce: %v\n", c.Watch.Debounce)
	fmt.Fprintf(w, "logLevel: %v\n", c.SlogLevel())
}
