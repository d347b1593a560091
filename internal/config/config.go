package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/arcanaland/pokecard/internal"
)

const (
	DefaultOutputDir   = "output"
	DefaultAPIBaseURL  = "https://pokeapi.co/api/v2"
	DefaultHTTPTimeout = 30
)

// Environment variables that override file values.
const (
	EnvOutputDir = "POKECARD_OUTPUT_DIR"
	EnvAPIURL    = "POKECARD_API_URL"
	EnvLogLevel  = "POKECARD_LOG_LEVEL"
	EnvLogFormat = "POKECARD_LOG_FORMAT"
)

// LoggingConfig selects the log level and encoder.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config represents the application configuration
type Config struct {
	OutputDir          string        `toml:"output_dir"`
	APIBaseURL         string        `toml:"api_base_url"`
	HTTPTimeoutSeconds int           `toml:"http_timeout_seconds"`
	CardSuffix         string        `toml:"card_suffix"`
	Logging            LoggingConfig `toml:"logging"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{
		OutputDir:          DefaultOutputDir,
		APIBaseURL:         DefaultAPIBaseURL,
		HTTPTimeoutSeconds: DefaultHTTPTimeout,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "pokecard", "config.toml")
}

// LoadConfig loads the config file from the XDG location.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigFilePath())
}

// LoadConfigFrom loads the config file at path, creating it with defaults if
// it does not exist. Keys missing from the file keep their defaults. A .env
// file in the working directory is loaded before environment overrides are
// applied.
func LoadConfigFrom(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := WriteConfig(path, config); err != nil {
			return nil, err
		}
	} else if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	// A missing .env is the common case.
	_ = godotenv.Load()
	config.applyEnv()

	return config, nil
}

// WriteConfig encodes config as TOML at path, creating parent directories.
func WriteConfig(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// HTTPTimeout is the per-request timeout for the API client.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return internal.NewMissingParamError("output_dir")
	}
	if c.APIBaseURL == "" {
		return internal.NewMissingParamError("api_base_url")
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("http_timeout_seconds must be positive, got %d", c.HTTPTimeoutSeconds)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}
