package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by LoadFromEnv when no config file exists
var ErrNoConfig = errors.New("no config file found, set SOARCLI_CONFIG or create configs/soarcli.toml")

// Console modes
const (
	ModeAuto = "auto"
	ModeTUI  = "tui"
	ModeLine = "line"
)

// History backends
const (
	HistorySQLite = "sqlite"
	HistoryMemory = "memory"
	HistoryOff    = "off"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Console ConsoleConfig `toml:"console"`
	Aliases AliasConfig   `toml:"aliases"`
	Remote  RemoteConfig  `toml:"remote"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	AgentName string `toml:"agent_name"`
	DataDir   string `toml:"data_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// ConsoleConfig holds interactive console settings
type ConsoleConfig struct {
	Prompt             string `toml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt"`
	Mode               string `toml:"mode"`    // auto, tui, line
	History            string `toml:"history"` // sqlite, memory, off
	HistoryPath        string `toml:"history_path"`
	HistoryLimit       int    `toml:"history_limit"`
}

// AliasConfig selects the alias catalog every session starts with
type AliasConfig struct {
	SkipDefaults bool     `toml:"skip_defaults"`
	File         string   `toml:"file"`  // YAML catalog
	Lines        []string `toml:"lines"` // "name expansion..." entries applied last
}

// RemoteConfig holds WebSocket console settings
type RemoteConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	ReadTimeout    Duration `toml:"read_timeout"`
	WriteTimeout   Duration `toml:"write_timeout"`
	IdleTimeout    Duration `toml:"idle_timeout"`
	SharedAgent    bool     `toml:"shared_agent"`
	AllowedOrigins []string `toml:"allowed_origins"` // browser origins besides the server's own host
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in paths
	cfg.expandEnvVars()

	// Relative catalog paths are resolved against the config file
	if cfg.Aliases.File != "" && !filepath.IsAbs(cfg.Aliases.File) {
		cfg.Aliases.File = filepath.Join(filepath.Dir(path), cfg.Aliases.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the SOARCLI_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("SOARCLI_CONFIG")
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/soarcli.toml",
			"./soarcli.toml",
			filepath.Join(os.Getenv("HOME"), ".config/soarcli/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, ErrNoConfig
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "soarcli"
	}
	if c.General.AgentName == "" {
		c.General.AgentName = "soar"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Console
	if c.Console.Prompt == "" {
		c.Console.Prompt = "soar> "
	}
	if c.Console.ContinuationPrompt == "" {
		c.Console.ContinuationPrompt = "  ... "
	}
	if c.Console.Mode == "" {
		c.Console.Mode = ModeAuto
	}
	if c.Console.History == "" {
		c.Console.History = HistorySQLite
	}
	if c.Console.HistoryLimit == 0 {
		c.Console.HistoryLimit = 1000
	}

	// Remote
	if c.Remote.Host == "" {
		c.Remote.Host = "127.0.0.1"
	}
	if c.Remote.Port == 0 {
		c.Remote.Port = 9470
	}
	if c.Remote.ReadTimeout.Duration == 0 {
		c.Remote.ReadTimeout.Duration = 30 * time.Second
	}
	if c.Remote.WriteTimeout.Duration == 0 {
		c.Remote.WriteTimeout.Duration = 30 * time.Second
	}
	if c.Remote.IdleTimeout.Duration == 0 {
		c.Remote.IdleTimeout.Duration = 120 * time.Second
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Console.HistoryPath = os.ExpandEnv(c.Console.HistoryPath)
	c.Aliases.File = os.ExpandEnv(c.Aliases.File)

	if c.Console.HistoryPath == "" {
		c.Console.HistoryPath = filepath.Join(c.General.DataDir, "history.db")
	}
}

// Validate checks enumerated and numeric settings
func (c *Config) Validate() error {
	switch c.Console.Mode {
	case ModeAuto, ModeTUI, ModeLine:
	default:
		return fmt.Errorf("invalid console mode %q (want auto, tui or line)", c.Console.Mode)
	}
	switch c.Console.History {
	case HistorySQLite, HistoryMemory, HistoryOff:
	default:
		return fmt.Errorf("invalid console history %q (want sqlite, memory or off)", c.Console.History)
	}
	if c.Console.HistoryLimit < 0 {
		return fmt.Errorf("invalid console history_limit %d", c.Console.HistoryLimit)
	}
	if c.Remote.Port < 1 || c.Remote.Port > 65535 {
		return fmt.Errorf("invalid remote port %d", c.Remote.Port)
	}
	return nil
}

// RemoteAddress returns the WebSocket console listen address
func (c *Config) RemoteAddress() string {
	return fmt.Sprintf("%s:%d", c.Remote.Host, c.Remote.Port)
}

// AliasLines returns the alias catalog for new sessions: defaults unless
// skipped, then the catalog file, then the inline lines. Later entries for
// the same name replace earlier ones when the lines are loaded in order.
func (c *Config) AliasLines(defaults []string) ([]string, error) {
	var lines []string
	if !c.Aliases.SkipDefaults {
		lines = append(lines, defaults...)
	}
	if c.Aliases.File != "" {
		fileLines, err := LoadAliasFile(c.Aliases.File)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fileLines...)
	}
	return append(lines, c.Aliases.Lines...), nil
}

// aliasFile is the YAML alias catalog layout
type aliasFile struct {
	Aliases []string `yaml:"aliases"`
}

// LoadAliasFile reads a YAML alias catalog of the form
//
//	aliases:
//	  - p print
//	  - w watch
func LoadAliasFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}

	var catalog aliasFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse alias file %s: %w", path, err)
	}
	return catalog.Aliases, nil
}
