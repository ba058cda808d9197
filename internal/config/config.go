package config

import (
	"os"
	"sort"
	"strconv"

	"github.com/spf13/viper"

	"hue/internal/logging"
)

// Config represents the complete hue configuration
type Config struct {
	Server  ServerConfig  `json:"server" mapstructure:"server"`
	Mascots MascotsConfig `json:"mascots" mapstructure:"mascots"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host string `json:"host" mapstructure:"host"`
	Port int    `json:"port" mapstructure:"port"`
}

// MascotsConfig contains animal data source configuration
type MascotsConfig struct {
	Source string `json:"source" mapstructure:"source"`
	Cache  bool   `json:"cache" mapstructure:"cache"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// MetricsConfig contains metrics configuration
type MetricsConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Mascots: MascotsConfig{
			Source: "animals.json",
			Cache:  false,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// EnvOverride records a configuration value that came from the environment
type EnvOverride struct {
	EnvVar    string `json:"envVar"`
	Path      string `json:"path"`
	FromValue string `json:"fromValue"`
}

// LoadResult carries the loaded configuration plus provenance details
type LoadResult struct {
	Config       *Config
	ConfigPath   string
	UsedDefaults bool
	EnvOverrides []EnvOverride
}

// Load loads configuration from <dir>/config.json, applying env overrides
func Load(dir string) (*Config, error) {
	result, err := LoadWithDetails(dir)
	if err != nil {
		return nil, err
	}
	return result.Config, nil
}

// LoadWithDetails loads configuration and reports where each value came from.
// HUE_CONFIG_PATH points at an explicit config file and errors if unreadable;
// otherwise <dir>/config.json is used when present, defaults when not.
func LoadWithDetails(dir string) (*LoadResult, error) {
	v := viper.New()

	result := &LoadResult{}

	if path := os.Getenv("HUE_CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		result.ConfigPath = v.ConfigFileUsed()
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
			result.UsedDefaults = true
		} else {
			result.ConfigPath = v.ConfigFileUsed()
		}
	}

	cfg := DefaultConfig()
	if !result.UsedDefaults {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	result.EnvOverrides = applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

type envVarMapping struct {
	path string
	kind string // "string", "int", or "bool"
}

var envVarMappings = map[string]envVarMapping{
	"HUE_PORT":            {path: "server.port", kind: "int"},
	"HUE_HOST":            {path: "server.host", kind: "string"},
	"HUE_MASCOTS":         {path: "mascots.source", kind: "string"},
	"HUE_MASCOTS_CACHE":   {path: "mascots.cache", kind: "bool"},
	"HUE_LOG_LEVEL":       {path: "logging.level", kind: "string"},
	"HUE_LOG_FORMAT":      {path: "logging.format", kind: "string"},
	"HUE_METRICS_ENABLED": {path: "metrics.enabled", kind: "bool"},
}

// applyEnvOverrides applies recognized environment variables to the config.
// Unparseable values are skipped rather than erroring.
func applyEnvOverrides(cfg *Config) []EnvOverride {
	names := make([]string, 0, len(envVarMappings))
	for name := range envVarMappings {
		names = append(names, name)
	}
	sort.Strings(names)

	var overrides []EnvOverride
	for _, name := range names {
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}

		mapping := envVarMappings[name]

		var value interface{}
		switch mapping.kind {
		case "int":
			n, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			value = n
		case "bool":
			b, err := strconv.ParseBool(raw)
			if err != nil {
				continue
			}
			value = b
		default:
			value = raw
		}

		if applyOverride(cfg, mapping.path, value) {
			overrides = append(overrides, EnvOverride{
				EnvVar:    name,
				Path:      mapping.path,
				FromValue: raw,
			})
		}
	}

	return overrides
}

// applyOverride sets a single config value by dotted path
func applyOverride(cfg *Config, path string, value interface{}) bool {
	switch path {
	case "server.port":
		if n, ok := value.(int); ok {
			cfg.Server.Port = n
			return true
		}
	case "server.host":
		if s, ok := value.(string); ok {
			cfg.Server.Host = s
			return true
		}
	case "mascots.source":
		if s, ok := value.(string); ok {
			cfg.Mascots.Source = s
			return true
		}
	case "mascots.cache":
		if b, ok := value.(bool); ok {
			cfg.Mascots.Cache = b
			return true
		}
	case "logging.level":
		if s, ok := value.(string); ok {
			cfg.Logging.Level = s
			return true
		}
	case "logging.format":
		if s, ok := value.(string); ok {
			cfg.Logging.Format = s
			return true
		}
	case "metrics.enabled":
		if b, ok := value.(bool); ok {
			cfg.Metrics.Enabled = b
			return true
		}
	}
	return false
}

// GetSupportedEnvVars returns the environment variables hue recognizes
func GetSupportedEnvVars() []string {
	vars := make([]string, 0, len(envVarMappings)+1)
	for name := range envVarMappings {
		vars = append(vars, name)
	}
	vars = append(vars, "HUE_CONFIG_PATH")
	sort.Strings(vars)
	return vars
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	if c.Mascots.Source == "" {
		return &ConfigError{Field: "mascots.source", Message: "animal data path must not be empty"}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: err.Error()}
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return &ConfigError{Field: "logging.format", Message: err.Error()}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
