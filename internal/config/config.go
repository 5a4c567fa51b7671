// Package config loads runtime settings from defaults, an optional config
// file, CRADLE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/terraincognita07/cradle/internal/security"
)

const EnvPrefix = "CRADLE"

var (
	ErrInvalidPort     = errors.New("port must be between 1 and 65535")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type Config struct {
	Port       int       `mapstructure:"port"`
	DBPath     string    `mapstructure:"db_path"`
	TZ         string    `mapstructure:"tz"`
	SecretKey  string    `mapstructure:"secret_key"`
	SeedSample bool      `mapstructure:"seed_sample"`
	Log        LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"port":        "port",
	"db-path":     "db_path",
	"tz":          "tz",
	"seed-sample": "seed_sample",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("db_path", "")
	v.SetDefault("tz", "UTC")
	v.SetDefault("secret_key", "")
	v.SetDefault("seed_sample", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
}

// Load resolves the configuration. configFile may be empty; flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for flagName, key := range flagKeys {
			if flag := flags.Lookup(flagName); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	cfg.SecretKey = strings.TrimSpace(cfg.SecretKey)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}
	if _, err := cfg.Location(); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Log.Level)) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}
	if err := security.ValidateSecretKey(cfg.SecretKey); err != nil {
		return fmt.Errorf("secret_key: %w", err)
	}
	return nil
}

func (cfg Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(cfg.TZ)
	if name == "" {
		return time.UTC, nil
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, cfg.TZ)
	}
	return location, nil
}

// AuthEnabled reports whether the API requires bearer tokens.
func (cfg Config) AuthEnabled() bool {
	return cfg.SecretKey != ""
}

func (cfg Config) ListenAddress() string {
	return fmt.Sprintf(":%d", cfg.Port)
}
