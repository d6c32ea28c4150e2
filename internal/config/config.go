// Package config loads runtime settings from flags, the environment and an
// optional lowlymage.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. LOWLYMAGE_SEED.
const EnvPrefix = "LOWLYMAGE"

// Config holds all runtime settings.
type Config struct {
	// Seed for random number generation. A seed of 0 means a random seed will be generated.
	Seed      int64           `mapstructure:"seed"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Pacing    PacingConfig    `mapstructure:"pacing"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"` // Used by the interactive game only
}

// TelemetryConfig controls tracing export.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// PacingConfig holds the presentation delays of the interactive game.
type PacingConfig struct {
	AttackDelay time.Duration `mapstructure:"attack_delay"`
	EnemyDelay  time.Duration `mapstructure:"enemy_delay"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "lowlymage.log")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("pacing.attack_delay", 300*time.Millisecond)
	v.SetDefault("pacing.enemy_delay", 500*time.Millisecond)
}

// Load reads the configuration into a Config. When file is empty, lowlymage.yaml
// is looked up in the working directory and a missing file is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("lowlymage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values viper cannot type-check.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: want text or json", c.Log.Format)
	}
	if c.Pacing.AttackDelay < 0 || c.Pacing.EnemyDelay < 0 {
		return errors.New("pacing delays must not be negative")
	}
	return nil
}
