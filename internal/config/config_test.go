package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "lowlymage.log", cfg.Log.File)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, 300*time.Millisecond, cfg.Pacing.AttackDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Pacing.EnemyDelay)
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOWLYMAGE_SEED", "42")
	t.Setenv("LOWLYMAGE_LOG_FORMAT", "json")
	t.Setenv("LOWLYMAGE_PACING_ENEMY_DELAY", "1s")
	t.Setenv("LOWLYMAGE_TELEMETRY_ENABLED", "true")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, time.Second, cfg.Pacing.EnemyDelay)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "seed: 7\nlog:\n  level: debug\npacing:\n  attack_delay: 0s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Duration(0), cfg.Pacing.AttackDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Pacing.EnemyDelay)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"text", Config{Log: LogConfig{Format: "text"}}, false},
		{"json upper", Config{Log: LogConfig{Format: "JSON"}}, false},
		{"xml", Config{Log: LogConfig{Format: "xml"}}, true},
		{"negative delay", Config{Log: LogConfig{Format: "text"}, Pacing: PacingConfig{EnemyDelay: -time.Second}}, true},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
