package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cradium/internal/infrastructure/config"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "cradium.db", cfg.Database.Path)
	assert.Equal(t, time.Second, cfg.Automation.TickInterval)
	assert.Equal(t, "sh", cfg.Scripts.Interpreter)
	assert.Equal(t, 10*time.Second, cfg.Scripts.Timeout)
	assert.Equal(t, "Engineer", cfg.Game.PlayerName)
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
  pulse_addr: ":9001"
database:
  type: sqlite
  path: /tmp/game.db
automation:
  tick_interval: 250ms
scripts:
  interpreter: python3
  timeout: 5s
game:
  player_name: Vex
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, ":9001", cfg.Server.PulseAddr)
	assert.Equal(t, "/tmp/game.db", cfg.Database.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Automation.TickInterval)
	assert.Equal(t, "python3", cfg.Scripts.Interpreter)
	assert.Equal(t, 5*time.Second, cfg.Scripts.Timeout)
	assert.Equal(t, "Vex", cfg.Game.PlayerName)
}

func TestEnvOverridesFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CRADIUM_SERVER_ADDR", ":7777")
	t.Setenv("CRADIUM_GAME_PLAYER_NAME", "Nova")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Addr)
	assert.Equal(t, "Nova", cfg.Game.PlayerName)
}

func TestInvalidDatabaseTypeRejected(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CRADIUM_DATABASE_TYPE", "oracle")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
