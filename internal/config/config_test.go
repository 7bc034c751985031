package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	// Create a temp config file
	content := `
server:
  host: "127.0.0.1"
  port: 8080
  max_connections: 5000

redis:
  addr: "redis:6379"
  password: "secret"
  db: 1

game:
  min_players: 3
  max_players: 6
  hand_size: 5
  deck_size: 50
  room_timeout: 15
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify loaded values
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5000, cfg.Server.MaxConnections)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, 3, cfg.Game.MinPlayers)
	assert.Equal(t, 6, cfg.Game.MaxPlayers)
	assert.Equal(t, 5, cfg.Game.HandSize)
	assert.Equal(t, 50, cfg.Game.DeckSize)
	assert.Equal(t, 15*time.Minute, cfg.Game.RoomTimeoutDuration())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("server:\n  port: 4000\n"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, 1024, cfg.Server.MaxConnections)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Game.MinPlayers)
	assert.Equal(t, 10, cfg.Game.MaxPlayers)
	assert.Equal(t, 6, cfg.Game.HandSize)
	assert.Equal(t, 99, cfg.Game.DeckSize)
	assert.Equal(t, 30, cfg.Game.RoomTimeout)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("server: [broken"), 0o600)
	require.NoError(t, err)

	_, err = Load(configPath)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 1999, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Game.MinPlayers)
	assert.Equal(t, 10, cfg.Game.MaxPlayers)
}

func TestGameConfig_EngineConfig(t *testing.T) {
	t.Parallel()

	cfg := Default()
	ec := cfg.Game.EngineConfig()
	assert.Equal(t, cfg.Game.MinPlayers, ec.MinPlayers)
	assert.Equal(t, cfg.Game.MaxPlayers, ec.MaxPlayers)
	assert.Equal(t, cfg.Game.HandSize, ec.HandSize)
	assert.Equal(t, cfg.Game.DeckSize, ec.DeckSize)
}
