package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/the-game-99/internal/game/engine"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	MinPlayers  int `yaml:"min_players"`  // 开局最少人数
	MaxPlayers  int `yaml:"max_players"`  // 房间人数上限
	HandSize    int `yaml:"hand_size"`    // 手牌上限
	DeckSize    int `yaml:"deck_size"`    // 牌的张数
	RoomTimeout int `yaml:"room_timeout"` // 未开局房间的回收时限（分钟）
}

// RoomTimeoutDuration 返回房间回收时限
func (c *GameConfig) RoomTimeoutDuration() time.Duration {
	return time.Duration(c.RoomTimeout) * time.Minute
}

// EngineConfig 转换为引擎参数
func (c *GameConfig) EngineConfig() engine.Config {
	return engine.Config{
		MinPlayers: c.MinPlayers,
		MaxPlayers: c.MaxPlayers,
		HandSize:   c.HandSize,
		DeckSize:   c.DeckSize,
	}
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1999
	}
	if cfg.Server.MaxConnections == 0 {
		cfg.Server.MaxConnections = 1024
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.MinPlayers == 0 {
		cfg.Game.MinPlayers = 2
	}
	if cfg.Game.MaxPlayers == 0 {
		cfg.Game.MaxPlayers = 10
	}
	if cfg.Game.HandSize == 0 {
		cfg.Game.HandSize = 6
	}
	if cfg.Game.DeckSize == 0 {
		cfg.Game.DeckSize = 99
	}
	if cfg.Game.RoomTimeout == 0 {
		cfg.Game.RoomTimeout = 30
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           1999,
			MaxConnections: 1024,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Game: GameConfig{
			MinPlayers:  2,
			MaxPlayers:  10,
			HandSize:    6,
			DeckSize:    99,
			RoomTimeout: 30,
		},
	}
}
