// Package config loads the engine configuration from a yaml file,
// a .env file, and CRADIUM_-prefixed environment variables, in
// ascending priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Automation AutomationConfig `mapstructure:"automation"`
	Scripts    ScriptsConfig    `mapstructure:"scripts"`
	Game       GameConfig       `mapstructure:"game"`
}

type ServerConfig struct {
	// Addr is the main API listen address.
	Addr string `mapstructure:"addr" validate:"required"`
	// PulseAddr is the websocket pulse listener; empty disables it.
	PulseAddr string `mapstructure:"pulse_addr"`
}

type DatabaseConfig struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite memory"`
	// URL is the postgres DSN.
	URL string `mapstructure:"url" validate:"required_if=Type postgres"`
	// Path is the sqlite file; empty means in-memory.
	Path string `mapstructure:"path"`
}

type AutomationConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"required"`
}

type ScriptsConfig struct {
	Interpreter string        `mapstructure:"interpreter" validate:"required"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"required"`
}

type GameConfig struct {
	PlayerName string `mapstructure:"player_name" validate:"required"`
	// SeedFile holds the starter materials and recipes; empty skips
	// seeding.
	SeedFile string `mapstructure:"seed_file"`
}

// Load reads configuration with priority: env vars over config file
// over defaults. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("CRADIUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults registered here so AutomaticEnv can bind the keys.
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.pulse_addr", "")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.url", "")
	v.SetDefault("database.path", "")
	v.SetDefault("automation.tick_interval", time.Second)
	v.SetDefault("scripts.interpreter", "sh")
	v.SetDefault("scripts.timeout", 10*time.Second)
	v.SetDefault("game.player_name", "Engineer")
	v.SetDefault("game.seed_file", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// SetDefaults fills every unset field with its default.
func SetDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "cradium.db"
	}
	if cfg.Automation.TickInterval <= 0 {
		cfg.Automation.TickInterval = time.Second
	}
	if cfg.Scripts.Interpreter == "" {
		cfg.Scripts.Interpreter = "sh"
	}
	if cfg.Scripts.Timeout <= 0 {
		cfg.Scripts.Timeout = 10 * time.Second
	}
	if cfg.Game.PlayerName == "" {
		cfg.Game.PlayerName = "Engineer"
	}
}
