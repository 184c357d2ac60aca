package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Rules   RulesConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN,required,notEmpty"`
	AppID   string `env:"DISCORD_APP_ID,required,notEmpty"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. URL wins over the
// individual fields when set.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// RulesConfig holds game system settings
type RulesConfig struct {
	Locale     string        `env:"FU_LOCALE" envDefault:"en"`
	MessageTTL time.Duration `env:"FU_MESSAGE_TTL" envDefault:"168h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadRedis loads only the redis settings, for tools that never talk to Discord
func LoadRedis() (*RedisConfig, error) {
	cfg := &RedisConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Options builds go-redis client options
func (c *RedisConfig) Options() (*redis.Options, error) {
	if c.URL != "" {
		opts, err := redis.ParseURL(c.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}, nil
}
