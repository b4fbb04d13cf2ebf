// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Bot        BotConfig        `mapstructure:"bot"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Game       GameConfig       `mapstructure:"game"`
	Giveaway   GiveawayConfig   `mapstructure:"giveaway"`
	Countries  CountriesConfig  `mapstructure:"countries"`
	Moderation ModerationConfig `mapstructure:"moderation"`
	Chatter    ChatterConfig    `mapstructure:"chatter"`
}

// BotConfig holds Discord bot configuration.
type BotConfig struct {
	Token string `mapstructure:"token"`

	// Prefix is the character commands start with
	Prefix string `mapstructure:"prefix"`

	// AdminIDs are allowed to run broadcast and giveaway commands
	AdminIDs []string `mapstructure:"admin_ids"`

	// HeckleUserID receives canned replies while a game is running
	HeckleUserID string `mapstructure:"heckle_user_id"`

	// StatusChannelID receives the startup notice, if set
	StatusChannelID string `mapstructure:"status_channel_id"`
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GameConfig holds trivia game tuning.
type GameConfig struct {
	// RoundDuration is how long players have to guess
	RoundDuration time.Duration `mapstructure:"round_duration"`

	// StartDelay is the pause between the start announcement and the first round
	StartDelay time.Duration `mapstructure:"start_delay"`

	// NextRoundDelay is the pause between a win and the next round
	NextRoundDelay time.Duration `mapstructure:"next_round_delay"`

	// XPMin and XPMax bound the random xp awarded per win (inclusive)
	XPMin int `mapstructure:"xp_min"`
	XPMax int `mapstructure:"xp_max"`

	// InfectionDuration is how long a wrong guess marks the guesser
	InfectionDuration time.Duration `mapstructure:"infection_duration"`

	// InfectionSweepInterval is how often expired infections are cleared
	InfectionSweepInterval time.Duration `mapstructure:"infection_sweep_interval"`
}

// GiveawayConfig holds giveaway tuning.
type GiveawayConfig struct {
	// SweepInterval is how often expired giveaways are resolved
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// CountriesConfig holds the country data source configuration.
type CountriesConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// ModerationConfig holds anti-spam and nickname filter tuning.
type ModerationConfig struct {
	// SpamWindow and SpamMaxMessages define the flood threshold
	SpamWindow      time.Duration `mapstructure:"spam_window"`
	SpamMaxMessages int           `mapstructure:"spam_max_messages"`

	// BlockedNicknameWords trigger a nickname reset
	BlockedNicknameWords []string `mapstructure:"blocked_nickname_words"`
}

// ChatterConfig holds the generative chat pass-through configuration.
// Chatter is disabled when Endpoint is empty.
type ChatterConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the given directory; a missing file is fine
// because every value can come from the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. BOT_TOKEN, REDIS_ADDR, GAME_ROUND_DURATION
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key is registered
// here, including the ones whose default is empty: viper only surfaces an
// environment variable for keys it already knows about, so an unregistered
// key would be invisible to env-only deployments.
func setDefaults(v *viper.Viper) {
	v.SetDefault("bot.token", "")
	v.SetDefault("bot.prefix", "?")
	v.SetDefault("bot.admin_ids", []string{})
	v.SetDefault("bot.heckle_user_id", "")
	v.SetDefault("bot.status_channel_id", "")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("game.round_duration", "60s")
	v.SetDefault("game.start_delay", "2s")
	v.SetDefault("game.next_round_delay", "3s")
	v.SetDefault("game.xp_min", 15)
	v.SetDefault("game.xp_max", 25)
	v.SetDefault("game.infection_duration", "10m")
	v.SetDefault("game.infection_sweep_interval", "60s")

	v.SetDefault("giveaway.sweep_interval", "5s")

	v.SetDefault("countries.base_url", "https://restcountries.com")
	v.SetDefault("countries.timeout", "10s")
	v.SetDefault("countries.cache_ttl", "1h")

	v.SetDefault("moderation.spam_window", "10s")
	v.SetDefault("moderation.spam_max_messages", 5)
	v.SetDefault("moderation.blocked_nickname_words", []string{})

	v.SetDefault("chatter.endpoint", "")
	v.SetDefault("chatter.api_key", "")
	v.SetDefault("chatter.model", "")
	v.SetDefault("chatter.timeout", "30s")
}

// IsAdmin checks if a user ID is in the admin list.
func (c *Config) IsAdmin(userID string) bool {
	for _, id := range c.Bot.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
