package guild

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

const (
	// Key prefixes for Redis
	settingsKeyPrefix = "guild_settings:"

	// Set of all guild IDs with stored settings
	guildsKey = "guilds"
)

// Config holds configuration for the Redis guild repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guild repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetSettings retrieves a guild's settings from Redis. A guild that was never
// configured gets the defaults.
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	settingsKey := fmt.Sprintf("%s%s", settingsKeyPrefix, input.GuildID)
	settingsJSON, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.GuildSettings{
				GuildID:    input.GuildID,
				Difficulty: models.DifficultyNormal,
			}, nil
		}
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	var settings models.GuildSettings
	if err := json.Unmarshal([]byte(settingsJSON), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings persists a guild's settings to Redis
func (r *redisRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	settings := input.Settings

	if settings.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal guild settings: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	settingsKey := fmt.Sprintf("%s%s", settingsKeyPrefix, settings.GuildID)
	pipe.Set(ctx, settingsKey, settingsJSON, 0)
	pipe.SAdd(ctx, guildsKey, settings.GuildID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save guild settings: %w", err)
	}

	return nil
}

// ListGuilds retrieves every guild with stored settings from Redis
func (r *redisRepository) ListGuilds(ctx context.Context) (*ListGuildsOutput, error) {
	guildIDs, err := r.client.SMembers(ctx, guildsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}

	if len(guildIDs) == 0 {
		return &ListGuildsOutput{Settings: []*models.GuildSettings{}}, nil
	}

	pipe := r.client.Pipeline()
	settingsCommands := make(map[string]*redis.StringCmd, len(guildIDs))

	for _, guildID := range guildIDs {
		settingsKey := fmt.Sprintf("%s%s", settingsKeyPrefix, guildID)
		settingsCommands[guildID] = pipe.Get(ctx, settingsKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	settings := make([]*models.GuildSettings, 0, len(guildIDs))
	for guildID, cmd := range settingsCommands {
		settingsJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get settings for guild %s: %w", guildID, err)
		}

		var s models.GuildSettings
		if err := json.Unmarshal([]byte(settingsJSON), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal settings for guild %s: %w", guildID, err)
		}

		settings = append(settings, &s)
	}

	return &ListGuildsOutput{Settings: settings}, nil
}
