package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix       = "player:"
	guildPlayersKeyPrefix = "guild_players:"

	// Set of "<guild>:<user>" members currently infected
	infectedPlayersKey = "infected_players"
)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(guildID, userID string) string {
	return fmt.Sprintf("%s%s:%s", playerKeyPrefix, guildID, userID)
}

// GetPlayer retrieves a player record from Redis. A missing record is not an
// error: players are created lazily on first interaction, so the caller gets
// a fresh default record instead.
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKey(input.GuildID, input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.Player{
				GuildID: input.GuildID,
				UserID:  input.UserID,
			}, nil
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// SavePlayer persists a player to Redis and keeps the guild membership and
// infection indexes in step with the record
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player

	if player.GuildID == "" || player.UserID == "" {
		return errors.New("player guild ID and user ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	infectedMember := fmt.Sprintf("%s:%s", player.GuildID, player.UserID)

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	pipe.Set(ctx, playerKey(player.GuildID, player.UserID), playerJSON, 0)

	guildPlayersKey := fmt.Sprintf("%s%s", guildPlayersKeyPrefix, player.GuildID)
	pipe.SAdd(ctx, guildPlayersKey, player.UserID)

	if player.InfectedUntil != nil {
		pipe.SAdd(ctx, infectedPlayersKey, infectedMember)
	} else {
		pipe.SRem(ctx, infectedPlayersKey, infectedMember)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// ListInfected retrieves every player currently carrying the infected status
func (r *redisRepository) ListInfected(ctx context.Context) (*ListInfectedOutput, error) {
	members, err := r.client.SMembers(ctx, infectedPlayersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list infected players: %w", err)
	}

	refs := make([]InfectedRef, 0, len(members))
	for _, member := range members {
		guildID, userID, ok := strings.Cut(member, ":")
		if !ok {
			// Malformed index entry, skip it
			continue
		}
		refs = append(refs, InfectedRef{GuildID: guildID, UserID: userID})
	}

	return &ListInfectedOutput{Refs: refs}, nil
}

// GetGuildPlayers retrieves all known players of a guild from Redis
func (r *redisRepository) GetGuildPlayers(ctx context.Context, input *GetGuildPlayersInput) (*GetGuildPlayersOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	guildPlayersKey := fmt.Sprintf("%s%s", guildPlayersKeyPrefix, input.GuildID)
	userIDs, err := r.client.SMembers(ctx, guildPlayersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for guild: %w", err)
	}

	if len(userIDs) == 0 {
		return &GetGuildPlayersOutput{Players: []*models.Player{}}, nil
	}

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.StringCmd, len(userIDs))

	for _, userID := range userIDs {
		playerCommands[userID] = pipe.Get(ctx, playerKey(input.GuildID, userID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(userIDs))
	for userID, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record was deleted between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", userID, err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", userID, err)
		}

		players = append(players, &player)
	}

	return &GetGuildPlayersOutput{Players: players}, nil
}
