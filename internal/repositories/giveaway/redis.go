package giveaway

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
	giveawayKeyPrefix = "giveaway:"
	entrantsKeyPrefix = "giveaway_entrants:"
	messageKeyPrefix  = "giveaway_message:"

	// Set of giveaway IDs still marked active
	activeGiveawaysKey = "giveaways:active"
)

// ErrGiveawayNotFound is returned when a giveaway is not found
var ErrGiveawayNotFound = errors.New("giveaway not found")

// Config holds configuration for the Redis giveaway repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed giveaway repository
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

// SaveGiveaway persists a giveaway to Redis. The active index tracks the
// Active flag, so saving a deactivated giveaway removes it from the index.
func (r *redisRepository) SaveGiveaway(ctx context.Context, input *SaveGiveawayInput) error {
	if input == nil || input.Giveaway == nil {
		return errors.New("input and giveaway cannot be nil")
	}

	g := input.Giveaway

	if g.ID == "" {
		return errors.New("giveaway ID cannot be empty")
	}

	giveawayJSON, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal giveaway: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	giveawayKey := fmt.Sprintf("%s%s", giveawayKeyPrefix, g.ID)
	pipe.Set(ctx, giveawayKey, giveawayJSON, 0)

	if g.MessageID != "" {
		messageKey := fmt.Sprintf("%s%s", messageKeyPrefix, g.MessageID)
		pipe.Set(ctx, messageKey, g.ID, 0)
	}

	if g.Active {
		pipe.SAdd(ctx, activeGiveawaysKey, g.ID)
	} else {
		pipe.SRem(ctx, activeGiveawaysKey, g.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save giveaway: %w", err)
	}

	return nil
}

// GetGiveaway retrieves a giveaway by ID from Redis
func (r *redisRepository) GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error) {
	if input == nil || input.GiveawayID == "" {
		return nil, errors.New("input and giveaway ID cannot be empty")
	}

	giveawayKey := fmt.Sprintf("%s%s", giveawayKeyPrefix, input.GiveawayID)
	giveawayJSON, err := r.client.Get(ctx, giveawayKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGiveawayNotFound
		}
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}

	var g models.Giveaway
	if err := json.Unmarshal([]byte(giveawayJSON), &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal giveaway: %w", err)
	}

	return &g, nil
}

// GetGiveawayByMessage retrieves a giveaway by its announcement message
func (r *redisRepository) GetGiveawayByMessage(ctx context.Context, input *GetGiveawayByMessageInput) (*models.Giveaway, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	messageKey := fmt.Sprintf("%s%s", messageKeyPrefix, input.MessageID)
	giveawayID, err := r.client.Get(ctx, messageKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGiveawayNotFound
		}
		return nil, fmt.Errorf("failed to get giveaway ID for message: %w", err)
	}

	return r.GetGiveaway(ctx, &GetGiveawayInput{
		GiveawayID: giveawayID,
	})
}

// ListActive retrieves every giveaway still marked active from Redis
func (r *redisRepository) ListActive(ctx context.Context) (*ListActiveOutput, error) {
	giveawayIDs, err := r.client.SMembers(ctx, activeGiveawaysKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list active giveaways: %w", err)
	}

	if len(giveawayIDs) == 0 {
		return &ListActiveOutput{Giveaways: []*models.Giveaway{}}, nil
	}

	pipe := r.client.Pipeline()
	giveawayCommands := make(map[string]*redis.StringCmd, len(giveawayIDs))

	for _, giveawayID := range giveawayIDs {
		giveawayKey := fmt.Sprintf("%s%s", giveawayKeyPrefix, giveawayID)
		giveawayCommands[giveawayID] = pipe.Get(ctx, giveawayKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get giveaways: %w", err)
	}

	giveaways := make([]*models.Giveaway, 0, len(giveawayIDs))
	for giveawayID, cmd := range giveawayCommands {
		giveawayJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record removed between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get giveaway %s: %w", giveawayID, err)
		}

		var g models.Giveaway
		if err := json.Unmarshal([]byte(giveawayJSON), &g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal giveaway %s: %w", giveawayID, err)
		}

		giveaways = append(giveaways, &g)
	}

	return &ListActiveOutput{Giveaways: giveaways}, nil
}

// AddEntrant records a user's entry in Redis; sets make re-entry a no-op
func (r *redisRepository) AddEntrant(ctx context.Context, input *AddEntrantInput) error {
	if input == nil || input.GiveawayID == "" || input.UserID == "" {
		return errors.New("input, giveaway ID and user ID cannot be empty")
	}

	entrantsKey := fmt.Sprintf("%s%s", entrantsKeyPrefix, input.GiveawayID)
	if err := r.client.SAdd(ctx, entrantsKey, input.UserID).Err(); err != nil {
		return fmt.Errorf("failed to add entrant: %w", err)
	}

	return nil
}

// GetEntrants retrieves every entrant of a giveaway from Redis
func (r *redisRepository) GetEntrants(ctx context.Context, input *GetEntrantsInput) (*GetEntrantsOutput, error) {
	if input == nil || input.GiveawayID == "" {
		return nil, errors.New("input and giveaway ID cannot be empty")
	}

	entrantsKey := fmt.Sprintf("%s%s", entrantsKeyPrefix, input.GiveawayID)
	userIDs, err := r.client.SMembers(ctx, entrantsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entrants: %w", err)
	}

	return &GetEntrantsOutput{UserIDs: userIDs}, nil
}
