package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "?", cfg.Bot.Prefix)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 60*time.Second, cfg.Game.RoundDuration)
	assert.Equal(t, 3*time.Second, cfg.Game.NextRoundDelay)
	assert.Equal(t, 15, cfg.Game.XPMin)
	assert.Equal(t, 25, cfg.Game.XPMax)
	assert.Equal(t, 10*time.Minute, cfg.Game.InfectionDuration)
	assert.Equal(t, 5*time.Second, cfg.Giveaway.SweepInterval)
	assert.Equal(t, "https://restcountries.com", cfg.Countries.BaseURL)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("GAME_ROUND_DURATION", "90s")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Bot.Token)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 90*time.Second, cfg.Game.RoundDuration)
}

func TestLoadEnvOnly(t *testing.T) {
	// No config file at all, everything from the environment. This covers the
	// keys whose default is empty, which viper only reads from the env once
	// they are registered.
	t.Setenv("BOT_TOKEN", "env-token")
	t.Setenv("BOT_ADMIN_IDS", "admin-1,admin-2")
	t.Setenv("BOT_HECKLE_USER_ID", "heckle-target")
	t.Setenv("REDIS_PASSWORD", "hunter2")
	t.Setenv("MODERATION_BLOCKED_NICKNAME_WORDS", "bad,worse")
	t.Setenv("CHATTER_ENDPOINT", "https://llm.example.com/v1/complete")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Bot.Token)
	assert.Equal(t, []string{"admin-1", "admin-2"}, cfg.Bot.AdminIDs)
	assert.Equal(t, "heckle-target", cfg.Bot.HeckleUserID)
	assert.Equal(t, "hunter2", cfg.Redis.Password)
	assert.Equal(t, []string{"bad", "worse"}, cfg.Moderation.BlockedNicknameWords)
	assert.Equal(t, "https://llm.example.com/v1/complete", cfg.Chatter.Endpoint)
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{
		Bot: BotConfig{AdminIDs: []string{"admin-1", "admin-2"}},
	}

	assert.True(t, cfg.IsAdmin("admin-1"))
	assert.False(t, cfg.IsAdmin("someone-else"))
}
