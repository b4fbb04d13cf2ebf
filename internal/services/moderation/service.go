package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HIDORAKAI002/flagbot/internal/common/clock"
	playerRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/player"
)

// muteLadder escalates the timeout with each repeat offense; offenses past
// the end stay at the last step
var muteLadder = []time.Duration{
	time.Minute,
	5 * time.Minute,
	30 * time.Minute,
	2 * time.Hour,
	24 * time.Hour,
}

// Config holds the dependencies and tuning for the moderation service
type Config struct {
	PlayerRepo playerRepo.Repository
	Clock      clock.Clock

	// SpamWindow is the sliding window messages are counted in
	SpamWindow time.Duration

	// SpamMaxMessages is the number of messages allowed inside the window
	SpamMaxMessages int

	// BlockedWords are substrings nicknames may not contain
	BlockedWords []string
}

// service implements the Service interface
type service struct {
	playerRepo      playerRepo.Repository
	clock           clock.Clock
	spamWindow      time.Duration
	spamMaxMessages int
	blockedWords    []string

	mu sync.Mutex
	// recent holds per-sender message timestamps inside the spam window,
	// keyed by guild:user. The tracker is in-memory only; a restart
	// forgives an in-progress burst but never the persisted offense count.
	recent map[string][]time.Time
}

// New creates a new moderation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	spamWindow := cfg.SpamWindow
	if spamWindow == 0 {
		spamWindow = 10 * time.Second
	}
	spamMaxMessages := cfg.SpamMaxMessages
	if spamMaxMessages == 0 {
		spamMaxMessages = 5
	}

	blocked := make([]string, 0, len(cfg.BlockedWords))
	for _, word := range cfg.BlockedWords {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			blocked = append(blocked, word)
		}
	}

	return &service{
		playerRepo:      cfg.PlayerRepo,
		clock:           clk,
		spamWindow:      spamWindow,
		spamMaxMessages: spamMaxMessages,
		blockedWords:    blocked,
		recent:          make(map[string][]time.Time),
	}, nil
}

// RecordMessage tracks one message and reports whether the sender crossed
// the spam threshold. On an offense the tracker resets, so the next burst is
// counted from scratch.
func (s *service) RecordMessage(ctx context.Context, input *RecordMessageInput) (*RecordMessageOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	now := s.clock.Now()
	key := input.GuildID + ":" + input.UserID

	s.mu.Lock()
	kept := s.recent[key][:0]
	for _, ts := range s.recent[key] {
		if now.Sub(ts) < s.spamWindow {
			kept = append(kept, ts)
		}
	}
	kept = append(kept, now)

	if len(kept) <= s.spamMaxMessages {
		s.recent[key] = kept
		s.mu.Unlock()
		return &RecordMessageOutput{}, nil
	}

	delete(s.recent, key)
	s.mu.Unlock()

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	player.SpamOffenses++
	if player.CreatedAt.IsZero() {
		player.CreatedAt = now
	}
	player.UpdatedAt = now

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	step := player.SpamOffenses - 1
	if step >= len(muteLadder) {
		step = len(muteLadder) - 1
	}

	log.Info().
		Str("guild_id", input.GuildID).
		Str("user_id", input.UserID).
		Int("offenses", player.SpamOffenses).
		Dur("mute", muteLadder[step]).
		Msg("spam threshold exceeded")

	return &RecordMessageOutput{
		Spam:         true,
		OffenseCount: player.SpamOffenses,
		MuteDuration: muteLadder[step],
	}, nil
}

// CheckNickname reports whether a nickname contains a blocked word. The
// match is a case-insensitive substring check.
func (s *service) CheckNickname(ctx context.Context, input *CheckNicknameInput) (*CheckNicknameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lowered := strings.ToLower(input.Nickname)
	for _, word := range s.blockedWords {
		if strings.Contains(lowered, word) {
			return &CheckNicknameOutput{Blocked: true, Word: word}, nil
		}
	}

	return &CheckNicknameOutput{}, nil
}
