package infection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HIDORAKAI002/flagbot/internal/common/clock"
	playerRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/player"
)

// Config holds the dependencies and tuning for the infection sweeper
type Config struct {
	PlayerRepo playerRepo.Repository
	Notifier   Notifier
	Clock      clock.Clock

	// SweepInterval is how often Run checks for expired infections
	SweepInterval time.Duration
}

// service implements the Service interface
type service struct {
	playerRepo    playerRepo.Repository
	notifier      Notifier
	clock         clock.Clock
	sweepInterval time.Duration
}

// New creates a new infection sweeper
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}
	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	sweepInterval := cfg.SweepInterval
	if sweepInterval == 0 {
		sweepInterval = time.Minute
	}

	return &service{
		playerRepo:    cfg.PlayerRepo,
		notifier:      cfg.Notifier,
		clock:         clk,
		sweepInterval: sweepInterval,
	}, nil
}

// Run sweeps on the configured interval until ctx is cancelled
func (s *service) Run(ctx context.Context) {
	log.Info().Dur("interval", s.sweepInterval).Msg("infection sweeper started")

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("infection sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.ExpireDue(ctx); err != nil {
				log.Error().Err(err).Msg("infection sweep failed")
			}
		}
	}
}

// ExpireDue clears every infection whose window has elapsed. A player whose
// infection was already cured between listing and loading is skipped, so the
// sweep is safe to run concurrently with the game.
func (s *service) ExpireDue(ctx context.Context) (*ExpireDueOutput, error) {
	listed, err := s.playerRepo.ListInfected(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list infected players: %w", err)
	}

	now := s.clock.Now()
	output := &ExpireDueOutput{}

	for _, ref := range listed.Refs {
		player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			GuildID: ref.GuildID,
			UserID:  ref.UserID,
		})
		if err != nil {
			log.Error().Err(err).
				Str("guild_id", ref.GuildID).
				Str("user_id", ref.UserID).
				Msg("failed to load infected player")
			continue
		}

		if player.InfectedUntil == nil || player.InfectedUntil.After(now) {
			continue
		}

		player.InfectedUntil = nil
		player.UpdatedAt = now
		if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
			log.Error().Err(err).
				Str("guild_id", ref.GuildID).
				Str("user_id", ref.UserID).
				Msg("failed to clear expired infection")
			continue
		}

		// Best effort: the member may have left or outrank the bot
		if err := s.notifier.SetNickname(ctx, ref.GuildID, ref.UserID, ""); err != nil {
			log.Warn().Err(err).
				Str("guild_id", ref.GuildID).
				Str("user_id", ref.UserID).
				Msg("failed to reset nickname after infection expiry")
		}

		output.Expired = append(output.Expired, ExpiredRef{
			GuildID: ref.GuildID,
			UserID:  ref.UserID,
		})

		log.Debug().
			Str("guild_id", ref.GuildID).
			Str("user_id", ref.UserID).
			Msg("infection expired")
	}

	return output, nil
}
