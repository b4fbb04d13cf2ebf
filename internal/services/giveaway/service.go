package giveaway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HIDORAKAI002/flagbot/internal/common/clock"
	"github.com/HIDORAKAI002/flagbot/internal/common/uuid"
	"github.com/HIDORAKAI002/flagbot/internal/models"
	"github.com/HIDORAKAI002/flagbot/internal/rng"
	giveawayRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/giveaway"
)

// Config holds the dependencies and tuning for the giveaway service
type Config struct {
	Repo          giveawayRepo.Repository
	Notifier      Notifier
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Roller        *rng.Roller

	// SweepInterval is how often Run checks for due giveaways
	SweepInterval time.Duration
}

// service implements the Service interface
type service struct {
	repo          giveawayRepo.Repository
	notifier      Notifier
	clock         clock.Clock
	uuidGenerator uuid.UUID
	roller        *rng.Roller
	sweepInterval time.Duration

	// resolveMu serializes resolution so a giveaway is drawn at most once
	// even when a sweep overlaps a slow predecessor
	resolveMu sync.Mutex
}

// New creates a new giveaway service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Repo == nil {
		return nil, errors.New("giveaway repository cannot be nil")
	}
	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}
	roller := cfg.Roller
	if roller == nil {
		roller = rng.New(&rng.Config{})
	}
	sweepInterval := cfg.SweepInterval
	if sweepInterval == 0 {
		sweepInterval = 5 * time.Second
	}

	return &service{
		repo:          cfg.Repo,
		notifier:      cfg.Notifier,
		clock:         clk,
		uuidGenerator: uuidGenerator,
		roller:        roller,
		sweepInterval: sweepInterval,
	}, nil
}

// Start announces a new giveaway and schedules its resolution
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil || input.GuildID == "" || input.ChannelID == "" {
		return nil, errors.New("input, guild ID and channel ID cannot be empty")
	}
	if input.Prize == "" {
		return nil, errors.New("prize cannot be empty")
	}
	if input.WinnerCount <= 0 {
		return nil, errors.New("winner count must be positive")
	}
	if input.Duration <= 0 {
		return nil, errors.New("duration must be positive")
	}

	now := s.clock.Now()
	giveaway := &models.Giveaway{
		ID:          s.uuidGenerator.NewUUID(),
		GuildID:     input.GuildID,
		ChannelID:   input.ChannelID,
		Prize:       input.Prize,
		WinnerCount: input.WinnerCount,
		EndsAt:      now.Add(input.Duration),
		Active:      true,
		CreatedAt:   now,
	}

	messageID, err := s.notifier.AnnounceGiveaway(ctx, input.ChannelID, giveaway)
	if err != nil {
		log.Error().Err(err).Str("channel_id", input.ChannelID).Msg("giveaway announcement failed")
		return nil, ErrAnnounceFailed
	}
	giveaway.MessageID = messageID

	if err := s.repo.SaveGiveaway(ctx, &giveawayRepo.SaveGiveawayInput{Giveaway: giveaway}); err != nil {
		return nil, fmt.Errorf("failed to save giveaway: %w", err)
	}

	log.Info().
		Str("giveaway_id", giveaway.ID).
		Str("guild_id", giveaway.GuildID).
		Str("prize", giveaway.Prize).
		Time("ends_at", giveaway.EndsAt).
		Msg("giveaway started")

	return &StartOutput{Giveaway: giveaway}, nil
}

// Enter records a reaction to an announcement message as an entry. Reactions
// to anything that is not a live giveaway are silently ignored.
func (s *service) Enter(ctx context.Context, input *EnterInput) (*EnterOutput, error) {
	if input == nil || input.MessageID == "" || input.UserID == "" {
		return nil, errors.New("input, message ID and user ID cannot be empty")
	}

	giveaway, err := s.repo.GetGiveawayByMessage(ctx, &giveawayRepo.GetGiveawayByMessageInput{
		MessageID: input.MessageID,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrGiveawayNotFound) {
			return &EnterOutput{Entered: false}, nil
		}
		return nil, fmt.Errorf("failed to resolve giveaway message: %w", err)
	}

	if !giveaway.Active || giveaway.Expired(s.clock.Now()) {
		return &EnterOutput{Entered: false}, nil
	}

	if err := s.repo.AddEntrant(ctx, &giveawayRepo.AddEntrantInput{
		GiveawayID: giveaway.ID,
		UserID:     input.UserID,
	}); err != nil {
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}

	log.Debug().
		Str("giveaway_id", giveaway.ID).
		Str("user_id", input.UserID).
		Msg("giveaway entry recorded")

	return &EnterOutput{Entered: true}, nil
}

// Run resolves due giveaways on the configured interval until ctx is cancelled
func (s *service) Run(ctx context.Context) {
	log.Info().Dur("interval", s.sweepInterval).Msg("giveaway sweeper started")

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("giveaway sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.ResolveDue(ctx); err != nil {
				log.Error().Err(err).Msg("giveaway sweep failed")
			}
		}
	}
}

// ResolveDue closes every giveaway whose end time has passed. Deactivation is
// persisted before the draw, so a crash mid-resolution forfeits the draw
// rather than repeating it.
func (s *service) ResolveDue(ctx context.Context) (*ResolveDueOutput, error) {
	s.resolveMu.Lock()
	defer s.resolveMu.Unlock()

	listed, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active giveaways: %w", err)
	}

	now := s.clock.Now()
	output := &ResolveDueOutput{}

	for _, giveaway := range listed.Giveaways {
		if !giveaway.Expired(now) {
			continue
		}

		giveaway.Active = false
		if err := s.repo.SaveGiveaway(ctx, &giveawayRepo.SaveGiveawayInput{Giveaway: giveaway}); err != nil {
			log.Error().Err(err).Str("giveaway_id", giveaway.ID).Msg("failed to deactivate giveaway")
			continue
		}

		winners, err := s.draw(ctx, giveaway)
		if err != nil {
			log.Error().Err(err).Str("giveaway_id", giveaway.ID).Msg("failed to draw winners")
			continue
		}

		s.announceResolution(ctx, giveaway, winners)

		output.Resolutions = append(output.Resolutions, Resolution{
			Giveaway: giveaway,
			Winners:  winners,
		})

		log.Info().
			Str("giveaway_id", giveaway.ID).
			Strs("winners", winners).
			Msg("giveaway resolved")
	}

	return output, nil
}

func (s *service) draw(ctx context.Context, giveaway *models.Giveaway) ([]string, error) {
	entrants, err := s.repo.GetEntrants(ctx, &giveawayRepo.GetEntrantsInput{
		GiveawayID: giveaway.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get entrants: %w", err)
	}

	return s.roller.Sample(entrants.UserIDs, giveaway.WinnerCount), nil
}

func (s *service) announceResolution(ctx context.Context, giveaway *models.Giveaway, winners []string) {
	var content string
	if len(winners) == 0 {
		content = fmt.Sprintf("The giveaway for **%s** has ended with no entries.", giveaway.Prize)
	} else {
		mentions := make([]string, 0, len(winners))
		for _, userID := range winners {
			mentions = append(mentions, fmt.Sprintf("<@%s>", userID))
		}
		content = fmt.Sprintf("\U0001F389 The giveaway has ended! Congratulations %s, you won **%s**!",
			strings.Join(mentions, ", "), giveaway.Prize)
	}

	if err := s.notifier.SendText(ctx, giveaway.ChannelID, content); err != nil {
		log.Error().Err(err).Str("giveaway_id", giveaway.ID).Msg("failed to announce giveaway result")
	}
}
