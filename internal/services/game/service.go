package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HIDORAKAI002/flagbot/internal/common/clock"
	"github.com/HIDORAKAI002/flagbot/internal/countries"
	"github.com/HIDORAKAI002/flagbot/internal/rng"
	guildRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/guild"
	playerRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/player"
)

// infectedNicknamePrefix marks infected players in the member list
const infectedNicknamePrefix = "\U0001F9A0 "

// Config holds the dependencies and tuning for the game service
type Config struct {
	Fetcher    countries.Fetcher
	PlayerRepo playerRepo.Repository
	GuildRepo  guildRepo.Repository
	Notifier   Notifier
	Clock      clock.Clock
	Roller     *rng.Roller

	// RoundDuration is how long a round stays open before it expires
	RoundDuration time.Duration

	// StartDelay is the pause between the start announcement and round one
	StartDelay time.Duration

	// NextRoundDelay is the pause between a win and the next round
	NextRoundDelay time.Duration

	// XPMin and XPMax bound the random xp awarded per win (inclusive)
	XPMin int
	XPMax int

	// InfectionDuration is how long a wrong guess marks the guesser
	InfectionDuration time.Duration
}

// service implements the Service interface
type service struct {
	fetcher    countries.Fetcher
	playerRepo playerRepo.Repository
	guildRepo  guildRepo.Repository
	notifier   Notifier
	clock      clock.Clock
	roller     *rng.Roller

	roundDuration     time.Duration
	startDelay        time.Duration
	nextRoundDelay    time.Duration
	xpMin             int
	xpMax             int
	infectionDuration time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Fetcher == nil {
		return nil, errors.New("fetcher cannot be nil")
	}
	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}
	if cfg.GuildRepo == nil {
		return nil, errors.New("guild repository cannot be nil")
	}
	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	// Set default values if not provided
	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	roller := cfg.Roller
	if roller == nil {
		roller = rng.New(&rng.Config{})
	}
	roundDuration := cfg.RoundDuration
	if roundDuration == 0 {
		roundDuration = 60 * time.Second
	}
	startDelay := cfg.StartDelay
	if startDelay == 0 {
		startDelay = 2 * time.Second
	}
	nextRoundDelay := cfg.NextRoundDelay
	if nextRoundDelay == 0 {
		nextRoundDelay = 3 * time.Second
	}
	xpMin := cfg.XPMin
	if xpMin == 0 {
		xpMin = 15
	}
	xpMax := cfg.XPMax
	if xpMax == 0 {
		xpMax = 25
	}
	infectionDuration := cfg.InfectionDuration
	if infectionDuration == 0 {
		infectionDuration = 10 * time.Minute
	}

	return &service{
		fetcher:           cfg.Fetcher,
		playerRepo:        cfg.PlayerRepo,
		guildRepo:         cfg.GuildRepo,
		notifier:          cfg.Notifier,
		clock:             clk,
		roller:            roller,
		roundDuration:     roundDuration,
		startDelay:        startDelay,
		nextRoundDelay:    nextRoundDelay,
		xpMin:             xpMin,
		xpMax:             xpMax,
		infectionDuration: infectionDuration,
		sessions:          make(map[string]*session),
	}, nil
}

// StartSession starts a trivia session for a guild, bound to a channel
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.GuildID == "" || input.ChannelID == "" {
		return nil, errors.New("input, guild ID and channel ID cannot be empty")
	}

	settings, err := s.guildRepo.GetSettings(ctx, &guildRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	s.mu.Lock()
	if existing := s.sessions[input.GuildID]; existing != nil {
		s.mu.Unlock()
		return nil, ErrSessionAlreadyRunning
	}
	sess := newSession(input.GuildID, input.ChannelID, settings.Difficulty)
	s.sessions[input.GuildID] = sess
	s.mu.Unlock()

	log.Info().
		Str("guild_id", input.GuildID).
		Str("channel_id", input.ChannelID).
		Str("difficulty", string(settings.Difficulty)).
		Msg("session started")

	s.sendText(ctx, input.ChannelID,
		"\U0001F389 **Flag Quiz Started!** \U0001F389\nGet ready to guess the flags. The first flag will appear shortly.")

	s.scheduleRound(input.GuildID, s.startDelay)

	return &StartSessionOutput{Difficulty: settings.Difficulty}, nil
}

// StopSession ends a guild's session and reports final standings
func (s *service) StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	s.mu.Lock()
	sess := s.sessions[input.GuildID]
	if sess == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	delete(s.sessions, input.GuildID)
	s.mu.Unlock()

	sess.mu.Lock()
	sess.active = false
	sess.currentAnswer = ""
	timer := sess.timer
	sess.timer = nil
	entries := sess.standingsLocked()
	channelID := sess.channelID
	sess.mu.Unlock()

	if timer != nil {
		timer.Cancel()
	}

	log.Info().Str("guild_id", input.GuildID).Msg("session stopped")

	s.sendText(ctx, channelID, "\U0001F3C1 **Flag Quiz Ended!** \U0001F3C1\nHere is the final leaderboard:")
	s.sendStandings(ctx, channelID, entries)

	return &StopSessionOutput{Standings: entries}, nil
}

// SkipRound abandons the current round and starts the next one
func (s *service) SkipRound(ctx context.Context, input *SkipRoundInput) (*SkipRoundOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	sess := s.getSession(input.GuildID)
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	sess.mu.Lock()
	timer := sess.timer
	sess.timer = nil
	revealed := sess.currentName
	sess.currentAnswer = ""
	sess.currentName = ""
	channelID := sess.channelID
	sess.mu.Unlock()

	if timer != nil {
		timer.Cancel()
	}

	if revealed != "" {
		s.sendText(ctx, channelID, fmt.Sprintf(
			"The flag has been skipped. The correct answer was **%s**. Loading the next flag...", revealed))
	} else {
		s.sendText(ctx, channelID, "The flag has been skipped. Loading the next flag...")
	}

	s.startRound(ctx, input.GuildID)

	return &SkipRoundOutput{RevealedAnswer: revealed}, nil
}

// ResolveGuess classifies an inbound message against the guild's active round.
// The match check and the clearing of the pending answer happen as a single
// atomic step under the session mutex, which is what keeps the round to at
// most one winner however many correct guesses are in flight.
func (s *service) ResolveGuess(ctx context.Context, input *ResolveGuessInput) (*ResolveGuessOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	sess := s.getSession(input.GuildID)
	if sess == nil {
		return &ResolveGuessOutput{Outcome: OutcomeIgnored}, nil
	}

	sess.mu.Lock()
	if !sess.active || sess.currentAnswer == "" || input.ChannelID != sess.channelID {
		sess.mu.Unlock()
		return &ResolveGuessOutput{Outcome: OutcomeIgnored}, nil
	}

	if normalizeAnswer(input.Text) != sess.currentAnswer {
		sess.mu.Unlock()
		s.infect(ctx, input)
		return &ResolveGuessOutput{Outcome: OutcomeWrong}, nil
	}

	// The guess is correct: clearing currentAnswer here, before any I/O,
	// is the lock that makes every other in-flight correct guess a no-op.
	answerName := sess.currentName
	sess.currentAnswer = ""
	sess.currentName = ""
	timer := sess.timer
	sess.timer = nil
	sess.scores[input.UserID]++
	sess.names[input.UserID] = input.UserName
	entries := sess.standingsLocked()
	channelID := sess.channelID
	sess.mu.Unlock()

	// Redundant while we hold the win, but stops a late timer from firing
	// into an already-resolved round.
	if timer != nil {
		timer.Cancel()
	}

	output := &ResolveGuessOutput{Outcome: OutcomeWin}
	s.awardWin(ctx, input, output)

	s.sendText(ctx, channelID, fmt.Sprintf(
		"**%s** guessed it right! The country was **%s**. They get 1 point!",
		input.UserName, answerName))

	if output.LeveledUp {
		s.sendText(ctx, channelID, fmt.Sprintf(
			"\U0001F53A **%s** leveled up to level **%d**!", input.UserName, output.NewLevel))
	}

	if output.Cured {
		s.sendText(ctx, channelID, fmt.Sprintf(
			"\U0001F48A **%s** has been cured of the infection!", input.UserName))
	}

	s.sendStandings(ctx, channelID, entries)

	s.scheduleRound(input.GuildID, s.nextRoundDelay)

	return output, nil
}

// Standings returns the running session leaderboard
func (s *service) Standings(ctx context.Context, input *StandingsInput) (*StandingsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	sess := s.getSession(input.GuildID)
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	sess.mu.Lock()
	entries := sess.standingsLocked()
	sess.mu.Unlock()

	return &StandingsOutput{Entries: entries}, nil
}

// Profile returns a player's persistent record
func (s *service) Profile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &ProfileOutput{Player: player}, nil
}

// HasActiveSession reports whether a guild currently has a live session
func (s *service) HasActiveSession(guildID string) bool {
	return s.getSession(guildID) != nil
}

func (s *service) getSession(guildID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[guildID]
}

// scheduleRound starts the guild's next round after delay. A zero delay runs
// it synchronously, which the tests rely on for determinism.
func (s *service) scheduleRound(guildID string, delay time.Duration) {
	if delay <= 0 {
		s.startRound(context.Background(), guildID)
		return
	}
	time.AfterFunc(delay, func() {
		s.startRound(context.Background(), guildID)
	})
}

// startRound fetches a quiz item and opens a new round. A fetch failure is
// reported to the channel and leaves the session alive with no pending
// answer, so the players can skip or stop.
func (s *service) startRound(ctx context.Context, guildID string) {
	sess := s.getSession(guildID)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	if !sess.active {
		sess.mu.Unlock()
		return
	}
	difficulty := sess.difficulty
	channelID := sess.channelID
	sess.mu.Unlock()

	country, err := s.fetcher.Fetch(ctx, difficulty)
	if err != nil {
		log.Warn().Err(err).Str("guild_id", guildID).Msg("could not fetch a country for the round")
		s.sendText(ctx, channelID, "Could not fetch a new flag. Please try again later.")
		return
	}

	// The session can have been stopped or expired during the fetch
	sess.mu.Lock()
	if !sess.active {
		sess.mu.Unlock()
		return
	}
	if sess.timer != nil {
		// Replacing a live timer: cancel before scheduling the new one
		sess.timer.Cancel()
	}
	sess.currentAnswer = normalizeAnswer(country.Name)
	sess.currentName = country.Name
	sess.flagURL = country.FlagURL
	sess.timer = newRoundTimer(s.roundDuration, func() {
		s.onTimerExpiry(guildID)
	})
	sess.mu.Unlock()

	log.Info().
		Str("guild_id", guildID).
		Str("country", country.Name).
		Msg("new round started")

	if err := s.notifier.SendRoundPrompt(ctx, channelID, &RoundPrompt{
		FlagURL: country.FlagURL,
		Window:  s.roundDuration,
	}); err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to send round prompt")
	}
}

// onTimerExpiry runs when a round timer fires uncancelled. If a guess already
// resolved the round the pending answer is gone and this is a no-op; that
// guard, not the cancellation call, is what settles the timer/guess race.
func (s *service) onTimerExpiry(guildID string) {
	ctx := context.Background()

	sess := s.getSession(guildID)
	if sess == nil {
		return
	}

	sess.mu.Lock()
	if !sess.active || sess.currentAnswer == "" {
		sess.mu.Unlock()
		return
	}
	answerName := sess.currentName
	sess.active = false
	sess.currentAnswer = ""
	sess.timer = nil
	entries := sess.standingsLocked()
	channelID := sess.channelID
	sess.mu.Unlock()

	s.mu.Lock()
	delete(s.sessions, guildID)
	s.mu.Unlock()

	log.Info().Str("guild_id", guildID).Str("answer", answerName).Msg("round expired, session ended")

	s.sendText(ctx, channelID, fmt.Sprintf(
		"Time's up! The correct answer was **%s**. No one guessed in time, so the game has ended.",
		answerName))
	s.sendStandings(ctx, channelID, entries)
}

// awardWin applies the persistent side of a win: score, xp, level, cure
func (s *service) awardWin(ctx context.Context, input *ResolveGuessInput, output *ResolveGuessOutput) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to load winner record")
		return
	}

	now := s.clock.Now()

	player.Name = input.UserName
	player.Score++
	delta := s.roller.IntBetween(s.xpMin, s.xpMax)
	player.XP += delta

	newLevel := LevelForXP(player.XP)
	if newLevel > player.Level {
		output.LeveledUp = true
		player.Level = newLevel
	}
	output.XPAwarded = delta
	output.NewLevel = player.Level

	if player.InfectedUntil != nil {
		player.InfectedUntil = nil
		output.Cured = true
	}

	if player.CreatedAt.IsZero() {
		player.CreatedAt = now
	}
	player.UpdatedAt = now

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to save winner record")
		return
	}

	if output.Cured {
		// Best effort: drop the infection marker from the nickname
		if err := s.notifier.SetNickname(ctx, input.GuildID, input.UserID, ""); err != nil {
			log.Warn().Err(err).Str("user_id", input.UserID).Msg("failed to reset nickname on cure")
		}
	}
}

// infect applies the wrong-guess status effect. Infecting an already infected
// player is a no-op, so concurrent wrong guesses are harmless.
func (s *service) infect(ctx context.Context, input *ResolveGuessInput) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to load guesser record")
		return
	}

	if player.Infected() {
		return
	}

	now := s.clock.Now()
	until := now.Add(s.infectionDuration)
	player.Name = input.UserName
	player.InfectedUntil = &until
	if player.CreatedAt.IsZero() {
		player.CreatedAt = now
	}
	player.UpdatedAt = now

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player}); err != nil {
		log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to save infected record")
		return
	}

	log.Debug().
		Str("guild_id", input.GuildID).
		Str("user_id", input.UserID).
		Time("until", until).
		Msg("player infected")

	if err := s.notifier.SetNickname(ctx, input.GuildID, input.UserID, infectedNicknamePrefix+input.UserName); err != nil {
		log.Warn().Err(err).Str("user_id", input.UserID).Msg("failed to set infected nickname")
	}
}

func (s *service) sendText(ctx context.Context, channelID, content string) {
	if err := s.notifier.SendText(ctx, channelID, content); err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to send message")
	}
}

func (s *service) sendStandings(ctx context.Context, channelID string, entries []StandingsEntry) {
	if len(entries) == 0 {
		return
	}
	if err := s.notifier.SendStandings(ctx, channelID, entries); err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to send standings")
	}
}
