package game

import "context"

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=game

// Service defines the interface for the trivia game
type Service interface {
	// StartSession starts a trivia session for a guild, bound to a channel
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// StopSession ends a guild's session and reports final standings
	StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error)

	// SkipRound abandons the current round and starts the next one
	SkipRound(ctx context.Context, input *SkipRoundInput) (*SkipRoundOutput, error)

	// ResolveGuess classifies an inbound message against the guild's active
	// round and applies win or infection side effects
	ResolveGuess(ctx context.Context, input *ResolveGuessInput) (*ResolveGuessOutput, error)

	// Standings returns the running session leaderboard
	Standings(ctx context.Context, input *StandingsInput) (*StandingsOutput, error)

	// Profile returns a player's persistent record
	Profile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error)

	// HasActiveSession reports whether a guild currently has a live session
	HasActiveSession(guildID string) bool
}
