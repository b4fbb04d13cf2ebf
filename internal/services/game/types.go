package game

import (
	"github.com/HIDORAKAI002/flagbot/internal/models"
)

// GuessOutcome classifies what ResolveGuess did with a message
type GuessOutcome string

const (
	// OutcomeIgnored means the message was not a guess for an open round
	OutcomeIgnored GuessOutcome = "ignored"

	// OutcomeWrong means the guess did not match and the guesser was infected
	OutcomeWrong GuessOutcome = "wrong"

	// OutcomeWin means the guess won the round
	OutcomeWin GuessOutcome = "win"
)

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	GuildID   string
	ChannelID string
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	Difficulty models.Difficulty
}

// StopSessionInput contains parameters for stopping a session
type StopSessionInput struct {
	GuildID string
}

// StopSessionOutput contains the final session standings
type StopSessionOutput struct {
	Standings []StandingsEntry
}

// SkipRoundInput contains parameters for skipping the current round
type SkipRoundInput struct {
	GuildID string
}

// SkipRoundOutput contains the result of skipping a round
type SkipRoundOutput struct {
	// RevealedAnswer is the skipped round's answer, empty when no round was
	// pending
	RevealedAnswer string
}

// ResolveGuessInput carries one inbound message for classification
type ResolveGuessInput struct {
	GuildID   string
	ChannelID string
	UserID    string
	UserName  string
	Text      string
}

// ResolveGuessOutput contains the result of resolving a guess
type ResolveGuessOutput struct {
	Outcome GuessOutcome

	// XPAwarded is the xp granted on a win
	XPAwarded int

	// LeveledUp is set when the win pushed the player over a level boundary
	LeveledUp bool

	// NewLevel is the player's level after the award
	NewLevel int

	// Cured is set when the win cleared the winner's infection
	Cured bool
}

// StandingsInput contains parameters for reading the session leaderboard
type StandingsInput struct {
	GuildID string
}

// StandingsOutput contains the session leaderboard
type StandingsOutput struct {
	Entries []StandingsEntry
}

// ProfileInput contains parameters for reading a player's persistent record
type ProfileInput struct {
	GuildID string
	UserID  string
}

// ProfileOutput contains a player's persistent record
type ProfileOutput struct {
	Player *models.Player
}
