package game

import (
	"context"
	"time"
)

// RoundPrompt carries what the channel needs to display a new round
type RoundPrompt struct {
	// FlagURL is the image players have to identify
	FlagURL string

	// Window is how long the round stays open
	Window time.Duration
}

// StandingsEntry is one row of a session leaderboard
type StandingsEntry struct {
	UserID string
	Name   string
	Wins   int
}

// Notifier delivers game output to the chat platform. Sends are fire and
// forget from the game's perspective: implementations log failures, the game
// never retries them.
type Notifier interface {
	// SendText sends a plain text message to a channel
	SendText(ctx context.Context, channelID, content string) error

	// SendRoundPrompt announces a new round with the flag image
	SendRoundPrompt(ctx context.Context, channelID string, prompt *RoundPrompt) error

	// SendStandings renders a session leaderboard to a channel
	SendStandings(ctx context.Context, channelID string, entries []StandingsEntry) error

	// SetNickname applies or clears a member's displayed status marker;
	// an empty nickname reverts to the account name
	SetNickname(ctx context.Context, guildID, userID, nickname string) error
}
