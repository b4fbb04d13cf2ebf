package models

import (
	"time"
)

// Giveaway represents a timed giveaway announced in a channel
type Giveaway struct {
	// ID is the unique identifier for the giveaway
	ID string

	// GuildID is the Discord guild the giveaway runs in
	GuildID string

	// ChannelID is where the giveaway was announced
	ChannelID string

	// MessageID is the announcement message entrants react to
	MessageID string

	// Prize describes what is being given away
	Prize string

	// WinnerCount is how many winners are drawn at the end
	WinnerCount int

	// EndsAt is when the giveaway closes
	EndsAt time.Time

	// Active is cleared exactly once when the giveaway is resolved
	Active bool

	// CreatedAt is when the giveaway was announced
	CreatedAt time.Time
}

// Expired reports whether the giveaway's end time has passed
func (g *Giveaway) Expired(now time.Time) bool {
	return !g.EndsAt.After(now)
}
