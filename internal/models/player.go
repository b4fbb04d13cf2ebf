package models

import (
	"time"
)

// Player represents a guild member's persistent trivia record
type Player struct {
	// GuildID is the Discord guild the record is scoped to
	GuildID string

	// UserID is the Discord user ID of the player
	UserID string

	// Name is the display name of the player
	Name string

	// Score is the number of rounds the player has won
	Score int

	// XP is the total experience the player has accumulated
	XP int

	// Level is derived from XP and never decreases
	Level int

	// InfectedUntil is set while the player carries the infected status
	InfectedUntil *time.Time

	// SpamOffenses counts anti-spam violations
	SpamOffenses int

	// CreatedAt is when the record was first created
	CreatedAt time.Time

	// UpdatedAt is when the record was last written
	UpdatedAt time.Time
}

// Infected reports whether the player currently carries the infected status
func (p *Player) Infected() bool {
	return p.InfectedUntil != nil
}
