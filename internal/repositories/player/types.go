package player

import "github.com/HIDORAKAI002/flagbot/internal/models"

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	GuildID string
	UserID  string
}

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// InfectedRef identifies one infected player
type InfectedRef struct {
	GuildID string
	UserID  string
}

// ListInfectedOutput contains every currently infected player
type ListInfectedOutput struct {
	Refs []InfectedRef
}

// GetGuildPlayersInput contains parameters for retrieving a guild's players
type GetGuildPlayersInput struct {
	GuildID string
}

// GetGuildPlayersOutput contains the result of retrieving a guild's players
type GetGuildPlayersOutput struct {
	Players []*models.Player
}
