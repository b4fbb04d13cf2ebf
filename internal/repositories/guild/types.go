package guild

import "github.com/HIDORAKAI002/flagbot/internal/models"

// GetSettingsInput contains parameters for retrieving guild settings
type GetSettingsInput struct {
	GuildID string
}

// SaveSettingsInput contains parameters for saving guild settings
type SaveSettingsInput struct {
	Settings *models.GuildSettings
}

// ListGuildsOutput contains every guild with stored settings
type ListGuildsOutput struct {
	Settings []*models.GuildSettings
}
