package guild

import (
	"context"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/HIDORAKAI002/flagbot/internal/repositories/guild Repository

// Repository defines the interface for guild settings persistence
type Repository interface {
	// GetSettings retrieves a guild's settings, returning defaults when the
	// guild has never been configured
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error)

	// SaveSettings persists a guild's settings
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error

	// ListGuilds retrieves every guild with stored settings
	ListGuilds(ctx context.Context) (*ListGuildsOutput, error)
}
