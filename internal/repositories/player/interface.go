package player

import (
	"context"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/HIDORAKAI002/flagbot/internal/repositories/player Repository

// Repository defines the interface for player data persistence
type Repository interface {
	// GetPlayer retrieves a player record, returning a fresh default record
	// when none exists yet
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// SavePlayer persists a player and maintains the guild and infection indexes
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// ListInfected retrieves every player currently carrying the infected status
	ListInfected(ctx context.Context) (*ListInfectedOutput, error)

	// GetGuildPlayers retrieves all known players of a guild
	GetGuildPlayers(ctx context.Context, input *GetGuildPlayersInput) (*GetGuildPlayersOutput, error)
}
