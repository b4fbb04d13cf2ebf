package giveaway

import (
	"context"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/HIDORAKAI002/flagbot/internal/repositories/giveaway Repository

// Repository defines the interface for giveaway persistence
type Repository interface {
	// SaveGiveaway persists a giveaway and maintains the active and message
	// indexes
	SaveGiveaway(ctx context.Context, input *SaveGiveawayInput) error

	// GetGiveaway retrieves a giveaway by ID
	GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error)

	// GetGiveawayByMessage retrieves a giveaway by its announcement message
	GetGiveawayByMessage(ctx context.Context, input *GetGiveawayByMessageInput) (*models.Giveaway, error)

	// ListActive retrieves every giveaway still marked active
	ListActive(ctx context.Context) (*ListActiveOutput, error)

	// AddEntrant records a user's entry; entering twice is a no-op
	AddEntrant(ctx context.Context, input *AddEntrantInput) error

	// GetEntrants retrieves every entrant of a giveaway
	GetEntrants(ctx context.Context, input *GetEntrantsInput) (*GetEntrantsOutput, error)
}
