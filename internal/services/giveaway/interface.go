package giveaway

import (
	"context"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/HIDORAKAI002/flagbot/internal/services/giveaway Notifier

// Service runs timed giveaways entered by reacting to the announcement
type Service interface {
	// Start announces a new giveaway and schedules its resolution
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Enter records a reaction to an announcement message as an entry
	Enter(ctx context.Context, input *EnterInput) (*EnterOutput, error)

	// ResolveDue closes every giveaway whose end time has passed and
	// announces the winners
	ResolveDue(ctx context.Context) (*ResolveDueOutput, error)

	// Run resolves due giveaways on the configured interval until ctx is
	// cancelled
	Run(ctx context.Context)
}

// Notifier delivers giveaway output to the chat platform
type Notifier interface {
	// AnnounceGiveaway posts the giveaway message entrants react to and
	// returns its message ID
	AnnounceGiveaway(ctx context.Context, channelID string, giveaway *models.Giveaway) (string, error)

	// SendText sends a plain text message to a channel
	SendText(ctx context.Context, channelID, content string) error
}
