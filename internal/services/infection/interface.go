package infection

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/HIDORAKAI002/flagbot/internal/services/infection Notifier

// Service expires infected statuses once their window has passed
type Service interface {
	// ExpireDue clears every infection whose window has elapsed
	ExpireDue(ctx context.Context) (*ExpireDueOutput, error)

	// Run sweeps on the configured interval until ctx is cancelled
	Run(ctx context.Context)
}

// Notifier reverts the visible infection marker when a status expires
type Notifier interface {
	// SetNickname applies or clears a member's displayed status marker;
	// an empty nickname reverts to the account name
	SetNickname(ctx context.Context, guildID, userID, nickname string) error
}
