package giveaway

import "github.com/HIDORAKAI002/flagbot/internal/models"

// SaveGiveawayInput contains parameters for saving a giveaway
type SaveGiveawayInput struct {
	Giveaway *models.Giveaway
}

// GetGiveawayInput contains parameters for retrieving a giveaway
type GetGiveawayInput struct {
	GiveawayID string
}

// GetGiveawayByMessageInput contains parameters for resolving a giveaway from
// its announcement message
type GetGiveawayByMessageInput struct {
	MessageID string
}

// ListActiveOutput contains every active giveaway
type ListActiveOutput struct {
	Giveaways []*models.Giveaway
}

// AddEntrantInput contains parameters for recording an entry
type AddEntrantInput struct {
	GiveawayID string
	UserID     string
}

// GetEntrantsInput contains parameters for retrieving entrants
type GetEntrantsInput struct {
	GiveawayID string
}

// GetEntrantsOutput contains a giveaway's entrants
type GetEntrantsOutput struct {
	UserIDs []string
}
