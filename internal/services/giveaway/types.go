package giveaway

import (
	"time"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

// StartInput contains parameters for starting a giveaway
type StartInput struct {
	GuildID     string
	ChannelID   string
	Prize       string
	WinnerCount int
	Duration    time.Duration
}

// StartOutput contains the announced giveaway
type StartOutput struct {
	Giveaway *models.Giveaway
}

// EnterInput contains parameters for recording an entry
type EnterInput struct {
	MessageID string
	UserID    string
}

// EnterOutput contains the result of an entry attempt
type EnterOutput struct {
	// Entered is false when the message is not a live giveaway
	Entered bool
}

// Resolution describes one closed giveaway
type Resolution struct {
	Giveaway *models.Giveaway
	Winners  []string
}

// ResolveDueOutput contains every giveaway closed by the sweep
type ResolveDueOutput struct {
	Resolutions []Resolution
}
