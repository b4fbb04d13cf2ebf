package giveaway

import "errors"

// Define errors
var (
	ErrAnnounceFailed = errors.New("failed to announce the giveaway")
)
