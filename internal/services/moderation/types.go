package moderation

import "time"

// RecordMessageInput contains one inbound message to track
type RecordMessageInput struct {
	GuildID string
	UserID  string
}

// RecordMessageOutput contains the result of tracking a message
type RecordMessageOutput struct {
	// Spam is set when the sender exceeded the message limit inside the
	// tracking window
	Spam bool

	// OffenseCount is the sender's total spam offenses, including this one
	OffenseCount int

	// MuteDuration is how long the sender should be timed out, escalating
	// with repeat offenses
	MuteDuration time.Duration
}

// CheckNicknameInput contains a nickname to screen
type CheckNicknameInput struct {
	Nickname string
}

// CheckNicknameOutput contains the result of screening a nickname
type CheckNicknameOutput struct {
	// Blocked is set when the nickname contains a blocked word
	Blocked bool

	// Word is the blocked word that matched
	Word string
}
