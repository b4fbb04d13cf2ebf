package moderation

import "context"

// Service enforces anti-spam limits and nickname rules
type Service interface {
	// RecordMessage tracks one message and reports whether the sender
	// crossed the spam threshold
	RecordMessage(ctx context.Context, input *RecordMessageInput) (*RecordMessageOutput, error)

	// CheckNickname reports whether a nickname contains a blocked word
	CheckNickname(ctx context.Context, input *CheckNicknameInput) (*CheckNicknameOutput, error)
}
