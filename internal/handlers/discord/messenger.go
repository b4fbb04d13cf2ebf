package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/HIDORAKAI002/flagbot/internal/models"
	"github.com/HIDORAKAI002/flagbot/internal/services/game"
)

// entryReaction is the emoji entrants click on a giveaway announcement
const entryReaction = "\U0001F389"

// Messenger delivers service output through a Discord session. It implements
// the Notifier interfaces of the game, infection and giveaway services.
type Messenger struct {
	session *discordgo.Session
}

// NewMessenger creates a new messenger
func NewMessenger(session *discordgo.Session) (*Messenger, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}
	return &Messenger{session: session}, nil
}

// SendText sends a plain text message to a channel
func (m *Messenger) SendText(ctx context.Context, channelID, content string) error {
	_, err := m.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	return err
}

// SendRoundPrompt announces a new round with the flag image
func (m *Messenger) SendRoundPrompt(ctx context.Context, channelID string, prompt *game.RoundPrompt) error {
	_, err := m.session.ChannelMessageSendEmbed(channelID, roundPromptEmbed(prompt), discordgo.WithContext(ctx))
	return err
}

// SendStandings renders a session leaderboard to a channel
func (m *Messenger) SendStandings(ctx context.Context, channelID string, entries []game.StandingsEntry) error {
	_, err := m.session.ChannelMessageSendEmbed(channelID, standingsEmbed(entries), discordgo.WithContext(ctx))
	return err
}

// SetNickname applies or clears a member's displayed status marker
func (m *Messenger) SetNickname(ctx context.Context, guildID, userID, nickname string) error {
	return m.session.GuildMemberNickname(guildID, userID, nickname, discordgo.WithContext(ctx))
}

// AnnounceGiveaway posts the giveaway message entrants react to and returns
// its message ID
func (m *Messenger) AnnounceGiveaway(ctx context.Context, channelID string, giveaway *models.Giveaway) (string, error) {
	msg, err := m.session.ChannelMessageSendEmbed(channelID, giveawayEmbed(giveaway), discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}

	// Seed the entry reaction so entrants only have to click it
	if err := m.session.MessageReactionAdd(channelID, msg.ID, entryReaction, discordgo.WithContext(ctx)); err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("failed to seed giveaway reaction")
	}

	return msg.ID, nil
}
