package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/HIDORAKAI002/flagbot/internal/chatter"
	"github.com/HIDORAKAI002/flagbot/internal/rng"
	guildRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/guild"
	"github.com/HIDORAKAI002/flagbot/internal/services/game"
	"github.com/HIDORAKAI002/flagbot/internal/services/giveaway"
	"github.com/HIDORAKAI002/flagbot/internal/services/moderation"
)

// Bot represents the Discord bot instance
type Bot struct {
	session           *discordgo.Session
	gameService       game.Service
	giveawayService   giveaway.Service
	moderationService moderation.Service
	guildRepo         guildRepo.Repository
	chatter           *chatter.Client
	roller            *rng.Roller

	prefix          string
	adminIDs        map[string]struct{}
	heckleUserID    string
	statusChannelID string
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session from NewSession
	Session *discordgo.Session

	// Prefix is the character commands start with
	Prefix string

	// AdminIDs are allowed to run broadcast, update and giveaway commands
	AdminIDs []string

	// HeckleUserID receives canned replies while a game is running
	HeckleUserID string

	// StatusChannelID receives the startup notice, if set
	StatusChannelID string

	GameService       game.Service
	GiveawayService   giveaway.Service
	ModerationService moderation.Service
	GuildRepo         guildRepo.Repository
	Chatter           *chatter.Client
	Roller            *rng.Roller
}

// NewSession creates a Discord session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.GiveawayService == nil {
		return nil, errors.New("giveaway service cannot be nil")
	}
	if cfg.ModerationService == nil {
		return nil, errors.New("moderation service cannot be nil")
	}
	if cfg.GuildRepo == nil {
		return nil, errors.New("guild repository cannot be nil")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "?"
	}

	chatterClient := cfg.Chatter
	if chatterClient == nil {
		chatterClient = chatter.New(nil)
	}
	roller := cfg.Roller
	if roller == nil {
		roller = rng.New(&rng.Config{})
	}

	adminIDs := make(map[string]struct{}, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		adminIDs[id] = struct{}{}
	}

	bot := &Bot{
		session:           cfg.Session,
		gameService:       cfg.GameService,
		giveawayService:   cfg.GiveawayService,
		moderationService: cfg.ModerationService,
		guildRepo:         cfg.GuildRepo,
		chatter:           chatterClient,
		roller:            roller,
		prefix:            prefix,
		adminIDs:          adminIDs,
		heckleUserID:      cfg.HeckleUserID,
		statusChannelID:   cfg.StatusChannelID,
	}

	cfg.Session.AddHandler(bot.onMessageCreate)
	cfg.Session.AddHandler(bot.onReactionAdd)
	cfg.Session.AddHandler(bot.onGuildMemberUpdate)

	return bot, nil
}

// Start opens the Discord connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Info().Str("user", b.session.State.User.Username).Msg("bot connected")

	if b.statusChannelID != "" {
		if _, err := b.session.ChannelMessageSend(b.statusChannelID, "✅ Flag bot is online."); err != nil {
			log.Warn().Err(err).Msg("failed to send startup notice")
		}
	}

	return nil
}

// Stop closes the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) isAdmin(userID string) bool {
	_, ok := b.adminIDs[userID]
	return ok
}

func (b *Bot) reply(channelID, content string) {
	if _, err := b.session.ChannelMessageSend(channelID, content); err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to send message")
	}
}

func (b *Bot) replyEmbed(channelID string, embed *discordgo.MessageEmbed) {
	if _, err := b.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to send embed")
	}
}

func (b *Bot) mentionsMe(m *discordgo.MessageCreate) bool {
	if b.session.State.User == nil {
		return false
	}
	for _, user := range m.Mentions {
		if user.ID == b.session.State.User.ID {
			return true
		}
	}
	return false
}

// onMessageCreate routes every guild message: moderation first, then
// commands, then the heckle target, then guess resolution, then chatter
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	ctx := context.Background()

	modOutput, err := b.moderationService.RecordMessage(ctx, &moderation.RecordMessageInput{
		GuildID: m.GuildID,
		UserID:  m.Author.ID,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", m.Author.ID).Msg("spam tracking failed")
	} else if modOutput.Spam {
		until := time.Now().Add(modOutput.MuteDuration)
		if err := s.GuildMemberTimeout(m.GuildID, m.Author.ID, &until); err != nil {
			log.Warn().Err(err).Str("user_id", m.Author.ID).Msg("failed to time out spammer")
		}
		b.reply(m.ChannelID, fmt.Sprintf("<@%s> slow down. You are muted for %s.",
			m.Author.ID, modOutput.MuteDuration))
		return
	}

	if strings.HasPrefix(m.Content, b.prefix) {
		b.dispatchCommand(ctx, m)
		return
	}

	if b.heckleUserID != "" && m.Author.ID == b.heckleUserID && b.gameService.HasActiveSession(m.GuildID) {
		b.reply(m.ChannelID, b.roller.Pick(heckleReplies))
		return
	}

	guess, err := b.gameService.ResolveGuess(ctx, &game.ResolveGuessInput{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		UserName:  m.Author.Username,
		Text:      m.Content,
	})
	if err != nil {
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to resolve guess")
		return
	}

	if guess.Outcome == game.OutcomeIgnored && b.chatter.Enabled() && b.mentionsMe(m) {
		completion, err := b.chatter.Complete(ctx, &chatter.CompleteInput{Prompt: m.Content})
		if err != nil {
			log.Warn().Err(err).Msg("chatter completion failed")
			return
		}
		b.reply(m.ChannelID, completion.Reply)
	}
}

// onReactionAdd records giveaway entries
func (b *Bot) onReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}
	if r.Emoji.Name != entryReaction {
		return
	}

	output, err := b.giveawayService.Enter(context.Background(), &giveaway.EnterInput{
		MessageID: r.MessageID,
		UserID:    r.UserID,
	})
	if err != nil {
		log.Error().Err(err).Str("message_id", r.MessageID).Msg("failed to record giveaway entry")
		return
	}
	if output.Entered {
		log.Debug().Str("message_id", r.MessageID).Str("user_id", r.UserID).Msg("giveaway entry")
	}
}

// onGuildMemberUpdate enforces the nickname filter
func (b *Bot) onGuildMemberUpdate(s *discordgo.Session, u *discordgo.GuildMemberUpdate) {
	if u.User == nil || u.User.Bot || u.Nick == "" {
		return
	}

	output, err := b.moderationService.CheckNickname(context.Background(), &moderation.CheckNicknameInput{
		Nickname: u.Nick,
	})
	if err != nil {
		log.Error().Err(err).Msg("nickname check failed")
		return
	}
	if !output.Blocked {
		return
	}

	if err := s.GuildMemberNickname(u.GuildID, u.User.ID, ""); err != nil {
		log.Warn().Err(err).Str("user_id", u.User.ID).Msg("failed to reset blocked nickname")
		return
	}

	log.Info().
		Str("guild_id", u.GuildID).
		Str("user_id", u.User.ID).
		Str("word", output.Word).
		Msg("blocked nickname reset")
}
