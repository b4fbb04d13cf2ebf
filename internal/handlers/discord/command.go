package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/HIDORAKAI002/flagbot/internal/models"
	guildRepo "github.com/HIDORAKAI002/flagbot/internal/repositories/guild"
	"github.com/HIDORAKAI002/flagbot/internal/services/game"
	"github.com/HIDORAKAI002/flagbot/internal/services/giveaway"
)

// updateStageDelay paces the fake update sequence
const updateStageDelay = 2 * time.Second

func (b *Bot) dispatchCommand(ctx context.Context, m *discordgo.MessageCreate) {
	fields := strings.Fields(strings.TrimPrefix(m.Content, b.prefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	log.Debug().
		Str("command", name).
		Str("guild_id", m.GuildID).
		Str("user_id", m.Author.ID).
		Msg("command received")

	switch name {
	case "flagstart":
		b.handleFlagStart(ctx, m)
	case "flagstop":
		b.handleFlagStop(ctx, m)
	case "flagskip":
		b.handleFlagSkip(ctx, m)
	case "leaderboard":
		b.handleLeaderboard(ctx, m)
	case "profile":
		b.handleProfile(ctx, m)
	case "difficulty":
		b.handleDifficulty(ctx, m, args)
	case "gstart":
		b.handleGiveawayStart(ctx, m, args)
	case "broadcast":
		b.handleBroadcast(ctx, m, args)
	case "logchannel":
		b.handleLogChannel(ctx, m)
	case "forceupdate":
		b.handleForceUpdate(m)
	case "help":
		b.handleHelp(m)
	}
}

func (b *Bot) handleFlagStart(ctx context.Context, m *discordgo.MessageCreate) {
	_, err := b.gameService.StartSession(ctx, &game.StartSessionInput{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
	})
	if err != nil {
		if errors.Is(err, game.ErrSessionAlreadyRunning) {
			b.reply(m.ChannelID, "A game is already running in this server. Stop it with `"+b.prefix+"flagstop` first.")
			return
		}
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to start session")
		b.reply(m.ChannelID, "Could not start the game. Please try again later.")
	}
}

func (b *Bot) handleFlagStop(ctx context.Context, m *discordgo.MessageCreate) {
	_, err := b.gameService.StopSession(ctx, &game.StopSessionInput{GuildID: m.GuildID})
	if err != nil {
		if errors.Is(err, game.ErrNoActiveSession) {
			b.reply(m.ChannelID, "No game is currently running.")
			return
		}
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to stop session")
	}
}

func (b *Bot) handleFlagSkip(ctx context.Context, m *discordgo.MessageCreate) {
	_, err := b.gameService.SkipRound(ctx, &game.SkipRoundInput{GuildID: m.GuildID})
	if err != nil {
		if errors.Is(err, game.ErrNoActiveSession) {
			b.reply(m.ChannelID, "No game is currently running.")
			return
		}
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to skip round")
	}
}

func (b *Bot) handleLeaderboard(ctx context.Context, m *discordgo.MessageCreate) {
	output, err := b.gameService.Standings(ctx, &game.StandingsInput{GuildID: m.GuildID})
	if err != nil {
		if errors.Is(err, game.ErrNoActiveSession) {
			b.reply(m.ChannelID, "No game is currently running.")
			return
		}
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to read standings")
		return
	}
	b.replyEmbed(m.ChannelID, standingsEmbed(output.Entries))
}

func (b *Bot) handleProfile(ctx context.Context, m *discordgo.MessageCreate) {
	output, err := b.gameService.Profile(ctx, &game.ProfileInput{
		GuildID: m.GuildID,
		UserID:  m.Author.ID,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", m.Author.ID).Msg("failed to read profile")
		return
	}

	player := output.Player
	if player.Name == "" {
		player.Name = m.Author.Username
	}
	b.replyEmbed(m.ChannelID, profileEmbed(player))
}

func (b *Bot) handleDifficulty(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	if len(args) != 1 {
		b.reply(m.ChannelID, "Usage: `"+b.prefix+"difficulty <easy|normal|hard>`")
		return
	}

	difficulty := models.Difficulty(strings.ToLower(args[0]))
	if !difficulty.Valid() {
		b.reply(m.ChannelID, "Unknown difficulty. Pick one of: easy, normal, hard.")
		return
	}

	settings, err := b.guildRepo.GetSettings(ctx, &guildRepo.GetSettingsInput{GuildID: m.GuildID})
	if err != nil {
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to load guild settings")
		return
	}
	settings.Difficulty = difficulty

	if err := b.guildRepo.SaveSettings(ctx, &guildRepo.SaveSettingsInput{Settings: settings}); err != nil {
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to save guild settings")
		return
	}

	b.reply(m.ChannelID, fmt.Sprintf("Difficulty set to **%s**. It takes effect when the next game starts.", difficulty))
}

func (b *Bot) handleGiveawayStart(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	if !b.isAdmin(m.Author.ID) {
		b.reply(m.ChannelID, "You are not allowed to start giveaways.")
		return
	}
	if len(args) < 3 {
		b.reply(m.ChannelID, "Usage: `"+b.prefix+"gstart <duration> <winners> <prize>` (e.g. `"+b.prefix+"gstart 1h 2 Discord Nitro`)")
		return
	}

	duration, err := time.ParseDuration(args[0])
	if err != nil || duration <= 0 {
		b.reply(m.ChannelID, "Could not parse the duration. Use something like `30m` or `1h`.")
		return
	}

	winners, err := strconv.Atoi(args[1])
	if err != nil || winners <= 0 {
		b.reply(m.ChannelID, "The winner count must be a positive number.")
		return
	}

	_, err = b.giveawayService.Start(ctx, &giveaway.StartInput{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		Prize:       strings.Join(args[2:], " "),
		WinnerCount: winners,
		Duration:    duration,
	})
	if err != nil {
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to start giveaway")
		b.reply(m.ChannelID, "Could not start the giveaway. Please try again later.")
	}
}

func (b *Bot) handleBroadcast(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	if !b.isAdmin(m.Author.ID) {
		b.reply(m.ChannelID, "You are not allowed to broadcast.")
		return
	}
	if len(args) == 0 {
		b.reply(m.ChannelID, "Usage: `"+b.prefix+"broadcast <message>`")
		return
	}

	listed, err := b.guildRepo.ListGuilds(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list guilds for broadcast")
		return
	}

	content := "\U0001F4E2 " + strings.Join(args, " ")
	sent := 0
	for _, settings := range listed.Settings {
		if settings.LogChannelID == "" {
			continue
		}
		if _, err := b.session.ChannelMessageSend(settings.LogChannelID, content); err != nil {
			log.Warn().Err(err).Str("guild_id", settings.GuildID).Msg("broadcast delivery failed")
			continue
		}
		sent++
	}

	b.reply(m.ChannelID, fmt.Sprintf("Broadcast delivered to %d server(s).", sent))
}

func (b *Bot) handleLogChannel(ctx context.Context, m *discordgo.MessageCreate) {
	if !b.isAdmin(m.Author.ID) {
		b.reply(m.ChannelID, "You are not allowed to change the log channel.")
		return
	}

	settings, err := b.guildRepo.GetSettings(ctx, &guildRepo.GetSettingsInput{GuildID: m.GuildID})
	if err != nil {
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to load guild settings")
		return
	}
	settings.LogChannelID = m.ChannelID

	if err := b.guildRepo.SaveSettings(ctx, &guildRepo.SaveSettingsInput{Settings: settings}); err != nil {
		log.Error().Err(err).Str("guild_id", m.GuildID).Msg("failed to save guild settings")
		return
	}

	b.reply(m.ChannelID, "This channel now receives broadcasts and notices.")
}

// handleForceUpdate plays the staged update sequence by editing one embed
// through each stage
func (b *Bot) handleForceUpdate(m *discordgo.MessageCreate) {
	if !b.isAdmin(m.Author.ID) {
		b.reply(m.ChannelID, "You are not allowed to run updates.")
		return
	}

	msg, err := b.session.ChannelMessageSendEmbed(m.ChannelID, updateEmbed(updateStages[0]))
	if err != nil {
		log.Error().Err(err).Str("channel_id", m.ChannelID).Msg("failed to start update sequence")
		return
	}

	go func() {
		for _, stage := range updateStages[1:] {
			time.Sleep(updateStageDelay)
			embed := updateEmbed(stage)
			if _, err := b.session.ChannelMessageEditEmbed(m.ChannelID, msg.ID, embed); err != nil {
				log.Warn().Err(err).Msg("failed to edit update sequence")
				return
			}
		}
	}()
}

func (b *Bot) handleHelp(m *discordgo.MessageCreate) {
	p := b.prefix
	b.replyEmbed(m.ChannelID, &discordgo.MessageEmbed{
		Title: "Flag Bot Commands",
		Color: colorBlue,
		Description: strings.Join([]string{
			"`" + p + "flagstart` — start a flag guessing game in this channel",
			"`" + p + "flagstop` — stop the running game",
			"`" + p + "flagskip` — skip the current flag",
			"`" + p + "leaderboard` — show the current game's scores",
			"`" + p + "profile` — show your level, xp and wins",
			"`" + p + "difficulty <easy|normal|hard>` — set the country pool",
			"`" + p + "gstart <duration> <winners> <prize>` — start a giveaway (admin)",
			"`" + p + "broadcast <message>` — message every server's log channel (admin)",
			"`" + p + "logchannel` — make this channel the log channel (admin)",
		}, "\n"),
	})
}
