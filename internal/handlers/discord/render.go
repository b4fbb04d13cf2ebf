package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/HIDORAKAI002/flagbot/internal/models"
	"github.com/HIDORAKAI002/flagbot/internal/services/game"
)

const (
	colorBlue   = 0x3498DB
	colorGold   = 0xF1C40F
	colorGreen  = 0x2ECC71
	colorOrange = 0xE67E22
)

var medals = []string{"\U0001F947", "\U0001F948", "\U0001F949"}

func roundPromptEmbed(prompt *game.RoundPrompt) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Guess the Flag!",
		Description: fmt.Sprintf("Which country does this flag belong to? You have %d seconds.", int(prompt.Window.Seconds())),
		Color:       colorBlue,
		Image:       &discordgo.MessageEmbedImage{URL: prompt.FlagURL},
	}
}

func standingsEmbed(entries []game.StandingsEntry) *discordgo.MessageEmbed {
	var sb strings.Builder
	for i, entry := range entries {
		marker := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			marker = medals[i]
		}
		fmt.Fprintf(&sb, "%s **%s** — %d\n", marker, entry.Name, entry.Wins)
	}
	if sb.Len() == 0 {
		sb.WriteString("No one has scored yet.")
	}

	return &discordgo.MessageEmbed{
		Title:       "Leaderboard",
		Description: sb.String(),
		Color:       colorGold,
	}
}

func profileEmbed(player *models.Player) *discordgo.MessageEmbed {
	status := "Healthy"
	if player.Infected() {
		status = "Infected \U0001F9A0"
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Profile: %s", player.Name),
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", player.Level), Inline: true},
			{Name: "XP", Value: fmt.Sprintf("%d", player.XP), Inline: true},
			{Name: "Wins", Value: fmt.Sprintf("%d", player.Score), Inline: true},
			{Name: "Status", Value: status, Inline: true},
		},
	}
}

func giveawayEmbed(giveaway *models.Giveaway) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "\U0001F389 Giveaway!",
		Description: fmt.Sprintf("Prize: **%s**\nWinners: **%d**\nReact with %s to enter!",
			giveaway.Prize, giveaway.WinnerCount, entryReaction),
		Color: colorGold,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Ends at",
		},
		Timestamp: giveaway.EndsAt.Format(time.RFC3339),
	}
}

// updateStages are edited into the same message in sequence to stage the
// fake update routine
var updateStages = []string{
	"Checking for updates...",
	"Downloading update 1 of 3...",
	"Downloading update 2 of 3...",
	"Downloading update 3 of 3...",
	"Applying updates...",
	"Update complete! Running the latest version. ✅",
}

func updateEmbed(stage string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "System Update",
		Description: stage,
		Color:       colorOrange,
	}
}
