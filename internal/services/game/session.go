package game

import (
	"sort"
	"strings"
	"sync"

	"github.com/HIDORAKAI002/flagbot/internal/models"
)

// session holds one guild's live game. Its mutex is the critical section for
// the guess race: the match check and the clearing of currentAnswer happen as
// one atomic unit under it, so two concurrent correct guesses can never both
// observe a pending answer.
type session struct {
	mu sync.Mutex

	guildID   string
	channelID string
	active    bool

	// currentAnswer is the normalized expected answer; empty means no round
	// is awaiting a guess. Clearing it under mu is the winner lock.
	currentAnswer string

	// currentName is the display form of the answer, kept for announcements
	currentName string
	flagURL     string

	difficulty models.Difficulty

	// scores and names track round wins for this session only; persistent
	// score/xp/level live in the player repository
	scores map[string]int
	names  map[string]string

	timer *roundTimer
}

func newSession(guildID, channelID string, difficulty models.Difficulty) *session {
	return &session{
		guildID:    guildID,
		channelID:  channelID,
		active:     true,
		difficulty: difficulty,
		scores:     make(map[string]int),
		names:      make(map[string]string),
	}
}

// standingsLocked builds the session leaderboard sorted by wins.
// Caller must hold sess.mu.
func (sess *session) standingsLocked() []StandingsEntry {
	entries := make([]StandingsEntry, 0, len(sess.scores))
	for userID, wins := range sess.scores {
		entries = append(entries, StandingsEntry{
			UserID: userID,
			Name:   sess.names[userID],
			Wins:   wins,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// normalizeAnswer lowercases and trims a guess or an expected answer so the
// comparison is insensitive to casing and surrounding whitespace
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
