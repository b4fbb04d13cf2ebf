package models

// Difficulty selects the population tier countries are drawn from
type Difficulty string

const (
	// DifficultyEasy restricts rounds to widely known, populous countries
	DifficultyEasy Difficulty = "easy"

	// DifficultyNormal is the default tier
	DifficultyNormal Difficulty = "normal"

	// DifficultyHard allows any country above the minimum population
	DifficultyHard Difficulty = "hard"
)

// MinPopulation returns the population threshold for the difficulty tier
func (d Difficulty) MinPopulation() int64 {
	switch d {
	case DifficultyEasy:
		return 50_000_000
	case DifficultyHard:
		return 1_000_000
	default:
		return 10_000_000
	}
}

// Valid reports whether d is one of the known difficulty tiers
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	default:
		return false
	}
}

// GuildSettings holds per-guild configuration
type GuildSettings struct {
	// GuildID is the Discord guild these settings belong to
	GuildID string

	// Difficulty is the population tier used when a round starts
	Difficulty Difficulty

	// LogChannelID is where broadcasts and moderation notices are sent
	LogChannelID string
}
