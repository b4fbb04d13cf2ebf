package game

import "math"

// LevelForXP converts accumulated xp into a level: floor(sqrt(xp) / 4).
// Levels are recomputed from total xp and never decrease because xp never
// decreases.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(xp)) / 4)
}
