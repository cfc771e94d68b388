package domain

import "strings"

// Difficulty labels how many cells the carver targets for removal.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Removals maps a difficulty to a target removal count for the carver.
func (d Difficulty) Removals() int {
	switch d {
	case Easy:
		return 41
	case Medium:
		return 47
	case Hard:
		return 53
	default:
		return 57 // Expert
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty is lenient: unknown labels fall back to medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}
