package messaging

import (
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/rng"
)

// Config holds configuration for the messaging service
type Config struct {
	// Roller picks message variants
	Roller rng.Roller
}

// GetFeedbackMessageInput contains parameters for an answer feedback line
type GetFeedbackMessageInput struct {
	// Correct reports whether the answer matched
	Correct bool

	// Answer is the correct answer, shown after a miss
	Answer string

	// Streak is the streak after the answer resolved
	Streak int

	// Kids selects the gentler child-facing pool
	Kids bool
}

// GetFeedbackMessageOutput contains the feedback line
type GetFeedbackMessageOutput struct {
	// Title is the short headline
	Title string

	// Message is the body line
	Message string
}

// GetTurnMessageInput contains parameters for a turn announcement
type GetTurnMessageInput struct {
	// Turn is the turn being announced
	Turn models.Turn
}

// GetTurnMessageOutput contains the announcement line
type GetTurnMessageOutput struct {
	Message string
}

// BuildShareTextInput contains parameters for the share text
type BuildShareTextInput struct {
	// Mode is the finished game's mode
	Mode models.GameMode

	// Score is the final session score (non-party)
	Score int

	// BestStreak is the best streak reached this game
	BestStreak int

	// Difficulty is the session difficulty (non-party)
	Difficulty models.Difficulty

	// Date is the challenge date (daily mode)
	Date string

	// Teams is the final team snapshot (party mode)
	Teams []models.Team
}

// BuildShareTextOutput contains the share text
type BuildShareTextOutput struct {
	Text string
}
