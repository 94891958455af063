package leaderboard

import (
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// SaveHighScoreInput contains parameters for saving the high score
type SaveHighScoreInput struct {
	// Score is the new high score
	Score int
}

// SaveEntriesInput contains parameters for saving the leaderboard
type SaveEntriesInput struct {
	// Entries is the full leaderboard, best first
	Entries []models.LeaderboardEntry
}
