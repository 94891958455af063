package leaderboard

import (
	"context"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// Repository defines the interface for score persistence: the single
// high-score value and the bounded top-N leaderboard, independently keyed
type Repository interface {
	// GetHighScore retrieves the persisted high score, zero when unset
	GetHighScore(ctx context.Context) (int, error)

	// SaveHighScore persists the high score
	SaveHighScore(ctx context.Context, input *SaveHighScoreInput) error

	// GetEntries retrieves the leaderboard, best first
	GetEntries(ctx context.Context) ([]models.LeaderboardEntry, error)

	// SaveEntries persists the leaderboard
	SaveEntries(ctx context.Context, input *SaveEntriesInput) error
}
