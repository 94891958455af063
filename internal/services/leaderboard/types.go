package leaderboard

import (
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/common/clock"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	leaderboardRepo "github.com/salex1993/Who-Am-I-Bible-Riddles/internal/repositories/leaderboard"
)

// MaxNameLength bounds the initials shown on the board
const MaxNameLength = 3

// Config holds configuration for the leaderboard service
type Config struct {
	// LeaderboardRepo stores the board and the high score
	LeaderboardRepo leaderboardRepo.Repository

	// Clock dates new entries
	Clock clock.Clock
}

// SubmitScoreInput contains one finished session score
type SubmitScoreInput struct {
	// Name is the player's initials, clamped and uppercased on entry
	Name string

	// Score is the final session score
	Score int

	// Avatar is the player's avatar emoji
	Avatar string

	// Difficulty is the tier the score was earned on
	Difficulty models.Difficulty
}

// SubmitScoreOutput contains the updated board and placement
type SubmitScoreOutput struct {
	// Entries is the board after the submission, best first
	Entries []models.LeaderboardEntry

	// Qualified reports whether the score made the board
	Qualified bool

	// Position is the 1-based placement; zero when not qualified
	Position int
}

// GetBoardOutput contains the current board and high score
type GetBoardOutput struct {
	// Entries is the board, best first
	Entries []models.LeaderboardEntry

	// HighScore is the persisted device high score
	HighScore int
}
