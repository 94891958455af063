package leaderboard

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/leaderboard Service

// Service maintains the bounded local leaderboard and the high score
type Service interface {
	// SubmitScore offers a finished score to the board
	SubmitScore(ctx context.Context, input *SubmitScoreInput) (*SubmitScoreOutput, error)

	// GetBoard returns the current board and high score
	GetBoard(ctx context.Context) (*GetBoardOutput, error)

	// RecordHighScore persists the high score when it improved
	RecordHighScore(ctx context.Context, score int) error
}
