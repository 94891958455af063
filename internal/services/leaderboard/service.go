package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	leaderboardRepo "github.com/salex1993/Who-Am-I-Bible-Riddles/internal/repositories/leaderboard"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.LeaderboardRepo == nil {
		return nil, errors.New("leaderboard repository cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{config: cfg}, nil
}

// SubmitScore offers a finished score to the board. The board keeps the
// top entries sorted best first; ties resolve in favor of the incumbent.
func (s *service) SubmitScore(ctx context.Context, input *SubmitScoreInput) (*SubmitScoreOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	entries, err := s.config.LeaderboardRepo.GetEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	entry := models.LeaderboardEntry{
		Name:       clampName(input.Name),
		Score:      input.Score,
		Avatar:     input.Avatar,
		Difficulty: input.Difficulty,
		Date:       s.config.Clock.Now().Format("2006-01-02"),
	}

	position := len(entries)
	for i, existing := range entries {
		if entry.Score > existing.Score {
			position = i
			break
		}
	}

	if position >= models.MaxLeaderboardEntries {
		return &SubmitScoreOutput{Entries: entries}, nil
	}

	entries = append(entries, models.LeaderboardEntry{})
	copy(entries[position+1:], entries[position:])
	entries[position] = entry
	if len(entries) > models.MaxLeaderboardEntries {
		entries = entries[:models.MaxLeaderboardEntries]
	}

	if err := s.config.LeaderboardRepo.SaveEntries(ctx, &leaderboardRepo.SaveEntriesInput{Entries: entries}); err != nil {
		return nil, fmt.Errorf("failed to save leaderboard: %w", err)
	}

	return &SubmitScoreOutput{
		Entries:   entries,
		Qualified: true,
		Position:  position + 1,
	}, nil
}

// GetBoard returns the current board and high score
func (s *service) GetBoard(ctx context.Context) (*GetBoardOutput, error) {
	entries, err := s.config.LeaderboardRepo.GetEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	highScore, err := s.config.LeaderboardRepo.GetHighScore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load high score: %w", err)
	}

	return &GetBoardOutput{Entries: entries, HighScore: highScore}, nil
}

// RecordHighScore persists the high score when it improved
func (s *service) RecordHighScore(ctx context.Context, score int) error {
	stored, err := s.config.LeaderboardRepo.GetHighScore(ctx)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}
	if score <= stored {
		return nil
	}

	if err := s.config.LeaderboardRepo.SaveHighScore(ctx, &leaderboardRepo.SaveHighScoreInput{Score: score}); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

// clampName uppercases and trims initials to the board's width. Empty
// names fall back to a fixed placeholder.
func clampName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		runes = runes[:MaxNameLength]
	}
	if len(runes) == 0 {
		return "???"
	}
	return string(runes)
}
