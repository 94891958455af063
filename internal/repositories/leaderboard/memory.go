package leaderboard

import (
	"context"
	"errors"
	"sync"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// memoryRepository implements the Repository interface in process memory
type memoryRepository struct {
	mu        sync.RWMutex
	highScore int
	entries   []models.LeaderboardEntry
}

// NewMemory creates a new in-memory leaderboard repository
func NewMemory() *memoryRepository {
	return &memoryRepository{}
}

// GetHighScore retrieves the high score
func (r *memoryRepository) GetHighScore(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.highScore, nil
}

// SaveHighScore persists the high score
func (r *memoryRepository) SaveHighScore(_ context.Context, input *SaveHighScoreInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.highScore = input.Score
	return nil
}

// GetEntries retrieves the leaderboard
func (r *memoryRepository) GetEntries(_ context.Context) ([]models.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LeaderboardEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// SaveEntries persists the leaderboard
func (r *memoryRepository) SaveEntries(_ context.Context, input *SaveEntriesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make([]models.LeaderboardEntry, len(input.Entries))
	copy(r.entries, input.Entries)
	return nil
}
