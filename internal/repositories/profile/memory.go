package profile

import (
	"context"
	"errors"
	"sync"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// memoryRepository implements the Repository interface in process memory.
// Used for tests and environments without a persistence backend.
type memoryRepository struct {
	mu      sync.RWMutex
	profile *models.PlayerProfile
}

// NewMemory creates a new in-memory profile repository
func NewMemory() *memoryRepository {
	return &memoryRepository{}
}

// GetProfile retrieves the stored profile or the default
func (r *memoryRepository) GetProfile(_ context.Context) (*models.PlayerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return models.NewPlayerProfile(), nil
	}
	clone := r.profile.Clone()
	return &clone, nil
}

// SaveProfile persists the profile
func (r *memoryRepository) SaveProfile(_ context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := input.Profile.Clone()
	r.profile = &clone
	return nil
}
