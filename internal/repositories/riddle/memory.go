package riddle

import (
	"context"
	"errors"
	"sort"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// Config holds configuration for the in-memory riddle repository
type Config struct {
	// Records is the static riddle set, loaded once at startup
	Records []*models.RiddleRecord
}

// memoryRepository implements the Repository interface over a static slice
type memoryRepository struct {
	records    []*models.RiddleRecord
	categories []string
}

// NewMemory creates a new in-memory riddle repository
func NewMemory(cfg *Config) (*memoryRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if len(cfg.Records) == 0 {
		return nil, errors.New("at least one riddle record is required")
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, record := range cfg.Records {
		if _, ok := seen[record.Category]; ok {
			continue
		}
		seen[record.Category] = struct{}{}
		categories = append(categories, record.Category)
	}
	sort.Strings(categories)

	return &memoryRepository{
		records:    cfg.Records,
		categories: categories,
	}, nil
}

// GetAll returns every riddle record
func (r *memoryRepository) GetAll(_ context.Context) ([]*models.RiddleRecord, error) {
	return r.records, nil
}

// GetCategories returns the sorted, de-duplicated category names
func (r *memoryRepository) GetCategories(_ context.Context) ([]string, error) {
	return r.categories, nil
}
