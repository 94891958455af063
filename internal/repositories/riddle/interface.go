package riddle

import (
	"context"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// Repository defines the read-only boundary to the riddle content set
type Repository interface {
	// GetAll returns every riddle record
	GetAll(ctx context.Context) ([]*models.RiddleRecord, error)

	// GetCategories returns the sorted, de-duplicated category names
	GetCategories(ctx context.Context) ([]string, error)
}
