package selector

import (
	"context"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// Service defines the interface for riddle selection
type Service interface {
	// GetRiddle picks one riddle for the requested difficulty or category
	// and projects it with a shuffled 4-way option set
	GetRiddle(ctx context.Context, input *GetRiddleInput) (*models.PresentedRiddle, error)

	// GetDailyRiddles returns the deterministic riddle set for a date
	GetDailyRiddles(ctx context.Context, input *GetDailyRiddlesInput) (*GetDailyRiddlesOutput, error)

	// GetCategories returns the selectable category names
	GetCategories(ctx context.Context) ([]string, error)
}
