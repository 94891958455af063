package profile

import (
	"context"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// Repository defines the interface for player profile storage
type Repository interface {
	// GetProfile retrieves the stored profile, or the default profile
	// when none has been stored or the stored blob cannot be parsed
	GetProfile(ctx context.Context) (*models.PlayerProfile, error)

	// SaveProfile persists the profile
	SaveProfile(ctx context.Context, input *SaveProfileInput) error
}
