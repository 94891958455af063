package profile

import (
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	// Profile is the profile to persist
	Profile *models.PlayerProfile
}
