package party

import (
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/common/uuid"
)

// Config holds configuration for the party service
type Config struct {
	// UUIDGenerator mints team and player IDs
	UUIDGenerator uuid.UUID
}

// teamColors is the palette cycled as teams are added
var teamColors = []string{"blue", "red", "green", "purple"}

// teamAvatars is the avatar palette cycled as teams are added
var teamAvatars = []string{"🕊️", "🔥", "🌿", "👑"}

// Default team names for a fresh party
var defaultTeamNames = []string{"Prophets", "Apostles"}
