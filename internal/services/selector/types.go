package selector

import (
	"time"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	riddleRepo "github.com/salex1993/Who-Am-I-Bible-Riddles/internal/repositories/riddle"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/rng"
)

// DailyRiddleCount is the fixed size of the daily challenge set
const DailyRiddleCount = 3

// Config holds configuration for the selector service
type Config struct {
	// RiddleRepo is the content boundary
	RiddleRepo riddleRepo.Repository

	// Roller drives riddle picks, option shuffles and distractor sampling
	Roller rng.Roller

	// FetchDelay models the fetch-like latency of the content boundary.
	// Zero disables it; tests leave it zero.
	FetchDelay time.Duration
}

// GetRiddleInput contains parameters for picking a riddle
type GetRiddleInput struct {
	// Difficulty is the requested tier; ignored for filtering when
	// Category is set
	Difficulty models.Difficulty

	// Category optionally restricts the pool to one category
	Category string
}

// GetDailyRiddlesInput contains parameters for the daily set
type GetDailyRiddlesInput struct {
	// Date is the ISO calendar date keying the set
	Date string
}

// GetDailyRiddlesOutput contains the daily riddle set
type GetDailyRiddlesOutput struct {
	// Riddles is the ordered set, identical for every player on Date
	Riddles []*models.PresentedRiddle
}
