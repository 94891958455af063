package scoring

import (
	"time"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/rng"
)

// Scoring constants
const (
	// BasePoints is the flat value of a correct answer
	BasePoints = 100

	// SkipPenalty is deducted on skip in solo modes
	SkipPenalty = 5

	// HintCost is deducted per hint reveal
	HintCost = 5

	// MaxHintLevel caps hint reveals per question
	MaxHintLevel = 2

	// FiftyFiftyCost is deducted when the power-up fires
	FiftyFiftyCost = 40

	// AscensionStreak is the exact streak that triggers the one-time
	// Easy to Medium upgrade offer in solo games
	AscensionStreak = 5
)

// Feedback pacing after an answer; UI delay only, never a scoring factor
const (
	CorrectDelay     = 1 * time.Second
	WrongDelay       = 2500 * time.Millisecond
	KidsCorrectDelay = 1500 * time.Millisecond
	KidsWrongDelay   = 2 * time.Second
)

// Config holds configuration for the scoring engine
type Config struct {
	// Roller picks which wrong options the fifty-fifty removes
	Roller rng.Roller
}

// AnswerInput contains one answer (or timeout) to resolve
type AnswerInput struct {
	// Session is the current session snapshot
	Session models.GameSession

	// Teams is the current team snapshot (party mode)
	Teams []models.Team

	// TurnTeamID is the acting team (party mode)
	TurnTeamID string

	// Riddle is the question being answered
	Riddle *models.PresentedRiddle

	// Selected is the chosen option; empty on timeout
	Selected string

	// Timeout marks a question-timer expiry, resolved as wrong with no
	// option marked
	Timeout bool
}

// AnswerOutput contains the resolved snapshots and flow signals
type AnswerOutput struct {
	// Session is the updated session snapshot
	Session models.GameSession

	// Teams is the updated team snapshot
	Teams []models.Team

	// Correct reports whether the answer matched
	Correct bool

	// Points is what the answer was worth to the acting scope
	Points int

	// GameOver is set when a sudden-death game ends on this answer
	GameOver bool

	// AscensionOffer is set when the Easy to Medium offer fires now
	AscensionOffer bool

	// FeedbackDelay is the UI pacing delay before advancing
	FeedbackDelay time.Duration
}

// SkipInput contains a skip to resolve
type SkipInput struct {
	Session    models.GameSession
	Teams      []models.Team
	TurnTeamID string
}

// SkipOutput contains the resolved snapshots
type SkipOutput struct {
	Session models.GameSession
	Teams   []models.Team

	// GameOver is set when a sudden-death game ends on this skip
	GameOver bool
}

// HintInput contains a hint request
type HintInput struct {
	Session    models.GameSession
	Teams      []models.Team
	TurnTeamID string

	// HintLevel is the number of hints already revealed this question
	HintLevel int

	// Selected reports whether an option has already been chosen
	Selected bool
}

// HintOutput contains the resolved snapshots
type HintOutput struct {
	Session models.GameSession
	Teams   []models.Team

	// HintLevel is the level after this request
	HintLevel int

	// Refused is set when a guard rejected the request (no deduction)
	Refused bool
}

// FiftyFiftyInput contains a fifty-fifty request
type FiftyFiftyInput struct {
	Session    models.GameSession
	Teams      []models.Team
	TurnTeamID string

	// Riddle is the question the power-up applies to
	Riddle *models.PresentedRiddle

	// Used reports whether the power-up already fired this question
	Used bool

	// Selected reports whether an option has already been chosen
	Selected bool
}

// FiftyFiftyOutput contains the resolved snapshots
type FiftyFiftyOutput struct {
	Session models.GameSession
	Teams   []models.Team

	// Removed lists the 2 wrong options to hide
	Removed []string

	// Refused is set when a guard rejected the request (no deduction)
	Refused bool
}
