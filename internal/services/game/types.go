package game

import (
	"errors"
	"time"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/common/clock"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/notify"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/leaderboard"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/messaging"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/party"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/progression"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/scoring"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/selector"
)

// Screen identifies which screen owns the UI
type Screen string

// The closed screen set. The machine starts at ScreenStart and never
// invents values outside this list.
const (
	ScreenStart           Screen = "START_SCREEN"
	ScreenSetupMode       Screen = "SETUP_MODE"
	ScreenSetupParty      Screen = "SETUP_PARTY"
	ScreenSetupDifficulty Screen = "SETUP_DIFFICULTY"
	ScreenSetupCategory   Screen = "SETUP_CATEGORY"
	ScreenLoading         Screen = "LOADING"
	ScreenTurnTransition  Screen = "TURN_TRANSITION"
	ScreenPlaying         Screen = "PLAYING"
	ScreenGameSummary     Screen = "GAME_SUMMARY"
	ScreenError           Screen = "ERROR"
)

// Timer budgets
const (
	// GlobalBudget is the whole-game clock for timed solo play
	GlobalBudget = 60 * time.Second

	// DailyQuestionBudget is the fixed per-question clock in daily mode
	DailyQuestionBudget = 30 * time.Second

	// Question budgets by record level
	questionBudgetShort = 15 * time.Second
	questionBudgetMid   = 20 * time.Second
	questionBudgetLong  = 25 * time.Second

	// Streak bonuses; only the higher one applies
	streakBonusSmall = 10 * time.Second
	streakBonusLarge = 20 * time.Second
)

// KidsPartyRounds replaces the configured series length when a party
// picks the kids tier
const KidsPartyRounds = 10

var (
	// ErrMissingOption is returned when an answer carries no option
	ErrMissingOption = errors.New("selected option cannot be empty")
)

// Config holds every collaborator of the game machine
type Config struct {
	// Selector fetches riddles
	Selector selector.Service

	// PartyService edits party configs and builds turn queues
	PartyService party.Service

	// Engine resolves answers, skips and power-ups
	Engine scoring.Engine

	// Messaging generates feedback and share text
	Messaging messaging.Service

	// Progression commits finished games into the profile
	Progression progression.Service

	// Leaderboard keeps the local top scores
	Leaderboard leaderboard.Service

	// Notifier receives sound and clipboard cues
	Notifier notify.Notifier

	// Clock drives every deadline
	Clock clock.Clock
}

// Feedback is the headline shown after an answer resolves
type Feedback struct {
	Title   string
	Message string
}

// questionState is the per-question scratchpad, reset on every fetch
type questionState struct {
	// hintLevel counts revealed hints, 0-2
	hintLevel int

	// hints are the revealed hint lines, in reveal order
	hints []string

	// fiftyUsed marks the power-up spent for this question
	fiftyUsed bool

	// removed are the options hidden by the power-up
	removed []string

	// selected is the chosen option, empty until resolution
	selected string

	// resolved marks the question answered, skipped or timed out
	resolved bool

	// correct is meaningful only once resolved
	correct bool
}

// Snapshot is a consistent read-only view for the UI
type Snapshot struct {
	// Screen is the active screen
	Screen Screen

	// Session is a copy of the session
	Session models.GameSession

	// Party is a copy of the party configuration
	Party models.PartyConfig

	// Turn is the acting turn (party mode), nil otherwise
	Turn *models.Turn

	// TurnIndex is the cursor into the turn queue
	TurnIndex int

	// TurnCount is the queue length
	TurnCount int

	// Riddle is the active question, nil outside play
	Riddle *models.PresentedRiddle

	// HintLevel counts revealed hints this question
	HintLevel int

	// Hints are the revealed hint lines
	Hints []string

	// RemovedOptions are hidden by the fifty-fifty
	RemovedOptions []string

	// Selected is the chosen option, empty until resolution
	Selected string

	// Resolved marks the question settled
	Resolved bool

	// Feedback is the current feedback line
	Feedback Feedback

	// AscensionPending pauses advancement for the upgrade offer
	AscensionPending bool

	// QuestionRemaining is the question clock in whole seconds, -1 untimed
	QuestionRemaining int

	// GlobalRemaining is the global clock in whole seconds, -1 untimed
	GlobalRemaining int

	// ErrorMessage is the user-facing message on the error screen
	ErrorMessage string

	// Commit is the progression result, set on the summary screen
	Commit *progression.CommitOutput

	// Board is the leaderboard after an initials submission
	Board *leaderboard.SubmitScoreOutput
}
