package game

import (
	"context"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/game Service

// Service is the session controller. Every UI callback and timer tick
// enters through one of these methods; calls that do not apply to the
// current screen are ignored.
type Service interface {
	// Snapshot returns a consistent view for rendering
	Snapshot() *Snapshot

	// Start leaves the start screen
	Start() error

	// SetAvatar records the player's avatar
	SetAvatar(avatar string) error

	// ChooseMode picks the game mode; daily and sudden death start play
	// immediately
	ChooseMode(ctx context.Context, mode models.GameMode) error

	// SetPartyConfig replaces the party roster during party setup
	SetPartyConfig(cfg models.PartyConfig) error

	// ConfirmParty moves from party setup to difficulty selection
	ConfirmParty() error

	// BrowseCategories opens the category picker
	BrowseCategories() error

	// ChooseCategory starts a category game at the medium tier
	ChooseCategory(ctx context.Context, category string) error

	// ChooseDifficulty starts the game at the picked tier
	ChooseDifficulty(ctx context.Context, difficulty models.Difficulty) error

	// BeginTurn leaves the turn hand-off screen
	BeginTurn(ctx context.Context) error

	// Answer resolves the chosen option
	Answer(ctx context.Context, option string) error

	// Skip abandons the current question
	Skip(ctx context.Context) error

	// Hint reveals the next hint
	Hint(ctx context.Context) error

	// FiftyFifty fires the power-up
	FiftyFifty(ctx context.Context) error

	// AcceptAscension upgrades the session to medium and continues
	AcceptAscension(ctx context.Context) error

	// DeclineAscension continues at the easy tier
	DeclineAscension(ctx context.Context) error

	// Tick advances the clocks; call once per second while playing
	Tick(ctx context.Context) error

	// EndGame finishes the game at the player's request
	EndGame(ctx context.Context) error

	// Retry re-runs the failed fetch from the error screen
	Retry(ctx context.Context) error

	// Home abandons everything and returns to the start screen
	Home() error

	// PlayAgain returns to setup keeping the chosen mode where sensible
	PlayAgain() error

	// Share copies the share text for the finished game
	Share(ctx context.Context) error

	// SubmitInitials offers the finished score to the leaderboard
	SubmitInitials(ctx context.Context, name string) error
}
