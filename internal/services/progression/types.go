package progression

import (
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/common/clock"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	profileRepo "github.com/salex1993/Who-Am-I-Bible-Riddles/internal/repositories/profile"
)

// Achievement thresholds
const (
	// WisdomSeekerXP is the lifetime XP unlocking Wisdom Seeker
	WisdomSeekerXP = 2000

	// FaithfulDays is the daily streak unlocking Faithful
	FaithfulDays = 3

	// RefinersFireScore is the sudden-death score unlocking Refiner's Fire
	RefinersFireScore = 500

	// UnbrokenStreak is the answer streak unlocking Unbroken
	UnbrokenStreak = 10
)

// Config holds configuration for the progression service
type Config struct {
	// ProfileRepo stores the persistent profile
	ProfileRepo profileRepo.Repository

	// Clock stamps achievement unlocks
	Clock clock.Clock
}

// CommitInput contains one finished game to fold into the profile
type CommitInput struct {
	// Session is the terminal session snapshot
	Session models.GameSession

	// BestStreak is the best answer streak reached during the game
	BestStreak int

	// Date is today's ISO calendar date
	Date string
}

// WisdomLevelUp reports one category crossing a wisdom threshold
type WisdomLevelUp struct {
	// Category is the category that leveled
	Category string

	// Level is the new wisdom level
	Level int
}

// CommitOutput contains the updated profile and everything that changed
type CommitOutput struct {
	// Profile is the saved profile
	Profile *models.PlayerProfile

	// RankedUp reports whether the rank changed
	RankedUp bool

	// PreviousRank is the rank before the commit
	PreviousRank string

	// WisdomLevelUps lists categories that crossed a threshold this game
	WisdomLevelUps []WisdomLevelUp

	// Unlocked lists achievements earned by this commit, in ladder order
	Unlocked []models.Achievement
}
