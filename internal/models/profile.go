package models

import (
	"time"
)

// PlayerProfile is the persistent progression record for a device.
// It is mutated only by the end-of-game commit; XP totals, games played
// and category progress never decrease.
type PlayerProfile struct {
	// TotalXP is the lifetime XP, including achievement rewards
	TotalXP int

	// Rank is the current rank name, derived from TotalXP
	Rank string

	// DailyStreak counts consecutive calendar days with a scoring daily game
	DailyStreak int

	// LastDailyDate is the ISO date of the last counted daily game
	LastDailyDate string

	// Achievements maps achievement ID to unlock time
	Achievements map[string]time.Time

	// GamesPlayed is the lifetime number of finished games
	GamesPlayed int

	// BestStreak is the best answer streak across all sessions
	BestStreak int

	// CategoryProgress maps category name to cumulative XP
	CategoryProgress map[string]int
}

// NewPlayerProfile returns the default profile used for first runs and
// as the fallback when a stored profile cannot be parsed.
func NewPlayerProfile() *PlayerProfile {
	return &PlayerProfile{
		Rank:             RankLadder[0].Name,
		Achievements:     make(map[string]time.Time),
		CategoryProgress: make(map[string]int),
	}
}

// Clone returns a deep copy of the profile
func (p PlayerProfile) Clone() PlayerProfile {
	out := p
	out.Achievements = make(map[string]time.Time, len(p.Achievements))
	for id, at := range p.Achievements {
		out.Achievements[id] = at
	}
	out.CategoryProgress = make(map[string]int, len(p.CategoryProgress))
	for category, xp := range p.CategoryProgress {
		out.CategoryProgress[category] = xp
	}
	return out
}

// Rank is one rung of the fixed rank ladder
type Rank struct {
	// Name is the rank title
	Name string

	// MinXP is the total XP required to hold the rank
	MinXP int
}

// RankLadder is the fixed rank ladder, ascending. A player holds the
// highest rank whose MinXP does not exceed their TotalXP.
var RankLadder = []Rank{
	{Name: "Seeker", MinXP: 0},
	{Name: "Disciple", MinXP: 500},
	{Name: "Scribe", MinXP: 1500},
	{Name: "Teacher", MinXP: 3000},
	{Name: "Shepherd", MinXP: 6000},
	{Name: "Prophet", MinXP: 10000},
	{Name: "Anointed", MinXP: 20000},
}

// RankForXP returns the highest rank earned by totalXP.
func RankForXP(totalXP int) string {
	rank := RankLadder[0].Name
	for _, r := range RankLadder {
		if totalXP >= r.MinXP {
			rank = r.Name
		}
	}
	return rank
}

// wisdomThresholds are the cumulative category XP boundaries for levels 1-5.
var wisdomThresholds = []int{500, 1500, 3000, 5000, 7500}

// WisdomLevel maps cumulative category XP to a wisdom level 0-5.
func WisdomLevel(categoryXP int) int {
	level := 0
	for _, threshold := range wisdomThresholds {
		if categoryXP >= threshold {
			level++
		}
	}
	return level
}

// Achievement IDs
const (
	AchievementFirstSteps   = "first_steps"
	AchievementWisdomSeeker = "wisdom_seeker"
	AchievementFaithful     = "faithful"
	AchievementRefinersFire = "refiners_fire"
	AchievementUnbroken     = "unbroken"
)

// Achievement is one unlockable with a one-time XP reward
type Achievement struct {
	// ID is the stable identifier stored on the profile
	ID string

	// Name is the display title
	Name string

	// Description explains how the achievement is earned
	Description string

	// RewardXP is added to TotalXP at unlock
	RewardXP int
}

// AchievementLadder lists every achievement in evaluation order.
var AchievementLadder = []Achievement{
	{ID: AchievementFirstSteps, Name: "First Steps", Description: "Finish your first game", RewardXP: 100},
	{ID: AchievementWisdomSeeker, Name: "Wisdom Seeker", Description: "Reach 2000 total XP", RewardXP: 250},
	{ID: AchievementFaithful, Name: "Faithful", Description: "Play the daily riddles 3 days running", RewardXP: 150},
	{ID: AchievementRefinersFire, Name: "Refiner's Fire", Description: "Score 500 in Sudden Death", RewardXP: 300},
	{ID: AchievementUnbroken, Name: "Unbroken", Description: "Reach a streak of 10", RewardXP: 200},
}
