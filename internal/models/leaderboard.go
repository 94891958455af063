package models

// MaxLeaderboardEntries bounds the persisted leaderboard
const MaxLeaderboardEntries = 5

// LeaderboardEntry is one ranked session score
type LeaderboardEntry struct {
	// Name is the player's initials, at most 3 characters
	Name string

	// Score is the final session score
	Score int

	// Avatar is the player's avatar emoji
	Avatar string

	// Difficulty is the tier the score was earned on
	Difficulty Difficulty

	// Date is the ISO date the score was earned
	Date string
}
