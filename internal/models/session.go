package models

// GameMode represents how a play-through is structured
type GameMode string

const (
	// GameModeSingle is the solo mode with a 60 second global budget
	GameModeSingle GameMode = "SINGLE"

	// GameModeParty is the pass-the-device team mode
	GameModeParty GameMode = "PARTY"

	// GameModeDaily is the fixed 3-riddle challenge shared by everyone on a date
	GameModeDaily GameMode = "DAILY"

	// GameModeSuddenDeath is the untimed hard mode where one wrong answer ends the game
	GameModeSuddenDeath GameMode = "SUDDEN_DEATH"
)

// GameSession is the mutable root of a single play-through. It is created
// at game start, updated copy-on-write by the scoring engine, and its
// terminal values are committed into the player profile and leaderboard
// at game end.
type GameSession struct {
	// Score is the session score (solo modes; party scores live on teams)
	Score int

	// Streak is the current run of correct answers
	Streak int

	// HighScore is the best session score seen so far (persisted)
	HighScore int

	// Mode is the active game mode
	Mode GameMode

	// Difficulty is the active difficulty tier
	Difficulty Difficulty

	// Category is an optional category override for riddle selection
	Category string

	// Avatar is the player's chosen avatar emoji
	Avatar string

	// DailyIndex is the position in the daily riddle set (daily mode only)
	DailyIndex int

	// Date is the ISO calendar date of the session (daily mode only)
	Date string

	// AscensionOffered records whether the one-shot Easy->Medium upgrade
	// offer has already fired this session
	AscensionOffered bool

	// CategoryScores accrues base points per category for the wisdom tree.
	// Values never decrease within a session.
	CategoryScores map[string]int
}

// Clone returns a deep copy of the session so callers can mutate a
// snapshot without touching the original.
func (s GameSession) Clone() GameSession {
	out := s
	out.CategoryScores = make(map[string]int, len(s.CategoryScores))
	for category, xp := range s.CategoryScores {
		out.CategoryScores[category] = xp
	}
	return out
}
