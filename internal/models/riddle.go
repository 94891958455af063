package models

// Difficulty represents the player-facing difficulty tier of a game
type Difficulty string

const (
	// DifficultyEasy covers riddle levels 1-2
	DifficultyEasy Difficulty = "EASY"

	// DifficultyMedium covers riddle levels 3-4
	DifficultyMedium Difficulty = "MEDIUM"

	// DifficultyHard covers riddle level 5
	DifficultyHard Difficulty = "HARD"

	// DifficultyKids covers riddle levels 1-2 restricted to child-safe categories
	DifficultyKids Difficulty = "KIDS"
)

// RiddleRecord is a single riddle as loaded from the static data set.
// Records are created once at startup and never mutated.
type RiddleRecord struct {
	// ID is the unique identifier for the riddle
	ID int

	// Category is the subject grouping (e.g. "Kings & Rulers")
	Category string

	// DifficultyLevel is the raw difficulty, 1 (easiest) to 5 (hardest)
	DifficultyLevel int

	// Poem is the riddle text shown to the player
	Poem string

	// Answer is the correct answer string
	Answer string

	// Reference is the primary scripture reference
	Reference string

	// Options optionally carries 4 pre-built answer choices
	Options []string
}

// PresentedRiddle is a RiddleRecord projected for a single question.
// It is created fresh on every fetch and discarded on the next one.
type PresentedRiddle struct {
	// Question is the riddle text
	Question string

	// Options are the 4 shuffled answer choices, containing CorrectAnswer exactly once
	Options []string

	// CorrectAnswer is the answer string
	CorrectAnswer string

	// Reference is the scripture reference revealed by the second hint
	Reference string

	// Explanation is a short pointer shown after answering
	Explanation string

	// Difficulty is the player-facing label: Easy, Medium, Hard or Kids
	Difficulty string

	// DifficultyLevel is the raw level of the underlying record
	DifficultyLevel int

	// Category is the subject grouping, revealed by the first hint
	Category string
}
