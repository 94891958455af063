package messaging

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	return &service{config: cfg}, nil
}

// GetFeedbackMessage returns a feedback line for a resolved answer
func (s *service) GetFeedbackMessage(input *GetFeedbackMessageInput) (*GetFeedbackMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var titles, messages []string

	switch {
	case input.Correct && input.Kids:
		titles = []string{
			"Hooray!",
			"You got it!",
			"Wonderful!",
			"Super!",
		}
		messages = []string{
			"You know your Bible heroes!",
			"That was exactly right. Great listening!",
			"You are getting so good at this!",
			"High five! On to the next one!",
		}

	case input.Correct && input.Streak >= 5:
		titles = []string{
			"On Fire!",
			"Unstoppable!",
			"Anointed!",
		}
		messages = []string{
			fmt.Sprintf("%d in a row! The scrolls tremble before you.", input.Streak),
			fmt.Sprintf("A streak of %d! Scribes will write of this day.", input.Streak),
			fmt.Sprintf("%d straight! Wisdom flows through you.", input.Streak),
		}

	case input.Correct:
		titles = []string{
			"Correct!",
			"Well Done!",
			"Verily!",
			"Amen!",
		}
		messages = []string{
			"You have discerned rightly.",
			"The answer was plain to the wise.",
			"Your knowledge of the Word shows.",
			"So it is written, and so you answered.",
		}

	case input.Kids:
		titles = []string{
			"Almost!",
			"Good Try!",
			"So Close!",
		}
		messages = []string{
			fmt.Sprintf("The answer was %s. You'll get the next one!", input.Answer),
			fmt.Sprintf("It was %s! Keep going, you're doing great!", input.Answer),
			fmt.Sprintf("That was a tricky one. It was %s!", input.Answer),
		}

	default:
		titles = []string{
			"Not Quite",
			"Alas!",
			"The Scroll Says...",
		}
		messages = []string{
			fmt.Sprintf("The answer was %s.", input.Answer),
			fmt.Sprintf("It was %s. Even Solomon missed a question or two.", input.Answer),
			fmt.Sprintf("%s was the one. Search the Scriptures and return!", input.Answer),
		}
	}

	return &GetFeedbackMessageOutput{
		Title:   titles[s.config.Roller.Intn(len(titles))],
		Message: messages[s.config.Roller.Intn(len(messages))],
	}, nil
}

// GetTurnMessage returns a turn announcement line
func (s *service) GetTurnMessage(input *GetTurnMessageInput) (*GetTurnMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	turn := input.Turn
	messages := []string{
		fmt.Sprintf("%s of team %s, step forward! Round %d awaits.", turn.PlayerName, turn.TeamName, turn.Round),
		fmt.Sprintf("Round %d: %s carries the banner for %s!", turn.Round, turn.PlayerName, turn.TeamName),
		fmt.Sprintf("The floor is yours, %s! Bring glory to %s.", turn.PlayerName, turn.TeamName),
		fmt.Sprintf("%s, your team %s is counting on you!", turn.PlayerName, turn.TeamName),
	}

	return &GetTurnMessageOutput{
		Message: messages[s.config.Roller.Intn(len(messages))],
	}, nil
}

// BuildShareText returns the clipboard text for a finished game
func (s *service) BuildShareText(input *BuildShareTextInput) (*BuildShareTextOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var b strings.Builder

	switch input.Mode {
	case models.GameModeParty:
		b.WriteString("Who Am I? Bible Riddles: Party Game 🎉\n")
		teams := make([]models.Team, len(input.Teams))
		copy(teams, input.Teams)
		sort.SliceStable(teams, func(i, j int) bool {
			return teams[i].Score > teams[j].Score
		})
		if len(teams) > 0 {
			fmt.Fprintf(&b, "Winner: %s %s with %d points!\n", teams[0].Avatar, teams[0].Name, teams[0].Score)
		}
		for _, team := range teams {
			fmt.Fprintf(&b, "%s %s: %d\n", team.Avatar, team.Name, team.Score)
		}

	case models.GameModeDaily:
		fmt.Fprintf(&b, "Who Am I? Bible Riddles: Daily Challenge %s 📜\n", input.Date)
		fmt.Fprintf(&b, "Score: %d\n", input.Score)

	case models.GameModeSuddenDeath:
		b.WriteString("Who Am I? Bible Riddles: Sudden Death ⚡\n")
		fmt.Fprintf(&b, "Survived %d riddles for %d points!\n", input.BestStreak, input.Score)

	default:
		b.WriteString("Who Am I? Bible Riddles 🕊️\n")
		fmt.Fprintf(&b, "Score: %d (%s)\n", input.Score, difficultyLabel(input.Difficulty))
		if input.BestStreak > 1 {
			fmt.Fprintf(&b, "Best streak: %d\n", input.BestStreak)
		}
	}

	b.WriteString("Can you guess who I am?")

	return &BuildShareTextOutput{Text: b.String()}, nil
}

func difficultyLabel(difficulty models.Difficulty) string {
	switch difficulty {
	case models.DifficultyMedium:
		return "Medium"
	case models.DifficultyHard:
		return "Hard"
	case models.DifficultyKids:
		return "Kids"
	default:
		return "Easy"
	}
}
