package scoring

import (
	"errors"
	"math"
	"time"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// engine resolves answers, skips and power-ups as pure state reductions.
// It never touches the wall clock or any store; the caller owns the
// snapshots and the engine returns updated copies.
type engine struct {
	config *Config
}

// New creates a new scoring engine
func New(cfg *Config) (*engine, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	return &engine{config: cfg}, nil
}

// Answer resolves one answer or timeout against the current snapshots
func (e *engine) Answer(input *AnswerInput) (*AnswerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Riddle == nil {
		return nil, errors.New("riddle cannot be nil")
	}

	output := &AnswerOutput{
		Session: input.Session.Clone(),
		Teams:   cloneTeams(input.Teams),
	}

	correct := !input.Timeout && input.Selected == input.Riddle.CorrectAnswer
	output.Correct = correct
	output.FeedbackDelay = feedbackDelay(input.Session.Difficulty, correct)

	if !correct {
		e.resolveWrong(output)
		return output, nil
	}

	e.resolveCorrect(input, output)
	return output, nil
}

func (e *engine) resolveCorrect(input *AnswerInput, output *AnswerOutput) {
	session := &output.Session

	streakBefore := session.Streak
	session.Streak = streakBefore + 1

	base := BasePoints
	if session.Mode == models.GameModeSuddenDeath {
		base = int(math.Round(float64(BasePoints) * (1 + 0.1*float64(streakBefore))))
	}

	points := base
	if session.Mode == models.GameModeSingle || session.Mode == models.GameModeDaily {
		bonus := 0.02 + float64(session.Streak-1)*0.01
		points = int(math.Round(float64(base) * (1 + bonus)))
	}
	output.Points = points

	if session.Mode == models.GameModeParty {
		output.Points = BasePoints
		for i := range output.Teams {
			if output.Teams[i].ID == input.TurnTeamID {
				output.Teams[i].Score += BasePoints
				break
			}
		}
	} else {
		session.Score += points
		if session.Score > session.HighScore {
			session.HighScore = session.Score
		}
	}

	if session.CategoryScores == nil {
		session.CategoryScores = make(map[string]int)
	}
	session.CategoryScores[input.Riddle.Category] += base

	if session.Mode == models.GameModeSingle &&
		session.Difficulty == models.DifficultyEasy &&
		session.Streak == AscensionStreak &&
		!session.AscensionOffered {
		session.AscensionOffered = true
		output.AscensionOffer = true
	}
}

func (e *engine) resolveWrong(output *AnswerOutput) {
	session := &output.Session

	switch session.Mode {
	case models.GameModeSingle:
		session.Streak = 0
	case models.GameModeSuddenDeath:
		session.Streak = 0
		output.GameOver = true
	}
}

// Skip abandons the current question. It counts as wrong for the streak
// and, outside party mode, costs a few points.
func (e *engine) Skip(input *SkipInput) (*SkipOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &SkipOutput{
		Session: input.Session.Clone(),
		Teams:   cloneTeams(input.Teams),
	}
	session := &output.Session

	switch session.Mode {
	case models.GameModeSingle:
		session.Streak = 0
		session.Score = floorZero(session.Score - SkipPenalty)
	case models.GameModeDaily:
		session.Score = floorZero(session.Score - SkipPenalty)
	case models.GameModeSuddenDeath:
		session.Streak = 0
		output.GameOver = true
	}

	return output, nil
}

// Hint charges for one hint reveal. Guards refuse without charging.
func (e *engine) Hint(input *HintInput) (*HintOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &HintOutput{
		Session:   input.Session.Clone(),
		Teams:     cloneTeams(input.Teams),
		HintLevel: input.HintLevel,
	}

	if input.Selected || input.HintLevel >= MaxHintLevel || e.balance(input.Session, input.Teams, input.TurnTeamID) < HintCost {
		output.Refused = true
		return output, nil
	}

	e.charge(output, input.TurnTeamID, HintCost)
	output.HintLevel = input.HintLevel + 1
	return output, nil
}

// FiftyFifty charges for hiding two wrong options, picked at random from
// the riddle's three incorrect ones. Guards refuse without charging.
func (e *engine) FiftyFifty(input *FiftyFiftyInput) (*FiftyFiftyOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Riddle == nil {
		return nil, errors.New("riddle cannot be nil")
	}

	output := &FiftyFiftyOutput{
		Session: input.Session.Clone(),
		Teams:   cloneTeams(input.Teams),
	}

	if input.Used || input.Selected || e.balance(input.Session, input.Teams, input.TurnTeamID) < FiftyFiftyCost {
		output.Refused = true
		return output, nil
	}

	var wrong []string
	for _, option := range input.Riddle.Options {
		if option != input.Riddle.CorrectAnswer {
			wrong = append(wrong, option)
		}
	}
	e.config.Roller.Shuffle(len(wrong), func(i, j int) {
		wrong[i], wrong[j] = wrong[j], wrong[i]
	})
	if len(wrong) > 2 {
		wrong = wrong[:2]
	}

	e.charge(output, input.TurnTeamID, FiftyFiftyCost)
	output.Removed = wrong
	return output, nil
}

// balance returns the score the acting scope can spend
func (e *engine) balance(session models.GameSession, teams []models.Team, turnTeamID string) int {
	if session.Mode == models.GameModeParty {
		for _, team := range teams {
			if team.ID == turnTeamID {
				return team.Score
			}
		}
		return 0
	}
	return session.Score
}

type chargeable interface {
	scope() (*models.GameSession, []models.Team)
}

func (o *HintOutput) scope() (*models.GameSession, []models.Team) {
	return &o.Session, o.Teams
}

func (o *FiftyFiftyOutput) scope() (*models.GameSession, []models.Team) {
	return &o.Session, o.Teams
}

func (e *engine) charge(target chargeable, turnTeamID string, cost int) {
	session, teams := target.scope()
	if session.Mode == models.GameModeParty {
		for i := range teams {
			if teams[i].ID == turnTeamID {
				teams[i].Score = floorZero(teams[i].Score - cost)
				return
			}
		}
		return
	}
	session.Score = floorZero(session.Score - cost)
}

// feedbackDelay returns the UI pause shown after an answer
func feedbackDelay(difficulty models.Difficulty, correct bool) time.Duration {
	if difficulty == models.DifficultyKids {
		if correct {
			return KidsCorrectDelay
		}
		return KidsWrongDelay
	}
	if correct {
		return CorrectDelay
	}
	return WrongDelay
}

func cloneTeams(teams []models.Team) []models.Team {
	if teams == nil {
		return nil
	}
	out := make([]models.Team, len(teams))
	for i, team := range teams {
		out[i] = team.Clone()
	}
	return out
}

func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
