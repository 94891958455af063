package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/rng"
	mockRng "github.com/salex1993/Who-Am-I-Bible-Riddles/internal/rng/mocks"
)

type ScoringEngineTestSuite struct {
	suite.Suite
	engine *engine
	riddle *models.PresentedRiddle
}

func (s *ScoringEngineTestSuite) SetupTest() {
	eng, err := New(&Config{
		Roller: rng.New(&rng.Config{Seed: 42}),
	})
	s.Require().NoError(err)
	s.engine = eng

	s.riddle = &models.PresentedRiddle{
		Question:      "A shepherd boy with sling and stone...",
		Options:       []string{"David", "Saul", "Solomon", "Jonathan"},
		CorrectAnswer: "David",
		Reference:     "1 Samuel 17",
		Category:      "Kings & Rulers",
	}
}

func TestScoringEngineTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringEngineTestSuite))
}

func (s *ScoringEngineTestSuite) soloSession() models.GameSession {
	return models.GameSession{
		Mode:           models.GameModeSingle,
		Difficulty:     models.DifficultyMedium,
		CategoryScores: make(map[string]int),
	}
}

func (s *ScoringEngineTestSuite) TestCorrectAnswerAppliesStreakBonus() {
	session := s.soloSession()

	out, err := s.engine.Answer(&AnswerInput{
		Session:  session,
		Riddle:   s.riddle,
		Selected: "David",
	})
	s.Require().NoError(err)

	s.True(out.Correct)
	s.Equal(1, out.Session.Streak)
	// First correct answer: round(100 * 1.02).
	s.Equal(102, out.Points)
	s.Equal(102, out.Session.Score)
}

func (s *ScoringEngineTestSuite) TestBonusGrowsWithStreak() {
	session := s.soloSession()
	session.Streak = 4

	out, err := s.engine.Answer(&AnswerInput{
		Session:  session,
		Riddle:   s.riddle,
		Selected: "David",
	})
	s.Require().NoError(err)

	// Fifth in a row: round(100 * 1.06).
	s.Equal(5, out.Session.Streak)
	s.Equal(106, out.Points)
}

func (s *ScoringEngineTestSuite) TestSuddenDeathBaseGrowsWithStreakBefore() {
	session := models.GameSession{
		Mode:           models.GameModeSuddenDeath,
		Difficulty:     models.DifficultyHard,
		Streak:         3,
		CategoryScores: make(map[string]int),
	}

	out, err := s.engine.Answer(&AnswerInput{
		Session:  session,
		Riddle:   s.riddle,
		Selected: "David",
	})
	s.Require().NoError(err)

	// round(100 * (1 + 3*0.1)) with no percentage bonus on top.
	s.Equal(130, out.Points)
	s.Equal(130, out.Session.Score)
	s.Equal(130, out.Session.CategoryScores["Kings & Rulers"])
}

func (s *ScoringEngineTestSuite) TestPartyCreditsTheActingTeamFlatBase() {
	session := models.GameSession{
		Mode:           models.GameModeParty,
		Difficulty:     models.DifficultyEasy,
		CategoryScores: make(map[string]int),
	}
	teams := []models.Team{
		{ID: "team-1", Name: "Prophets"},
		{ID: "team-2", Name: "Apostles"},
	}

	out, err := s.engine.Answer(&AnswerInput{
		Session:    session,
		Teams:      teams,
		TurnTeamID: "team-2",
		Riddle:     s.riddle,
		Selected:   "David",
	})
	s.Require().NoError(err)

	s.Equal(BasePoints, out.Points)
	s.Zero(out.Session.Score)
	s.Zero(out.Teams[0].Score)
	s.Equal(BasePoints, out.Teams[1].Score)
	// The category ledger accrues in every mode.
	s.Equal(BasePoints, out.Session.CategoryScores["Kings & Rulers"])
}

func (s *ScoringEngineTestSuite) TestHighScoreTracksSessionScore() {
	session := s.soloSession()
	session.Score = 90
	session.HighScore = 150

	out, err := s.engine.Answer(&AnswerInput{
		Session:  session,
		Riddle:   s.riddle,
		Selected: "David",
	})
	s.Require().NoError(err)

	s.Equal(192, out.Session.Score)
	s.Equal(192, out.Session.HighScore)
}

func (s *ScoringEngineTestSuite) TestWrongAnswerResetsStreakInSoloOnly() {
	solo := s.soloSession()
	solo.Streak = 7

	out, err := s.engine.Answer(&AnswerInput{
		Session:  solo,
		Riddle:   s.riddle,
		Selected: "Saul",
	})
	s.Require().NoError(err)
	s.False(out.Correct)
	s.Zero(out.Session.Streak)
	s.False(out.GameOver)

	daily := models.GameSession{
		Mode:           models.GameModeDaily,
		Streak:         2,
		CategoryScores: make(map[string]int),
	}
	out, err = s.engine.Answer(&AnswerInput{
		Session:  daily,
		Riddle:   s.riddle,
		Selected: "Saul",
	})
	s.Require().NoError(err)
	s.Equal(2, out.Session.Streak)
}

func (s *ScoringEngineTestSuite) TestSuddenDeathEndsOnWrongAnswer() {
	session := models.GameSession{
		Mode:           models.GameModeSuddenDeath,
		Streak:         4,
		CategoryScores: make(map[string]int),
	}

	out, err := s.engine.Answer(&AnswerInput{
		Session:  session,
		Riddle:   s.riddle,
		Selected: "Saul",
	})
	s.Require().NoError(err)

	s.True(out.GameOver)
	s.Zero(out.Session.Streak)
}

func (s *ScoringEngineTestSuite) TestTimeoutCountsAsWrongWithoutSelection() {
	session := s.soloSession()
	session.Streak = 3

	out, err := s.engine.Answer(&AnswerInput{
		Session: session,
		Riddle:  s.riddle,
		Timeout: true,
	})
	s.Require().NoError(err)

	s.False(out.Correct)
	s.Zero(out.Session.Streak)
}

func (s *ScoringEngineTestSuite) TestFeedbackDelays() {
	session := s.soloSession()

	out, err := s.engine.Answer(&AnswerInput{Session: session, Riddle: s.riddle, Selected: "David"})
	s.Require().NoError(err)
	s.Equal(1*time.Second, out.FeedbackDelay)

	out, err = s.engine.Answer(&AnswerInput{Session: session, Riddle: s.riddle, Selected: "Saul"})
	s.Require().NoError(err)
	s.Equal(2500*time.Millisecond, out.FeedbackDelay)

	kids := s.soloSession()
	kids.Difficulty = models.DifficultyKids

	out, err = s.engine.Answer(&AnswerInput{Session: kids, Riddle: s.riddle, Selected: "David"})
	s.Require().NoError(err)
	s.Equal(1500*time.Millisecond, out.FeedbackDelay)

	out, err = s.engine.Answer(&AnswerInput{Session: kids, Riddle: s.riddle, Selected: "Saul"})
	s.Require().NoError(err)
	s.Equal(2*time.Second, out.FeedbackDelay)
}

func (s *ScoringEngineTestSuite) TestAscensionFiresOnlyAtExactlyFiveOnEasy() {
	session := s.soloSession()
	session.Difficulty = models.DifficultyEasy
	session.Streak = 4

	out, err := s.engine.Answer(&AnswerInput{Session: session, Riddle: s.riddle, Selected: "David"})
	s.Require().NoError(err)
	s.True(out.AscensionOffer)
	s.True(out.Session.AscensionOffered)

	// A later streak of 5 in the same session must not re-offer.
	again := out.Session
	again.Streak = 4
	out, err = s.engine.Answer(&AnswerInput{Session: again, Riddle: s.riddle, Selected: "David"})
	s.Require().NoError(err)
	s.False(out.AscensionOffer)

	// Streak passing through 6 never offers.
	past := s.soloSession()
	past.Difficulty = models.DifficultyEasy
	past.Streak = 5
	out, err = s.engine.Answer(&AnswerInput{Session: past, Riddle: s.riddle, Selected: "David"})
	s.Require().NoError(err)
	s.False(out.AscensionOffer)
}

func (s *ScoringEngineTestSuite) TestSkipPenaltyFloorsAtZero() {
	session := s.soloSession()
	session.Score = 3
	session.Streak = 2

	out, err := s.engine.Skip(&SkipInput{Session: session})
	s.Require().NoError(err)

	s.Zero(out.Session.Score)
	s.Zero(out.Session.Streak)
	s.False(out.GameOver)
}

func (s *ScoringEngineTestSuite) TestSkipIsFreeInPartyAndFatalInSuddenDeath() {
	party := models.GameSession{Mode: models.GameModeParty, CategoryScores: make(map[string]int)}
	teams := []models.Team{{ID: "team-1", Score: 200}}

	out, err := s.engine.Skip(&SkipInput{Session: party, Teams: teams, TurnTeamID: "team-1"})
	s.Require().NoError(err)
	s.Equal(200, out.Teams[0].Score)
	s.False(out.GameOver)

	sd := models.GameSession{Mode: models.GameModeSuddenDeath, Score: 300, CategoryScores: make(map[string]int)}
	out, err = s.engine.Skip(&SkipInput{Session: sd})
	s.Require().NoError(err)
	s.True(out.GameOver)
	s.Equal(300, out.Session.Score)
}

func (s *ScoringEngineTestSuite) TestHintChargesAndCaps() {
	session := s.soloSession()
	session.Score = 12

	out, err := s.engine.Hint(&HintInput{Session: session, HintLevel: 0})
	s.Require().NoError(err)
	s.False(out.Refused)
	s.Equal(1, out.HintLevel)
	s.Equal(7, out.Session.Score)

	out, err = s.engine.Hint(&HintInput{Session: out.Session, HintLevel: 1})
	s.Require().NoError(err)
	s.False(out.Refused)
	s.Equal(2, out.HintLevel)
	s.Equal(2, out.Session.Score)

	// Third hint is refused regardless of balance.
	rich := out.Session
	rich.Score = 100
	out, err = s.engine.Hint(&HintInput{Session: rich, HintLevel: 2})
	s.Require().NoError(err)
	s.True(out.Refused)
	s.Equal(100, out.Session.Score)
}

func (s *ScoringEngineTestSuite) TestHintRefusedWhenBrokeOrAlreadyAnswered() {
	broke := s.soloSession()
	broke.Score = 4

	out, err := s.engine.Hint(&HintInput{Session: broke, HintLevel: 0})
	s.Require().NoError(err)
	s.True(out.Refused)
	s.Equal(4, out.Session.Score)

	answered := s.soloSession()
	answered.Score = 50
	out, err = s.engine.Hint(&HintInput{Session: answered, HintLevel: 0, Selected: true})
	s.Require().NoError(err)
	s.True(out.Refused)
}

func (s *ScoringEngineTestSuite) TestHintChargesTheActingTeamInParty() {
	session := models.GameSession{Mode: models.GameModeParty, CategoryScores: make(map[string]int)}
	teams := []models.Team{
		{ID: "team-1", Score: 100},
		{ID: "team-2", Score: 3},
	}

	out, err := s.engine.Hint(&HintInput{Session: session, Teams: teams, TurnTeamID: "team-1"})
	s.Require().NoError(err)
	s.False(out.Refused)
	s.Equal(95, out.Teams[0].Score)
	s.Equal(3, out.Teams[1].Score)

	// The poor team cannot afford one.
	out, err = s.engine.Hint(&HintInput{Session: session, Teams: teams, TurnTeamID: "team-2"})
	s.Require().NoError(err)
	s.True(out.Refused)
}

func (s *ScoringEngineTestSuite) TestFiftyFiftyRemovesTwoWrongOptions() {
	session := s.soloSession()
	session.Score = 100

	out, err := s.engine.FiftyFifty(&FiftyFiftyInput{
		Session: session,
		Riddle:  s.riddle,
	})
	s.Require().NoError(err)

	s.False(out.Refused)
	s.Equal(60, out.Session.Score)
	s.Require().Len(out.Removed, 2)
	for _, removed := range out.Removed {
		s.NotEqual(s.riddle.CorrectAnswer, removed)
		s.Contains(s.riddle.Options, removed)
	}
}

func (s *ScoringEngineTestSuite) TestFiftyFiftyRemovalFollowsTheRoller() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockRoller := mockRng.NewMockRoller(ctrl)
	mockRoller.EXPECT().Shuffle(3, gomock.Any()).
		Do(func(n int, swap func(i, j int)) {
			// Reverse the wrong options: [Saul Solomon Jonathan] -> [Jonathan Solomon Saul].
			swap(0, 2)
		})

	eng, err := New(&Config{Roller: mockRoller})
	s.Require().NoError(err)

	session := s.soloSession()
	session.Score = 100

	out, err := eng.FiftyFifty(&FiftyFiftyInput{Session: session, Riddle: s.riddle})
	s.Require().NoError(err)
	s.Equal([]string{"Jonathan", "Solomon"}, out.Removed)
}

func (s *ScoringEngineTestSuite) TestFiftyFiftyGuards() {
	broke := s.soloSession()
	broke.Score = 39

	out, err := s.engine.FiftyFifty(&FiftyFiftyInput{Session: broke, Riddle: s.riddle})
	s.Require().NoError(err)
	s.True(out.Refused)
	s.Equal(39, out.Session.Score)

	rich := s.soloSession()
	rich.Score = 100

	out, err = s.engine.FiftyFifty(&FiftyFiftyInput{Session: rich, Riddle: s.riddle, Used: true})
	s.Require().NoError(err)
	s.True(out.Refused)

	out, err = s.engine.FiftyFifty(&FiftyFiftyInput{Session: rich, Riddle: s.riddle, Selected: true})
	s.Require().NoError(err)
	s.True(out.Refused)
}

func (s *ScoringEngineTestSuite) TestScoresNeverGoNegative() {
	session := s.soloSession()
	session.Score = 0

	out, err := s.engine.Skip(&SkipInput{Session: session})
	s.Require().NoError(err)
	s.GreaterOrEqual(out.Session.Score, 0)
}

func (s *ScoringEngineTestSuite) TestInputSnapshotsAreNotMutated() {
	session := s.soloSession()
	session.Score = 100
	teams := []models.Team{{ID: "team-1", Score: 50}}

	_, err := s.engine.Answer(&AnswerInput{
		Session:  session,
		Teams:    teams,
		Riddle:   s.riddle,
		Selected: "David",
	})
	s.Require().NoError(err)

	s.Equal(100, session.Score)
	s.Zero(session.Streak)
	s.Equal(50, teams[0].Score)
	s.Empty(session.CategoryScores)
}
