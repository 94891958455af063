package messaging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/rng"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service *service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := New(&Config{
		Roller: rng.New(&rng.Config{Seed: 42}),
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestWrongAnswerFeedbackNamesTheAnswer() {
	out, err := s.service.GetFeedbackMessage(&GetFeedbackMessageInput{
		Correct: false,
		Answer:  "Melchizedek",
	})
	s.Require().NoError(err)

	s.NotEmpty(out.Title)
	s.Contains(out.Message, "Melchizedek")
}

func (s *MessagingServiceTestSuite) TestCorrectFeedbackNeverLeaksTheAnswer() {
	for i := 0; i < 20; i++ {
		out, err := s.service.GetFeedbackMessage(&GetFeedbackMessageInput{
			Correct: true,
			Answer:  "Melchizedek",
			Streak:  i,
		})
		s.Require().NoError(err)
		s.NotContains(out.Message, "Melchizedek")
	}
}

func (s *MessagingServiceTestSuite) TestTurnMessageNamesPlayerAndTeam() {
	out, err := s.service.GetTurnMessage(&GetTurnMessageInput{
		Turn: models.Turn{
			PlayerName: "Miriam",
			TeamName:   "Prophets",
			Round:      2,
		},
	})
	s.Require().NoError(err)

	s.Contains(out.Message, "Miriam")
	s.Contains(out.Message, "Prophets")
}

func (s *MessagingServiceTestSuite) TestPartyShareNamesTheWinningTeam() {
	out, err := s.service.BuildShareText(&BuildShareTextInput{
		Mode: models.GameModeParty,
		Teams: []models.Team{
			{Name: "Prophets", Avatar: "🕊️", Score: 300},
			{Name: "Apostles", Avatar: "🔥", Score: 500},
		},
	})
	s.Require().NoError(err)

	lines := strings.Split(out.Text, "\n")
	s.Require().Greater(len(lines), 1)
	s.Contains(lines[0], "Bible Riddles: Party Game")
	s.Contains(lines[1], "Apostles")
	s.Contains(lines[1], "500")
}

func (s *MessagingServiceTestSuite) TestSoloShareCarriesScoreAndDifficulty() {
	out, err := s.service.BuildShareText(&BuildShareTextInput{
		Mode:       models.GameModeSingle,
		Score:      420,
		BestStreak: 6,
		Difficulty: models.DifficultyHard,
	})
	s.Require().NoError(err)

	s.Contains(out.Text, "420")
	s.Contains(out.Text, "Hard")
	s.Contains(out.Text, "Best streak: 6")
}

func (s *MessagingServiceTestSuite) TestDailyShareCarriesTheDate() {
	out, err := s.service.BuildShareText(&BuildShareTextInput{
		Mode:  models.GameModeDaily,
		Score: 250,
		Date:  "2025-03-09",
	})
	s.Require().NoError(err)

	s.Contains(out.Text, "Daily Challenge 2025-03-09")
	s.Contains(out.Text, "250")
	s.NotContains(out.Text, "—")
}
