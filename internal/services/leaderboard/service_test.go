package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mockClock "github.com/salex1993/Who-Am-I-Bible-Riddles/internal/common/clock/mocks"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	leaderboardRepo "github.com/salex1993/Who-Am-I-Bible-Riddles/internal/repositories/leaderboard"
)

type LeaderboardServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	mockClock *mockClock.MockClock
	repo      leaderboardRepo.Repository
	service   *service
}

func (s *LeaderboardServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.mockClock = mockClock.NewMockClock(s.ctrl)
	s.mockClock.EXPECT().Now().
		Return(time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)).
		AnyTimes()

	s.repo = leaderboardRepo.NewMemory()

	svc, err := New(&Config{
		LeaderboardRepo: s.repo,
		Clock:           s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LeaderboardServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}

func (s *LeaderboardServiceTestSuite) submit(name string, score int) *SubmitScoreOutput {
	out, err := s.service.SubmitScore(s.ctx, &SubmitScoreInput{
		Name:       name,
		Score:      score,
		Avatar:     "🕊️",
		Difficulty: models.DifficultyMedium,
	})
	s.Require().NoError(err)
	return out
}

func (s *LeaderboardServiceTestSuite) TestFirstSubmissionTopsTheBoard() {
	out := s.submit("abc", 300)

	s.True(out.Qualified)
	s.Equal(1, out.Position)
	s.Require().Len(out.Entries, 1)
	s.Equal("ABC", out.Entries[0].Name)
	s.Equal("2025-03-09", out.Entries[0].Date)
}

func (s *LeaderboardServiceTestSuite) TestBoardStaysSortedAndBounded() {
	scores := []int{300, 100, 500, 200, 400, 250}
	for _, score := range scores {
		s.submit("aaa", score)
	}

	entries, err := s.repo.GetEntries(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(entries, models.MaxLeaderboardEntries)
	s.Equal([]int{500, 400, 300, 250, 200}, []int{
		entries[0].Score, entries[1].Score, entries[2].Score, entries[3].Score, entries[4].Score,
	})
}

func (s *LeaderboardServiceTestSuite) TestLowScoreDoesNotQualifyOnAFullBoard() {
	for _, score := range []int{500, 400, 300, 200, 100} {
		s.submit("aaa", score)
	}

	out := s.submit("zzz", 50)
	s.False(out.Qualified)
	s.Zero(out.Position)
	s.Len(out.Entries, models.MaxLeaderboardEntries)
}

func (s *LeaderboardServiceTestSuite) TestTieFavorsTheIncumbent() {
	s.submit("old", 300)
	out := s.submit("new", 300)

	s.True(out.Qualified)
	s.Equal(2, out.Position)
	s.Equal("OLD", out.Entries[0].Name)
	s.Equal("NEW", out.Entries[1].Name)
}

func (s *LeaderboardServiceTestSuite) TestNameIsClampedAndUppercased() {
	out := s.submit("  solomon  ", 100)
	s.Equal("SOL", out.Entries[0].Name)

	out = s.submit("", 120)
	s.Equal("???", out.Entries[0].Name)
}

func (s *LeaderboardServiceTestSuite) TestRecordHighScoreOnlyImproves() {
	s.Require().NoError(s.service.RecordHighScore(s.ctx, 300))

	board, err := s.service.GetBoard(s.ctx)
	s.Require().NoError(err)
	s.Equal(300, board.HighScore)

	s.Require().NoError(s.service.RecordHighScore(s.ctx, 200))
	board, err = s.service.GetBoard(s.ctx)
	s.Require().NoError(err)
	s.Equal(300, board.HighScore)

	s.Require().NoError(s.service.RecordHighScore(s.ctx, 450))
	board, err = s.service.GetBoard(s.ctx)
	s.Require().NoError(err)
	s.Equal(450, board.HighScore)
}
