package party

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	mockUUID "github.com/salex1993/Who-Am-I-Bible-Riddles/internal/common/uuid/mocks"
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
	"go.uber.org/mock/gomock"
)

type PartyServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockUUID *mockUUID.MockUUID
	service  *service
}

func (s *PartyServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUUID = mockUUID.NewMockUUID(s.ctrl)

	next := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	}).AnyTimes()

	svc, err := New(&Config{UUIDGenerator: s.mockUUID})
	s.Require().NoError(err)
	s.service = svc
}

func (s *PartyServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}

func (s *PartyServiceTestSuite) TestDefaultConfigHasTwoTeamsOfOne() {
	cfg := s.service.DefaultConfig()

	s.Require().Len(cfg.Teams, 2)
	s.Equal("Prophets", cfg.Teams[0].Name)
	s.Equal("Apostles", cfg.Teams[1].Name)
	s.Len(cfg.Teams[0].Players, 1)
	s.Len(cfg.Teams[1].Players, 1)
	s.Equal(3, cfg.SeriesLength)
	s.Equal(models.FlowTurnBased, cfg.Flow)
}

func (s *PartyServiceTestSuite) TestAddTeamStopsAtMax() {
	cfg := s.service.DefaultConfig()

	cfg = s.service.AddTeam(cfg)
	cfg = s.service.AddTeam(cfg)
	s.Require().Len(cfg.Teams, models.MaxTeams)

	unchanged := s.service.AddTeam(cfg)
	s.Len(unchanged.Teams, models.MaxTeams)
}

func (s *PartyServiceTestSuite) TestRemoveTeamKeepsMinimum() {
	cfg := s.service.DefaultConfig()

	unchanged := s.service.RemoveTeam(cfg, cfg.Teams[0].ID)
	s.Len(unchanged.Teams, models.MinTeams)

	cfg = s.service.AddTeam(cfg)
	removed := s.service.RemoveTeam(cfg, cfg.Teams[2].ID)
	s.Len(removed.Teams, 2)
}

func (s *PartyServiceTestSuite) TestEditsAreCopyOnWrite() {
	cfg := s.service.DefaultConfig()

	renamed := s.service.RenameTeam(cfg, cfg.Teams[0].ID, "Levites")

	s.Equal("Prophets", cfg.Teams[0].Name)
	s.Equal("Levites", renamed.Teams[0].Name)
}

func (s *PartyServiceTestSuite) TestAddPlayerStopsAtMax() {
	cfg := s.service.DefaultConfig()
	teamID := cfg.Teams[0].ID

	for i := 0; i < models.MaxPlayersPerTeam+3; i++ {
		cfg = s.service.AddPlayer(cfg, teamID)
	}
	s.Len(cfg.Teams[0].Players, models.MaxPlayersPerTeam)
}

func (s *PartyServiceTestSuite) TestRemovePlayerKeepsOne() {
	cfg := s.service.DefaultConfig()
	teamID := cfg.Teams[0].ID

	unchanged := s.service.RemovePlayer(cfg, teamID, cfg.Teams[0].Players[0].ID)
	s.Len(unchanged.Teams[0].Players, 1)

	cfg = s.service.AddPlayer(cfg, teamID)
	removed := s.service.RemovePlayer(cfg, teamID, cfg.Teams[0].Players[0].ID)
	s.Len(removed.Teams[0].Players, 1)
}

func (s *PartyServiceTestSuite) TestSetSeriesLengthRefusesValuesOutsideTheSet() {
	cfg := s.service.DefaultConfig()

	cfg = s.service.SetSeriesLength(cfg, 10)
	s.Equal(10, cfg.SeriesLength)

	cfg = s.service.SetSeriesLength(cfg, 4)
	s.Equal(10, cfg.SeriesLength)
}

func (s *PartyServiceTestSuite) TestResetScores() {
	cfg := s.service.DefaultConfig()
	cfg.Teams[0].Score = 300
	cfg.Teams[1].Score = 500

	cfg = s.service.ResetScores(cfg)
	s.Zero(cfg.Teams[0].Score)
	s.Zero(cfg.Teams[1].Score)
}

func (s *PartyServiceTestSuite) TestTurnBasedQueueRotatesTeamsAndSkipsShortRosters() {
	cfg := s.service.DefaultConfig()
	// Team A gets a second player, team B keeps one.
	cfg = s.service.AddPlayer(cfg, cfg.Teams[0].ID)
	cfg = s.service.SetSeriesLength(cfg, 1)

	queue := BuildTurnQueue(cfg)
	s.Require().Len(queue, 3)

	// Player index 0: both teams in order; index 1: only team A remains.
	s.Equal(cfg.Teams[0].ID, queue[0].TeamID)
	s.Equal(cfg.Teams[1].ID, queue[1].TeamID)
	s.Equal(cfg.Teams[0].ID, queue[2].TeamID)
	s.Equal(cfg.Teams[0].Players[1].ID, queue[2].PlayerID)
}

func (s *PartyServiceTestSuite) TestTeamBasedQueueFinishesOneTeamBeforeTheNext() {
	cfg := s.service.DefaultConfig()
	cfg = s.service.AddPlayer(cfg, cfg.Teams[0].ID)
	cfg = s.service.SetFlow(cfg, models.FlowTeamBased)
	// SeriesLength stays 3: team A plays 6 turns, then team B plays 3.

	queue := BuildTurnQueue(cfg)
	s.Require().Len(queue, 9)

	for i := 0; i < 6; i++ {
		s.Equal(cfg.Teams[0].ID, queue[i].TeamID)
	}
	for i := 6; i < 9; i++ {
		s.Equal(cfg.Teams[1].ID, queue[i].TeamID)
	}

	// Rounds ascend within a team.
	s.Equal(1, queue[0].Round)
	s.Equal(1, queue[1].Round)
	s.Equal(2, queue[2].Round)
}

func (s *PartyServiceTestSuite) TestQueueLengthMatchesRosterTimesSeries() {
	cfg := s.service.DefaultConfig()
	cfg = s.service.AddTeam(cfg)
	cfg = s.service.AddPlayer(cfg, cfg.Teams[2].ID)
	cfg = s.service.SetSeriesLength(cfg, 5)

	queue := BuildTurnQueue(cfg)
	s.Len(queue, 5*4)
}
