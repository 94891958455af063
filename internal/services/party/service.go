package party

import (
	"errors"
	"fmt"

	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

// service edits party configurations and builds turn queues. Every edit
// is copy-on-write: the input config is never touched, and edits that
// would break a roster invariant return the input unchanged (UI guards,
// not errors).
type service struct {
	config *Config
}

// New creates a new party service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	return &service{config: cfg}, nil
}

// DefaultConfig returns a fresh two-team party
func (s *service) DefaultConfig() models.PartyConfig {
	cfg := models.PartyConfig{
		SeriesLength: 3,
		Flow:         models.FlowTurnBased,
	}
	for i, name := range defaultTeamNames {
		cfg.Teams = append(cfg.Teams, models.Team{
			ID:      s.config.UUIDGenerator.NewUUID(),
			Name:    name,
			Players: []models.Player{{ID: s.config.UUIDGenerator.NewUUID(), Name: "Player 1"}},
			Color:   teamColors[i%len(teamColors)],
			Avatar:  teamAvatars[i%len(teamAvatars)],
		})
	}
	return cfg
}

// AddTeam appends a team with one player; refused at MaxTeams
func (s *service) AddTeam(cfg models.PartyConfig) models.PartyConfig {
	if len(cfg.Teams) >= models.MaxTeams {
		return cfg
	}

	out := cfg.Clone()
	idx := len(out.Teams)
	out.Teams = append(out.Teams, models.Team{
		ID:      s.config.UUIDGenerator.NewUUID(),
		Name:    fmt.Sprintf("Team %d", idx+1),
		Players: []models.Player{{ID: s.config.UUIDGenerator.NewUUID(), Name: "Player 1"}},
		Color:   teamColors[idx%len(teamColors)],
		Avatar:  teamAvatars[idx%len(teamAvatars)],
	})
	return out
}

// RemoveTeam drops a team; refused at MinTeams or unknown ID
func (s *service) RemoveTeam(cfg models.PartyConfig, teamID string) models.PartyConfig {
	if len(cfg.Teams) <= models.MinTeams {
		return cfg
	}

	out := cfg.Clone()
	for i, team := range out.Teams {
		if team.ID == teamID {
			out.Teams = append(out.Teams[:i], out.Teams[i+1:]...)
			return out
		}
	}
	return cfg
}

// RenameTeam sets a team's display name; refused for empty names
func (s *service) RenameTeam(cfg models.PartyConfig, teamID, name string) models.PartyConfig {
	if name == "" {
		return cfg
	}

	out := cfg.Clone()
	for i := range out.Teams {
		if out.Teams[i].ID == teamID {
			out.Teams[i].Name = name
			return out
		}
	}
	return cfg
}

// SetTeamAvatar sets a team's avatar
func (s *service) SetTeamAvatar(cfg models.PartyConfig, teamID, avatar string) models.PartyConfig {
	if avatar == "" {
		return cfg
	}

	out := cfg.Clone()
	for i := range out.Teams {
		if out.Teams[i].ID == teamID {
			out.Teams[i].Avatar = avatar
			return out
		}
	}
	return cfg
}

// AddPlayer appends a player to a team; refused at MaxPlayersPerTeam
func (s *service) AddPlayer(cfg models.PartyConfig, teamID string) models.PartyConfig {
	out := cfg.Clone()
	for i := range out.Teams {
		if out.Teams[i].ID != teamID {
			continue
		}
		if len(out.Teams[i].Players) >= models.MaxPlayersPerTeam {
			return cfg
		}
		out.Teams[i].Players = append(out.Teams[i].Players, models.Player{
			ID:   s.config.UUIDGenerator.NewUUID(),
			Name: fmt.Sprintf("Player %d", len(out.Teams[i].Players)+1),
		})
		return out
	}
	return cfg
}

// RemovePlayer drops a player; each team keeps at least one
func (s *service) RemovePlayer(cfg models.PartyConfig, teamID, playerID string) models.PartyConfig {
	out := cfg.Clone()
	for i := range out.Teams {
		if out.Teams[i].ID != teamID {
			continue
		}
		if len(out.Teams[i].Players) <= models.MinPlayersPerTeam {
			return cfg
		}
		for j, player := range out.Teams[i].Players {
			if player.ID == playerID {
				out.Teams[i].Players = append(out.Teams[i].Players[:j], out.Teams[i].Players[j+1:]...)
				return out
			}
		}
		return cfg
	}
	return cfg
}

// RenamePlayer sets a player's display name
func (s *service) RenamePlayer(cfg models.PartyConfig, teamID, playerID, name string) models.PartyConfig {
	if name == "" {
		return cfg
	}

	out := cfg.Clone()
	for i := range out.Teams {
		if out.Teams[i].ID != teamID {
			continue
		}
		for j := range out.Teams[i].Players {
			if out.Teams[i].Players[j].ID == playerID {
				out.Teams[i].Players[j].Name = name
				return out
			}
		}
	}
	return cfg
}

// SetFlow selects the turn ordering style
func (s *service) SetFlow(cfg models.PartyConfig, flow models.PartyFlow) models.PartyConfig {
	if flow != models.FlowTurnBased && flow != models.FlowTeamBased {
		return cfg
	}

	out := cfg.Clone()
	out.Flow = flow
	return out
}

// SetSeriesLength sets rounds per player; refused outside the allowed set
func (s *service) SetSeriesLength(cfg models.PartyConfig, length int) models.PartyConfig {
	allowed := false
	for _, n := range models.SeriesLengths {
		if n == length {
			allowed = true
			break
		}
	}
	if !allowed {
		return cfg
	}

	out := cfg.Clone()
	out.SeriesLength = length
	return out
}

// ResetScores zeroes every team score for a new game
func (s *service) ResetScores(cfg models.PartyConfig) models.PartyConfig {
	out := cfg.Clone()
	for i := range out.Teams {
		out.Teams[i].Score = 0
	}
	return out
}

// BuildTurnQueue expands the config into the full ordered turn sequence.
// The queue is computed whole at game start and read-only afterwards.
func (s *service) BuildTurnQueue(cfg models.PartyConfig) []models.Turn {
	return BuildTurnQueue(cfg)
}

// BuildTurnQueue is the pure queue expansion.
//
// TURN_BASED cycles teams turn by turn: for each round, for each player
// index, each team that still has a player at that index takes one turn.
// Teams with shorter rosters are skipped at the indexes they lack, not
// substituted.
//
// TEAM_BASED lets one team finish its whole series before the next
// begins: for each team, for each round, each of its players in order.
func BuildTurnQueue(cfg models.PartyConfig) []models.Turn {
	var queue []models.Turn

	switch cfg.Flow {
	case models.FlowTeamBased:
		for _, team := range cfg.Teams {
			for round := 1; round <= cfg.SeriesLength; round++ {
				for _, player := range team.Players {
					queue = append(queue, makeTurn(team, player, round))
				}
			}
		}
	default:
		maxPlayers := 0
		for _, team := range cfg.Teams {
			if len(team.Players) > maxPlayers {
				maxPlayers = len(team.Players)
			}
		}
		for round := 1; round <= cfg.SeriesLength; round++ {
			for idx := 0; idx < maxPlayers; idx++ {
				for _, team := range cfg.Teams {
					if idx < len(team.Players) {
						queue = append(queue, makeTurn(team, team.Players[idx], round))
					}
				}
			}
		}
	}

	return queue
}

func makeTurn(team models.Team, player models.Player, round int) models.Turn {
	return models.Turn{
		TeamID:     team.ID,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		TeamName:   team.Name,
		TeamColor:  team.Color,
		TeamAvatar: team.Avatar,
		Round:      round,
	}
}
