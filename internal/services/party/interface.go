package party

import (
	"github.com/salex1993/Who-Am-I-Bible-Riddles/internal/models"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/salex1993/Who-Am-I-Bible-Riddles/internal/services/party Service

// Service edits party configurations and builds turn queues
type Service interface {
	// DefaultConfig returns a fresh two-team party
	DefaultConfig() models.PartyConfig

	// AddTeam appends a team with one player
	AddTeam(cfg models.PartyConfig) models.PartyConfig

	// RemoveTeam drops a team
	RemoveTeam(cfg models.PartyConfig, teamID string) models.PartyConfig

	// RenameTeam sets a team's display name
	RenameTeam(cfg models.PartyConfig, teamID, name string) models.PartyConfig

	// SetTeamAvatar sets a team's avatar
	SetTeamAvatar(cfg models.PartyConfig, teamID, avatar string) models.PartyConfig

	// AddPlayer appends a player to a team
	AddPlayer(cfg models.PartyConfig, teamID string) models.PartyConfig

	// RemovePlayer drops a player from a team
	RemovePlayer(cfg models.PartyConfig, teamID, playerID string) models.PartyConfig

	// RenamePlayer sets a player's display name
	RenamePlayer(cfg models.PartyConfig, teamID, playerID, name string) models.PartyConfig

	// SetFlow selects the turn ordering style
	SetFlow(cfg models.PartyConfig, flow models.PartyFlow) models.PartyConfig

	// SetSeriesLength sets rounds per player
	SetSeriesLength(cfg models.PartyConfig, length int) models.PartyConfig

	// ResetScores zeroes every team score for a new game
	ResetScores(cfg models.PartyConfig) models.PartyConfig

	// BuildTurnQueue expands the config into the ordered turn sequence
	BuildTurnQueue(cfg models.PartyConfig) []models.Turn
}
