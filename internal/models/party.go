package models

// PartyFlow represents how turns are ordered in party mode
type PartyFlow string

const (
	// FlowTurnBased alternates teams turn by turn within each round
	FlowTurnBased PartyFlow = "TURN_BASED"

	// FlowTeamBased lets one team play its entire series before the next begins
	FlowTeamBased PartyFlow = "TEAM_BASED"
)

// SeriesLengths are the allowed rounds-per-player values
var SeriesLengths = []int{1, 3, 5, 7, 10}

// Party roster bounds
const (
	MinTeams          = 2
	MaxTeams          = 4
	MinPlayersPerTeam = 1
	MaxPlayersPerTeam = 10
)

// Player is a named participant on a team
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string
}

// Team is a scoring unit in party mode
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// Name is the display name of the team
	Name string

	// Players are the team's roster, in turn order
	Players []Player

	// Score is the team's score for the current game
	Score int

	// Color is the team's display color
	Color string

	// Avatar is the team's avatar emoji
	Avatar string
}

// Clone returns a deep copy of the team
func (t Team) Clone() Team {
	out := t
	out.Players = make([]Player, len(t.Players))
	copy(out.Players, t.Players)
	return out
}

// PartyConfig describes the teams and pacing of a party game
type PartyConfig struct {
	// Teams are the competing teams, at least MinTeams of them
	Teams []Team

	// SeriesLength is the number of rounds each player plays
	SeriesLength int

	// Flow selects turn ordering
	Flow PartyFlow
}

// Clone returns a deep copy of the config
func (c PartyConfig) Clone() PartyConfig {
	out := c
	out.Teams = make([]Team, len(c.Teams))
	for i, team := range c.Teams {
		out.Teams[i] = team.Clone()
	}
	return out
}

// Turn is one flattened entry of the party turn queue. The queue is
// rebuilt in full at game start and read-only during play.
type Turn struct {
	// TeamID is the acting team
	TeamID string

	// PlayerID is the acting player
	PlayerID string

	// PlayerName is the acting player's display name
	PlayerName string

	// TeamName is the acting team's display name
	TeamName string

	// TeamColor is the acting team's display color
	TeamColor string

	// TeamAvatar is the acting team's avatar emoji
	TeamAvatar string

	// Round is the 1-based round this turn belongs to
	Round int
}
