package models

// StandingsRow is one team's line in the group-stage table. Rows are derived
// from the match collection on every query and never persisted.
type StandingsRow struct {
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}
