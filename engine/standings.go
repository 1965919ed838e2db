package engine

import (
	"sort"

	"github.com/cobrasfc/matchday/models"
)

// CalculateStandings derives the group-stage table from the match collection.
// Only group-round matches with a full final score count; playoff results are
// excluded regardless of completion. Every roster team gets a row, so teams
// without a completed match still appear at zero.
//
// Rows are sorted by points, then goal difference, then goals for, all
// descending. Teams still tied after the three keys keep roster order.
func CalculateStandings(matches []models.Match, teams []models.Team) []models.StandingsRow {
	rows := make([]models.StandingsRow, len(teams))
	byTeam := make(map[models.TeamRef]*models.StandingsRow, len(teams))
	for i, t := range teams {
		rows[i] = models.StandingsRow{TeamID: t.ID, TeamName: t.Name}
		byTeam[models.TeamRef(t.ID)] = &rows[i]
	}

	for i := range matches {
		m := &matches[i]
		if !m.Round.IsGroupStage() || !m.Scored() {
			continue
		}

		a, okA := byTeam[m.TeamA]
		b, okB := byTeam[m.TeamB]
		if !okA || !okB {
			// Match references a team outside the roster; skip rather than fault.
			continue
		}

		goalsA, goalsB := *m.GoalsA, *m.GoalsB

		a.Played++
		b.Played++
		a.GoalsFor += goalsA
		a.GoalsAgainst += goalsB
		b.GoalsFor += goalsB
		b.GoalsAgainst += goalsA

		switch {
		case goalsA > goalsB:
			a.Wins++
			a.Points += 3
			b.Losses++
		case goalsB > goalsA:
			b.Wins++
			b.Points += 3
			a.Losses++
		default:
			a.Draws++
			a.Points++
			b.Draws++
			b.Points++
		}
	}

	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})

	return rows
}
