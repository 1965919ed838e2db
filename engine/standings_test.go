package engine

import (
	"testing"

	"github.com/cobrasfc/matchday/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTeams() []models.Team {
	ids := []string{"argentina", "brazil", "england", "france", "germany", "portugal"}
	names := []string{"Argentina", "Brazil", "England", "France", "Germany", "Portugal"}
	teams := make([]models.Team, len(ids))
	for i := range ids {
		teams[i] = models.Team{ID: ids[i], Name: names[i]}
	}
	return teams
}

func goals(n int) *int { return &n }

func scoredMatch(id string, round models.Round, teamA, teamB models.TeamRef, goalsA, goalsB int) models.Match {
	return models.Match{
		ID: id, Round: round, TeamA: teamA, TeamB: teamB,
		GoalsA: goals(goalsA), GoalsB: goals(goalsB), Completed: true,
	}
}

func rowFor(t *testing.T, rows []models.StandingsRow, teamID string) models.StandingsRow {
	t.Helper()
	for _, row := range rows {
		if row.TeamID == teamID {
			return row
		}
	}
	t.Fatalf("no standings row for %s", teamID)
	return models.StandingsRow{}
}

func TestCalculateStandingsWinsDrawsLosses(t *testing.T) {
	matches := []models.Match{
		scoredMatch("r1-f1", models.Round1, "argentina", "brazil", 2, 1),
		scoredMatch("r1-f2", models.Round1, "england", "france", 1, 1),
		scoredMatch("r1-f3", models.Round1, "germany", "portugal", 1, 0),
	}

	rows := CalculateStandings(matches, testTeams())
	require.Len(t, rows, 6)

	// Argentina and Germany both won with +1 goal difference; Argentina's 2
	// goals scored rank it first.
	assert.Equal(t, "argentina", rows[0].TeamID)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 1, rows[0].Wins)
	assert.Equal(t, 2, rows[0].GoalsFor)

	germany := rowFor(t, rows, "germany")
	assert.Equal(t, 3, germany.Points)
	assert.Equal(t, 1, germany.GoalsFor)

	england := rowFor(t, rows, "england")
	france := rowFor(t, rows, "france")
	assert.Equal(t, 1, england.Points)
	assert.Equal(t, 1, england.Draws)
	assert.Equal(t, 1, france.Points)
	assert.Equal(t, 1, france.Draws)

	brazil := rowFor(t, rows, "brazil")
	assert.Equal(t, 0, brazil.Points)
	assert.Equal(t, 1, brazil.Losses)
}

func TestCalculateStandingsPointsLaw(t *testing.T) {
	matches := []models.Match{
		scoredMatch("r1-f1", models.Round1, "argentina", "brazil", 3, 1),
	}
	rows := CalculateStandings(matches, testTeams())

	assert.Equal(t, 3, rowFor(t, rows, "argentina").Points)
	assert.Equal(t, 0, rowFor(t, rows, "brazil").Points)

	matches[0] = scoredMatch("r1-f1", models.Round1, "argentina", "brazil", 2, 2)
	rows = CalculateStandings(matches, testTeams())
	assert.Equal(t, 1, rowFor(t, rows, "argentina").Points)
	assert.Equal(t, 1, rowFor(t, rows, "brazil").Points)
}

func TestCalculateStandingsGoalDifferenceTiebreak(t *testing.T) {
	matches := []models.Match{
		scoredMatch("r1-f1", models.Round1, "argentina", "brazil", 5, 0),
		scoredMatch("r1-f2", models.Round1, "england", "france", 1, 0),
	}

	rows := CalculateStandings(matches, testTeams())

	assert.Equal(t, "argentina", rows[0].TeamID)
	assert.Equal(t, 5, rows[0].GoalDifference)
	assert.Equal(t, "england", rows[1].TeamID)
	assert.Equal(t, 1, rows[1].GoalDifference)
}

func TestCalculateStandingsGoalsForTiebreak(t *testing.T) {
	matches := []models.Match{
		scoredMatch("r1-f1", models.Round1, "argentina", "brazil", 3, 1),
		scoredMatch("r1-f2", models.Round1, "england", "france", 2, 0),
	}

	rows := CalculateStandings(matches, testTeams())

	// Both winners sit on 3 points, +2 difference; goals scored decides.
	assert.Equal(t, "argentina", rows[0].TeamID)
	assert.Equal(t, "england", rows[1].TeamID)
}

func TestCalculateStandingsFullTieKeepsRosterOrder(t *testing.T) {
	matches := []models.Match{
		scoredMatch("r1-f1", models.Round1, "argentina", "brazil", 1, 1),
		scoredMatch("r1-f2", models.Round1, "england", "france", 1, 1),
	}

	rows := CalculateStandings(matches, testTeams())

	// All four sit on 1 point, 0 difference, 1 goal for: roster order holds.
	assert.Equal(t, "argentina", rows[0].TeamID)
	assert.Equal(t, "brazil", rows[1].TeamID)
	assert.Equal(t, "england", rows[2].TeamID)
	assert.Equal(t, "france", rows[3].TeamID)
}

func TestCalculateStandingsExcludesIncompleteMatches(t *testing.T) {
	matches := []models.Match{
		scoredMatch("r1-f1", models.Round1, "argentina", "brazil", 2, 1),
		// Not completed, despite having goal counts.
		{ID: "r1-f2", Round: models.Round1, TeamA: "england", TeamB: "france", GoalsA: goals(1), GoalsB: goals(1)},
		// Completed flag set but a goal count missing: malformed, excluded.
		{ID: "r1-f3", Round: models.Round1, TeamA: "germany", TeamB: "portugal", GoalsA: goals(1), Completed: true},
	}

	rows := CalculateStandings(matches, testTeams())

	for _, id := range []string{"england", "france", "germany", "portugal"} {
		row := rowFor(t, rows, id)
		assert.Zerof(t, row.Played, "%s should have no matches counted", id)
		assert.Zero(t, row.Wins)
		assert.Zero(t, row.Draws)
		assert.Zero(t, row.Losses)
		assert.Zero(t, row.GoalsFor)
		assert.Zero(t, row.GoalsAgainst)
	}
}

func TestCalculateStandingsExcludesPlayoffRounds(t *testing.T) {
	matches := []models.Match{
		scoredMatch("r1-f1", models.Round1, "argentina", "brazil", 1, 0),
		scoredMatch(MatchIDSemiFinal1, models.RoundSemiFinals, "argentina", "france", 4, 0),
		scoredMatch(MatchIDFinal, models.RoundFinals, "argentina", "england", 3, 0),
	}

	rows := CalculateStandings(matches, testTeams())

	argentina := rowFor(t, rows, "argentina")
	assert.Equal(t, 1, argentina.Played)
	assert.Equal(t, 1, argentina.GoalsFor)
	assert.Equal(t, 3, argentina.Points)
}

func TestCalculateStandingsSeedsAllTeamsAtZero(t *testing.T) {
	rows := CalculateStandings(nil, testTeams())

	require.Len(t, rows, 6)
	for _, row := range rows {
		assert.Zero(t, row.Played)
		assert.Zero(t, row.Points)
		assert.Zero(t, row.GoalDifference)
	}
	// Roster order is preserved for an untouched table.
	assert.Equal(t, "argentina", rows[0].TeamID)
	assert.Equal(t, "portugal", rows[5].TeamID)
}
