package engine

import (
	"fmt"
	"testing"

	"github.com/cobrasfc/matchday/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScheduleShape(t *testing.T) {
	matches := GenerateSchedule()

	require.Len(t, matches, 12)

	groups := 0
	semis := 0
	finals := 0
	for _, m := range matches {
		switch {
		case m.Round.IsGroupStage():
			groups++
		case m.Round == models.RoundSemiFinals:
			semis++
		case m.Round == models.RoundFinals:
			finals++
		}
	}
	assert.Equal(t, ExpectedGroupMatches, groups)
	assert.Equal(t, 2, semis)
	assert.Equal(t, 1, finals)
}

func TestGenerateScheduleUniqueIDs(t *testing.T) {
	matches := GenerateSchedule()

	seen := make(map[string]bool)
	for _, m := range matches {
		assert.Falsef(t, seen[m.ID], "duplicate match id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestGenerateScheduleRoundRobin(t *testing.T) {
	matches := GenerateSchedule()

	pairings := make(map[string]int)
	appearances := make(map[models.TeamRef]int)
	for _, m := range matches {
		if !m.Round.IsGroupStage() {
			continue
		}
		require.NotEqual(t, m.TeamA, m.TeamB, "team paired against itself in %s", m.ID)

		a, b := string(m.TeamA), string(m.TeamB)
		if a > b {
			a, b = b, a
		}
		pairings[fmt.Sprintf("%s-%s", a, b)]++
		appearances[m.TeamA]++
		appearances[m.TeamB]++
	}

	for pair, count := range pairings {
		assert.Equalf(t, 1, count, "pair %s meets more than once in the group stage", pair)
	}

	require.Len(t, appearances, 6)
	for team, count := range appearances {
		assert.Equalf(t, 3, count, "team %s should play exactly 3 group matches", team)
	}
}

func TestGenerateScheduleEveryTeamPlaysEachRound(t *testing.T) {
	matches := GenerateSchedule()

	// Six teams on three fields: nobody rests in any round.
	for _, round := range []models.Round{models.Round1, models.Round2, models.Round3} {
		playing := make(map[models.TeamRef]bool)
		for _, m := range matches {
			if m.Round != round {
				continue
			}
			playing[m.TeamA] = true
			playing[m.TeamB] = true
		}
		assert.Lenf(t, playing, 6, "round %s should involve all 6 teams", round)
	}
}

func TestGenerateSchedulePlayoffPlaceholders(t *testing.T) {
	matches := GenerateSchedule()

	fields := make(map[int]bool)
	for _, m := range matches {
		if m.Round != models.RoundSemiFinals && m.Round != models.RoundFinals {
			continue
		}
		assert.Equal(t, models.TeamTBD, m.TeamA)
		assert.Equal(t, models.TeamTBD, m.TeamB)
		if m.Round == models.RoundSemiFinals {
			fields[m.Field] = true
		}
	}
	assert.Len(t, fields, 2, "semi-finals should be on distinct fields")
}

func TestGenerateScheduleAllUnscored(t *testing.T) {
	for _, m := range GenerateSchedule() {
		assert.False(t, m.Completed)
		assert.Nil(t, m.GoalsA)
		assert.Nil(t, m.GoalsB)
		assert.False(t, m.Scored())
	}
}
