package engine

import "github.com/cobrasfc/matchday/models"

// Stable identifiers for the playoff slots. The progression engine targets
// semi-final slots by ID: sf-f1 receives seeds 1 and 4, sf-f2 seeds 2 and 3.
const (
	MatchIDSemiFinal1 = "sf-f1"
	MatchIDSemiFinal2 = "sf-f2"
	MatchIDFinal      = "final-f1"
)

// ExpectedGroupMatches is the fixed size of the group stage: 6 teams on
// 3 fields over 3 rounds, each team playing 3 distinct opponents.
const ExpectedGroupMatches = 9

// GenerateSchedule builds the complete match list for one tournament day.
//
// The group stage is a fixed fixture table: every team appears once per
// round and no pair of teams meets twice across the three rounds. With six
// teams on three fields nobody rests. The two semi-finals and the final are
// created up front with both team slots set to the TBD sentinel; the
// progression engine fills them in as results come in.
func GenerateSchedule() []models.Match {
	group := []struct {
		id    string
		round models.Round
		field int
		time  string
		teamA models.TeamRef
		teamB models.TeamRef
	}{
		// Round 1 (4:40 PM)
		{"r1-f1", models.Round1, 1, "4:40 PM", "argentina", "brazil"},
		{"r1-f2", models.Round1, 2, "4:40 PM", "england", "france"},
		{"r1-f3", models.Round1, 3, "4:40 PM", "germany", "portugal"},
		// Round 2 (4:45 PM)
		{"r2-f1", models.Round2, 1, "4:45 PM", "argentina", "france"},
		{"r2-f2", models.Round2, 2, "4:45 PM", "brazil", "portugal"},
		{"r2-f3", models.Round2, 3, "4:45 PM", "england", "germany"},
		// Round 3 (4:50 PM)
		{"r3-f1", models.Round3, 1, "4:50 PM", "argentina", "portugal"},
		{"r3-f2", models.Round3, 2, "4:50 PM", "brazil", "england"},
		{"r3-f3", models.Round3, 3, "4:50 PM", "france", "germany"},
	}

	matches := make([]models.Match, 0, len(group)+3)
	for _, f := range group {
		matches = append(matches, models.Match{
			ID:    f.id,
			Round: f.round,
			Field: f.field,
			Time:  f.time,
			TeamA: f.teamA,
			TeamB: f.teamB,
		})
	}

	matches = append(matches,
		models.Match{
			ID:    MatchIDSemiFinal1,
			Round: models.RoundSemiFinals,
			Field: 1,
			Time:  "5:05 PM",
			TeamA: models.TeamTBD,
			TeamB: models.TeamTBD,
		},
		models.Match{
			ID:    MatchIDSemiFinal2,
			Round: models.RoundSemiFinals,
			Field: 2,
			Time:  "5:05 PM",
			TeamA: models.TeamTBD,
			TeamB: models.TeamTBD,
		},
		models.Match{
			ID:    MatchIDFinal,
			Round: models.RoundFinals,
			Field: 1,
			Time:  "5:20 PM",
			TeamA: models.TeamTBD,
			TeamB: models.TeamTBD,
		},
	)

	return matches
}
