package engine

import "github.com/cobrasfc/matchday/models"

// The progression engine is a small state machine over the match collection:
// group stage -> semi-finals -> final. Each transition fires at most once in
// effect: populated slots are never overwritten, so re-running the checks on
// every request (polling, retries) is safe. None of these functions mutate
// their input; they return a fresh slice when anything changes.

// IsGroupStageComplete reports whether all nine group-stage matches exist and
// carry a full final score.
func IsGroupStageComplete(matches []models.Match) bool {
	count := 0
	for i := range matches {
		if !matches[i].Round.IsGroupStage() {
			continue
		}
		if !matches[i].Scored() {
			return false
		}
		count++
	}
	return count == ExpectedGroupMatches
}

// AreSemiFinalsComplete reports whether both semi-finals exist and carry a
// full final score.
func AreSemiFinalsComplete(matches []models.Match) bool {
	count := 0
	for i := range matches {
		if matches[i].Round != models.RoundSemiFinals {
			continue
		}
		if !matches[i].Scored() {
			return false
		}
		count++
	}
	return count == 2
}

// AutoPopulateSemiFinals seeds the semi-finals from the standings: rank 1 vs
// rank 4 into sf-f1, rank 2 vs rank 3 into sf-f2. A semi-final is touched
// only while both of its slots are still TBD, so a bracket that already has a
// real team in either slot is left exactly as it is. Ranks beyond the table
// size fill with TBD rather than faulting.
func AutoPopulateSemiFinals(matches []models.Match, standings []models.StandingsRow) []models.Match {
	out := make([]models.Match, len(matches))
	copy(out, matches)

	for i := range out {
		m := &out[i]
		if m.Round != models.RoundSemiFinals || m.TeamA.Determined() || m.TeamB.Determined() {
			continue
		}
		switch m.ID {
		case MatchIDSemiFinal1:
			m.TeamA = seed(standings, 0)
			m.TeamB = seed(standings, 3)
		case MatchIDSemiFinal2:
			m.TeamA = seed(standings, 1)
			m.TeamB = seed(standings, 2)
		}
	}
	return out
}

func seed(standings []models.StandingsRow, rank int) models.TeamRef {
	if rank >= len(standings) {
		return models.TeamTBD
	}
	return models.TeamRef(standings[rank].TeamID)
}

// AutoPopulateFinal fills the final's slots with the two semi-final winners,
// only while both slots are still TBD. A drawn semi-final resolves to teamB
// as the winner: a deliberate, recorded tie-break policy (no extra time or
// shoot-out is modelled), preserved for compatibility.
func AutoPopulateFinal(matches []models.Match) []models.Match {
	var sf1, sf2 *models.Match
	for i := range matches {
		switch matches[i].ID {
		case MatchIDSemiFinal1:
			sf1 = &matches[i]
		case MatchIDSemiFinal2:
			sf2 = &matches[i]
		}
	}
	if sf1 == nil || sf2 == nil || !sf1.Scored() || !sf2.Scored() {
		return matches
	}

	winner1 := winner(sf1)
	winner2 := winner(sf2)

	out := make([]models.Match, len(matches))
	copy(out, matches)
	for i := range out {
		m := &out[i]
		if m.Round != models.RoundFinals || m.TeamA.Determined() || m.TeamB.Determined() {
			continue
		}
		m.TeamA = winner1
		m.TeamB = winner2
	}
	return out
}

// winner assumes a scored match. Equal goal counts resolve to teamB.
func winner(m *models.Match) models.TeamRef {
	if *m.GoalsA > *m.GoalsB {
		return m.TeamA
	}
	return m.TeamB
}

// ApplyProgression re-evaluates both transitions against the current match
// collection. Every entry point that reads or mutates tournament state runs
// this; the predicates are computed fresh each time, never cached.
func ApplyProgression(matches []models.Match, teams []models.Team) []models.Match {
	if IsGroupStageComplete(matches) {
		matches = AutoPopulateSemiFinals(matches, CalculateStandings(matches, teams))
	}
	if AreSemiFinalsComplete(matches) {
		matches = AutoPopulateFinal(matches)
	}
	return matches
}
