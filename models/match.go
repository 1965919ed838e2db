package models

type Round string

const (
	Round1          Round = "round1"
	Round2          Round = "round2"
	Round3          Round = "round3"
	RoundSemiFinals Round = "semifinals"
	RoundFinals     Round = "finals"
)

// IsGroupStage reports whether matches of this round count towards the
// group-stage standings. Playoff rounds never do, even once completed.
func (r Round) IsGroupStage() bool {
	return r == Round1 || r == Round2 || r == Round3
}

// TeamRef is a reference to a team by its slug, or the TBD sentinel for a
// playoff slot whose team has not been determined yet.
type TeamRef string

const TeamTBD TeamRef = "tbd"

func (t TeamRef) Determined() bool {
	return t != TeamTBD && t != ""
}

type Match struct {
	ID        string  `json:"id"`
	Round     Round   `json:"round"`
	Field     int     `json:"field"`
	Time      string  `json:"time"`
	TeamA     TeamRef `json:"teamA"`
	TeamB     TeamRef `json:"teamB"`
	GoalsA    *int    `json:"goalsA,omitempty"`
	GoalsB    *int    `json:"goalsB,omitempty"`
	Completed bool    `json:"completed"`
}

// Scored reports whether the match carries a full final score. A match with
// the completed flag set but a goal count missing (or the reverse) is treated
// as unscored everywhere: it contributes nothing to standings or to the
// stage-completion checks.
func (m *Match) Scored() bool {
	return m.Completed && m.GoalsA != nil && m.GoalsB != nil
}
