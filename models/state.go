package models

// TournamentState is the unit of persistence: the whole match collection plus
// a last-modified marker in unix milliseconds. It is read and written back
// wholesale; concurrent writers race with last-writer-wins semantics.
type TournamentState struct {
	Matches     []Match `json:"matches"`
	LastUpdated int64   `json:"lastUpdated"`
}
