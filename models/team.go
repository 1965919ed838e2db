package models

type Player struct {
	Name string `json:"name" yaml:"name"`
}

type Team struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Players []Player `json:"players" yaml:"players"`

	// CrestKey is the object-store key of the uploaded crest; it rides along
	// in the persisted JSON. CrestURL is derived from it on every read.
	CrestKey *string `json:"crestKey,omitempty" yaml:"-"`
	CrestURL *string `json:"crestUrl,omitempty" yaml:"-"`
}
