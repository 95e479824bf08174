package models

// Standing is one row of the derived ranking table. It is never persisted.
type Standing struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	Matches int    `json:"matches"` // wins + losses
}
