package models

import "time"

// SnapshotExport describes the objects written by one standings export.
type SnapshotExport struct {
	StandingsKey string    `json:"standings_key"`
	StandingsURL string    `json:"standings_url"`
	PairingsKey  string    `json:"pairings_key,omitempty"`
	PairingsURL  string    `json:"pairings_url,omitempty"`
	PlayerCount  int       `json:"player_count"`
	ExportedAt   time.Time `json:"exported_at"`
}
