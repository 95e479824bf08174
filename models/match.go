package models

import "time"

// Match is the recorded outcome of one game. There are no draws.
type Match struct {
	ID        int       `json:"id"`
	WinnerID  int       `json:"winner_id"`
	LoserID   int       `json:"loser_id"`
	CreatedAt time.Time `json:"created_at"`
}
