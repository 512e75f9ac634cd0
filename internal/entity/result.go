package entity

import "time"

// Result is the final tally of a finished match.
type Result struct {
	MatchID        string    `json:"match_id"`
	Winner         Player    `json:"winner"`
	Loser          Player    `json:"loser"`
	WinnerCaptured int       `json:"winner_captured"`
	LoserCaptured  int       `json:"loser_captured"`
	FinishedAt     time.Time `json:"finished_at"`
}
