package entity

// PlayerStats is the per-player aggregate tally kept in sqlite. Board states
// and move lists are never stored.
type PlayerStats struct {
	PlayerID string `json:"player_id"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}
