package models

// SettledWager is the per-wager outcome of scoring a wager against the draw
// result. It is derived on demand and never persisted.
type SettledWager struct {
	Wager
	Game1Matches int   `json:"game1Matches"`
	Game2Matches int   `json:"game2Matches"`
	Game1Hits    []int `json:"game1Hits"`
	Game2Hits    []int `json:"game2Hits"`
	TotalMatches int   `json:"totalMatches"`
	Won          bool  `json:"won"`
}
