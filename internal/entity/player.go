package entity

// Player is one side of a match: an identifier and the single-letter color of its pieces.
type Player struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}
