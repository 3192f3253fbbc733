package players

// Player represents the normalized roster entry shape.
type Player struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Jersey   string `json:"jersey,omitempty"`
	Position string `json:"position,omitempty"`
	Headshot string `json:"headshot,omitempty"`
}
