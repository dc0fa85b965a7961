package entity

import "time"

// Report holds the summary of a finished simulation run, in the shape
// collaborators persist and serve.
type Report struct {
	ID         string    `json:"id"`
	Engine     string    `json:"engine"`
	Games      int       `json:"games"`
	XWins      int       `json:"x_wins"`
	OWins      int       `json:"o_wins"`
	Draws      int       `json:"draws"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}
