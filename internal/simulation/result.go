package simulation

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Result holds the tallies and timing of a completed simulation run.
type Result struct {
	GamesCompleted int
	XWins          int
	OWins          int
	Draws          int
	TotalDuration  time.Duration
}

// WinRate - returns the share of games won by the marker, as a percentage.
func (that *Result) WinRate(marker entity.Marker) float64 {
	if that.GamesCompleted == 0 {
		return 0
	}

	wins := that.XWins
	if marker == entity.MarkerO {
		wins = that.OWins
	}

	return float64(wins) / float64(that.GamesCompleted) * 100
}

// DrawRate - returns the share of drawn games, as a percentage.
func (that *Result) DrawRate() float64 {
	if that.GamesCompleted == 0 {
		return 0
	}

	return float64(that.Draws) / float64(that.GamesCompleted) * 100
}

// Throughput - returns the number of games per second.
func (that *Result) Throughput() float64 {
	secs := that.TotalDuration.Seconds()
	if secs == 0 {
		return 0
	}

	return float64(that.GamesCompleted) / secs
}

// AvgGameDuration - returns the mean wall-clock time per game.
func (that *Result) AvgGameDuration() time.Duration {
	if that.GamesCompleted == 0 {
		return 0
	}

	return that.TotalDuration / time.Duration(that.GamesCompleted)
}

// Report - converts the result into the persistable report shape.
func (that *Result) Report(id, engineName string) *entity.Report {
	return &entity.Report{
		ID:         id,
		Engine:     engineName,
		Games:      that.GamesCompleted,
		XWins:      that.XWins,
		OWins:      that.OWins,
		Draws:      that.Draws,
		DurationMS: that.TotalDuration.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
}
