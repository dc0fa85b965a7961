package simulation

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrInvalidGameCount = errors.New("game count must be positive")
	ErrNilEngine        = errors.New("engine must not be nil")
	ErrInvalidMarker    = errors.New("starting marker is not a valid player")
)

// Config describes a batch simulation run: how many games to play, which
// engine selects the moves, and which marker opens every game.
type Config struct {
	Games          int
	Engine         engine.Engine
	StartingMarker entity.Marker
}

func (that *Config) validate() error {
	if that.Games <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGameCount, that.Games)
	}

	if that.Engine == nil {
		return ErrNilEngine
	}

	if !that.StartingMarker.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidMarker, that.StartingMarker)
	}

	return nil
}
