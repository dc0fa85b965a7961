package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Engine selects a move for the given marker on the given board.
//
// Implementations must return a legal position, or ok=false only when the
// board has no legal moves left (the game is over or the grid is full).
// Engines never error; "no move" is a normal terminal condition.
type Engine interface {
	ChooseMove(board *entity.Board, marker entity.Marker) (entity.Position, bool)
}
