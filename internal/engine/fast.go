package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// FastEngine takes the first legal move in row-major scan order, ignoring the
// marker. It exists as a throughput baseline for batch simulations.
type fastEngine struct{}

func NewFastEngine() Engine {
	return &fastEngine{}
}

func (that *fastEngine) ChooseMove(board *entity.Board, _ entity.Marker) (entity.Position, bool) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return entity.Position{}, false
	}

	return moves[0], true
}
