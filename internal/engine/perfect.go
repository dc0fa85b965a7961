package engine

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const winScore = 10

// PerfectEngine plays game-theoretically optimal moves via full-depth minimax
// with alpha-beta pruning. It never loses, and two perfect engines playing
// each other from an empty board always draw.
//
// The engine holds no state: it is reentrant and safe to share.
type perfectEngine struct{}

func NewPerfectEngine() Engine {
	return &perfectEngine{}
}

func (that *perfectEngine) ChooseMove(board *entity.Board, marker entity.Marker) (entity.Position, bool) {
	if board.Outcome().IsTerminal() {
		return entity.Position{}, false
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return entity.Position{}, false
	}

	// Ties resolve to the first best move in row-major order, so the result
	// is deterministic for a fixed board and marker.
	bestScore := math.MinInt
	bestMove := moves[0]

	for _, move := range moves {
		child := applied(board, move, marker)
		score := that.minimax(child, marker, marker.Opponent(), 1, math.MinInt, math.MaxInt, false)

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, true
}

// minimax - scores the board from the root marker's point of view, assuming
// both sides play optimally. depth counts the plies already placed below the
// root call's board; it biases the score toward fast wins and slow losses.
func (that *perfectEngine) minimax(board *entity.Board, root, current entity.Marker, depth, alpha, beta int, maximizing bool) int {
	outcome := board.Outcome()
	if winner, ok := outcome.Winner(); ok {
		if winner == root {
			return winScore - depth
		}
		return -winScore + depth
	}

	if outcome == entity.OutcomeDraw {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, move := range board.LegalMoves() {
			score := that.minimax(applied(board, move, current), root, current.Opponent(), depth+1, alpha, beta, false)
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range board.LegalMoves() {
		score := that.minimax(applied(board, move, current), root, current.Opponent(), depth+1, alpha, beta, true)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}

// applied - returns an independent copy of the board with the move placed.
// The original board is never mutated during search.
func applied(board *entity.Board, move entity.Position, marker entity.Marker) *entity.Board {
	child := board.Clone()
	if err := child.Place(move.Row, move.Col, marker); err != nil {
		panic(fmt.Errorf("move %s came from LegalMoves but failed: %w", move, err))
	}

	return child
}
