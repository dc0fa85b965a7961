package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrNoMoveAvailable    = errors.New("engine returned no move for an unfinished game")
	ErrInvalidWorkerCount = errors.New("worker count must be positive")
)

// Simulator runs batches of games with a configured engine and collects
// outcome statistics. Each game alternates markers starting from the
// configured one; the engine plays both sides.
type Simulator struct {
	logger *slog.Logger
	config Config
}

func New(logger *slog.Logger, config Config) (*Simulator, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return &Simulator{
		logger: logger.With("component", "simulator"),
		config: config,
	}, nil
}

// Run - plays all configured games sequentially on the calling goroutine.
func (that *Simulator) Run(ctx context.Context) (*Result, error) {
	return that.RunWithCallback(ctx, nil)
}

// RunWithCallback - plays all configured games sequentially, invoking the
// callback with each game's outcome. A nil callback is allowed.
func (that *Simulator) RunWithCallback(ctx context.Context, callback func(entity.Outcome)) (*Result, error) {
	start := time.Now()

	var counts tally
	board := entity.NewBoard()

	for played := 0; played < that.config.Games; played++ {
		select {
		case <-ctx.Done():
			return counts.result(time.Since(start)), ctx.Err()
		default:
		}

		outcome, err := that.playGame(board)
		if err != nil {
			return counts.result(time.Since(start)), err
		}

		counts.add(outcome)

		if callback != nil {
			callback(outcome)
		}
	}

	result := counts.result(time.Since(start))
	that.logger.Debug("simulation finished",
		"games", result.GamesCompleted,
		"x_wins", result.XWins,
		"o_wins", result.OWins,
		"draws", result.Draws,
		"duration", result.TotalDuration,
	)

	return result, nil
}

// RunParallel - splits the configured games across the given number of
// workers. Every worker owns its board, so no game state is ever shared;
// the engine itself is stateless and safe to use from all workers.
func (that *Simulator) RunParallel(ctx context.Context, workers int) (*Result, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
	}

	if workers == 1 {
		return that.Run(ctx)
	}

	start := time.Now()

	var xWins, oWins, draws atomic.Int64
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	perWorker := that.config.Games / workers
	extra := that.config.Games % workers

	for i := 0; i < workers; i++ {
		games := perWorker
		if i < extra {
			games++
		}

		if games == 0 {
			continue
		}

		wg.Add(1)
		go func(games int) {
			defer wg.Done()

			board := entity.NewBoard()
			for played := 0; played < games; played++ {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				default:
				}

				outcome, err := that.playGame(board)
				if err != nil {
					errCh <- err
					return
				}

				switch outcome {
				case entity.OutcomeXWin:
					xWins.Add(1)
				case entity.OutcomeOWin:
					oWins.Add(1)
				default:
					draws.Add(1)
				}
			}
		}(games)
	}

	wg.Wait()
	close(errCh)

	result := &Result{
		XWins:         int(xWins.Load()),
		OWins:         int(oWins.Load()),
		Draws:         int(draws.Load()),
		TotalDuration: time.Since(start),
	}
	result.GamesCompleted = result.XWins + result.OWins + result.Draws

	if err := <-errCh; err != nil {
		return result, err
	}

	that.logger.Debug("parallel simulation finished",
		"games", result.GamesCompleted,
		"workers", workers,
		"duration", result.TotalDuration,
	)

	return result, nil
}

// playGame - resets the board and plays one full game, alternating markers
// from the configured starter until the outcome is terminal.
func (that *Simulator) playGame(board *entity.Board) (entity.Outcome, error) {
	board.Reset()
	current := that.config.StartingMarker

	for {
		outcome := board.Outcome()
		if outcome.IsTerminal() {
			return outcome, nil
		}

		pos, ok := that.config.Engine.ChooseMove(board, current)
		if !ok {
			return outcome, ErrNoMoveAvailable
		}

		if err := board.Place(pos.Row, pos.Col, current); err != nil {
			return outcome, fmt.Errorf("engine chose an illegal move %s: %w", pos, err)
		}

		current = current.Opponent()
	}
}

type tally struct {
	xWins int
	oWins int
	draws int
}

func (that *tally) add(outcome entity.Outcome) {
	switch outcome {
	case entity.OutcomeXWin:
		that.xWins++
	case entity.OutcomeOWin:
		that.oWins++
	default:
		that.draws++
	}
}

func (that *tally) result(elapsed time.Duration) *Result {
	return &Result{
		GamesCompleted: that.xWins + that.oWins + that.draws,
		XWins:          that.xWins,
		OWins:          that.oWins,
		Draws:          that.draws,
		TotalDuration:  elapsed,
	}
}
