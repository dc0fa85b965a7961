package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/simulation"
)

const (
	EngineFast    = "fast"
	EnginePerfect = "perfect"
)

var (
	ErrUnknownEngine = errors.New("unknown engine")
	ErrUnknownMarker = errors.New("unknown starting marker")
)

// RunApp - runs a simulation batch per the configuration and logs the
// summary. When Redis is configured, the run's report is persisted as well.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	selected, err := buildEngine(conf.Simulation.Engine)
	if err != nil {
		return fmt.Errorf("could not build engine: %w", err)
	}

	starter, err := parseMarker(conf.Simulation.StartingMarker)
	if err != nil {
		return fmt.Errorf("could not parse starting marker: %w", err)
	}

	simulator, err := simulation.New(logger, simulation.Config{
		Games:          conf.Simulation.Games,
		Engine:         selected,
		StartingMarker: starter,
	})
	if err != nil {
		return fmt.Errorf("could not create simulator: %w", err)
	}

	log.Info("Starting simulation",
		"engine", conf.Simulation.Engine,
		"games", conf.Simulation.Games,
		"starting_marker", starter.String(),
		"workers", conf.Simulation.Workers,
	)

	var result *simulation.Result
	if conf.Simulation.Workers > 1 {
		result, err = simulator.RunParallel(ctx, conf.Simulation.Workers)
	} else {
		result, err = simulator.Run(ctx)
	}

	if err != nil {
		return fmt.Errorf("simulation run failed: %w", err)
	}

	log.Info("Simulation finished",
		"games", result.GamesCompleted,
		"x_wins", result.XWins,
		"o_wins", result.OWins,
		"draws", result.Draws,
		"draw_rate_pct", result.DrawRate(),
		"throughput_games_per_sec", result.Throughput(),
		"avg_game_duration", result.AvgGameDuration(),
		"total_duration", result.TotalDuration,
	)

	if !conf.Redis.IsConfigured() {
		return nil
	}

	report := result.Report(newReportID(), conf.Simulation.Engine)
	if err = persistReport(ctx, conf.Redis.GetRedisAddr(), report); err != nil {
		return fmt.Errorf("could not persist report: %w", err)
	}

	log.Info("Report persisted", "id", report.ID)

	return nil
}

func persistReport(ctx context.Context, addr string, report *entity.Report) error {
	redisStorage, err := storage.NewRedisStorage(ctx, addr)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}
	defer redisStorage.Close()

	reportRepo := repository.NewReportRepository(redisStorage.Connection)

	return reportRepo.CreateOrUpdate(ctx, report)
}

func buildEngine(name string) (engine.Engine, error) {
	switch name {
	case EngineFast:
		return engine.NewFastEngine(), nil
	case EnginePerfect:
		return engine.NewPerfectEngine(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

func parseMarker(name string) (entity.Marker, error) {
	switch name {
	case "X", "x":
		return entity.MarkerX, nil
	case "O", "o":
		return entity.MarkerO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMarker, name)
	}
}

func newReportID() string {
	return fmt.Sprintf("run-%d", time.Now().UnixNano())
}
