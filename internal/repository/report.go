package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrReportNotFound = errors.New("report not found")

// ReportRepository persists simulation run summaries.
type ReportRepository interface {
	CreateOrUpdate(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbReport struct {
	client *redis.Client
}

func NewReportRepository(client *redis.Client) ReportRepository {
	return &dbReport{
		client: client,
	}
}

func (that *dbReport) CreateOrUpdate(ctx context.Context, report *entity.Report) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("could not marshal report: %w", err)
	}

	reportKey := "report:" + report.ID
	if err = that.client.Set(ctx, reportKey, reportJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set report: %w", err)
	}

	return nil
}

func (that *dbReport) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	reportKey := "report:" + id

	response, err := that.client.Get(ctx, reportKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}

	var report entity.Report
	if err = json.Unmarshal([]byte(response), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}

func (that *dbReport) DeleteByID(ctx context.Context, id string) error {
	reportKey := "report:" + id

	if err := that.client.Del(ctx, reportKey).Err(); err != nil {
		return fmt.Errorf("failed to delete report by id: %w", err)
	}

	return nil
}
