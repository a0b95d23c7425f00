package service

import (
	"context"
	"fmt"

	"trading-risk-dashboard/config"
	"trading-risk-dashboard/internal/dto"
	"trading-risk-dashboard/pkg/cache"
	"trading-risk-dashboard/pkg/logger"
)

type DashboardService interface {
	Snapshot(ctx context.Context, params dto.RiskParams, mode dto.ProjectionMode) dto.DashboardSnapshot
}

type dashboardService struct {
	cfg           *config.Config
	log           *logger.Logger
	inmemoryCache cache.Cache
	risk          RiskService
}

func NewDashboardService(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache, risk RiskService) DashboardService {
	return &dashboardService{
		cfg:           cfg,
		log:           log,
		inmemoryCache: inmemoryCache,
		risk:          risk,
	}
}

// Snapshot computes the full dashboard payload for one parameter set.
// Identical parameter sets are served from cache within the snapshot TTL.
func (s *dashboardService) Snapshot(ctx context.Context, params dto.RiskParams, mode dto.ProjectionMode) dto.DashboardSnapshot {
	if mode != dto.ProjectionModeCompound {
		mode = dto.ProjectionModeLinear
	}

	key := snapshotKey(params, mode)
	if snapshot, found := cache.Get[dto.DashboardSnapshot](s.inmemoryCache, key); found {
		s.log.DebugContext(ctx, "dashboard snapshot cache hit", logger.StringField("key", key))
		return snapshot
	}

	scenarios := s.risk.ClampScenarios(params)
	projection := s.risk.Project(ctx, params, mode)

	snapshot := dto.DashboardSnapshot{
		Params:    params,
		Scenarios: scenarios,
		Metrics:   s.risk.CalculateMetrics(ctx, params),
		Gauges:    buildGauges(scenarios),
		Projection: dto.ProjectionChart{
			Title:      projectionTitle(mode),
			XAxisTitle: "Months",
			YAxisTitle: "Portfolio Value (USD)",
			Series:     projection.Series,
		},
		Mode: mode,
	}

	s.inmemoryCache.Set(key, snapshot, s.cfg.Cache.SnapshotTTL)
	return snapshot
}

// buildGauges renders one gauge per scenario on a shared 0-100 axis,
// banded at the clamped worst/normal/best boundaries.
func buildGauges(scenarios dto.ScenarioReturns) []dto.GaugeSpec {
	steps := []dto.GaugeStep{
		{Range: [2]float64{0, scenarios.WorstCase}, Color: dto.GaugeBandWorstColor},
		{Range: [2]float64{scenarios.WorstCase, scenarios.NormalCase}, Color: dto.GaugeBandNormalColor},
		{Range: [2]float64{scenarios.NormalCase, scenarios.BestCase}, Color: dto.GaugeBandBestColor},
	}

	gauge := func(title string, value float64) dto.GaugeSpec {
		return dto.GaugeSpec{
			Title:    title,
			Value:    value,
			AxisMin:  dto.MinScenarioReturn,
			AxisMax:  dto.MaxScenarioReturn,
			BarColor: dto.GaugeBarColor,
			Steps:    steps,
		}
	}

	return []dto.GaugeSpec{
		gauge("Best Case", scenarios.BestCase),
		gauge("Normal Case", scenarios.NormalCase),
		gauge("Worst Case", scenarios.WorstCase),
	}
}

func projectionTitle(mode dto.ProjectionMode) string {
	if mode == dto.ProjectionModeCompound {
		return "12-Month Portfolio Projection (Compound)"
	}
	return "12-Month Portfolio Projection (Linear)"
}

func snapshotKey(params dto.RiskParams, mode dto.ProjectionMode) string {
	return fmt.Sprintf("dashboard:%s:%.2f:%.2f:%.2f:%.2f:%.2f:%.2f",
		mode,
		params.InitialPortfolio,
		params.RiskPercentage,
		params.MaxDrawdown,
		params.BestCase,
		params.NormalCase,
		params.WorstCase,
	)
}
