package service

import (
	"trading-risk-dashboard/config"
	"trading-risk-dashboard/pkg/cache"
	"trading-risk-dashboard/pkg/logger"
)

type Service struct {
	RiskService      RiskService
	DashboardService DashboardService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
) *Service {
	riskService := NewRiskService(cfg, log)
	dashboardService := NewDashboardService(cfg, log, inmemoryCache, riskService)

	return &Service{
		RiskService:      riskService,
		DashboardService: dashboardService,
	}
}
