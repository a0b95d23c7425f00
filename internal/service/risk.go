package service

import (
	"context"
	"math"

	"trading-risk-dashboard/config"
	"trading-risk-dashboard/internal/dto"
	"trading-risk-dashboard/pkg/logger"
	"trading-risk-dashboard/pkg/utils"
)

type RiskService interface {
	ApplyDefaults(params *dto.RiskParams)
	ClampScenarios(params dto.RiskParams) dto.ScenarioReturns
	CalculateMetrics(ctx context.Context, params dto.RiskParams) dto.RiskMetrics
	CalculatePositionSize(ctx context.Context, req dto.PositionSizeRequest) dto.PositionSize
	Project(ctx context.Context, params dto.RiskParams, mode dto.ProjectionMode) dto.Projection
}

type riskService struct {
	cfg *config.Config
	log *logger.Logger
}

func NewRiskService(cfg *config.Config, log *logger.Logger) RiskService {
	return &riskService{cfg: cfg, log: log}
}

// ApplyDefaults fills zero-valued params with the configured defaults so
// a bare dashboard request renders the same page the UI opens with.
func (s *riskService) ApplyDefaults(params *dto.RiskParams) {
	def := s.cfg.Risk
	if params.InitialPortfolio == 0 {
		params.InitialPortfolio = def.InitialPortfolio
	}
	if params.RiskPercentage == 0 {
		params.RiskPercentage = def.RiskPercentage
	}
	if params.MaxDrawdown == 0 {
		params.MaxDrawdown = def.MaxDrawdown
	}
	if params.BestCase == 0 && params.NormalCase == 0 && params.WorstCase == 0 {
		params.BestCase = def.BestCase
		params.NormalCase = def.NormalCase
		params.WorstCase = def.WorstCase
	}
}

// ClampScenarios enforces 0 <= worst <= normal <= best <= 100. Each
// scenario is capped by the one above it, the way the UI caps each
// slider's maximum at the previous slider's value.
func (s *riskService) ClampScenarios(params dto.RiskParams) dto.ScenarioReturns {
	best := clamp(params.BestCase, dto.MinScenarioReturn, dto.MaxScenarioReturn)
	normal := clamp(params.NormalCase, dto.MinScenarioReturn, best)
	worst := clamp(params.WorstCase, dto.MinScenarioReturn, normal)

	return dto.ScenarioReturns{
		BestCase:   best,
		NormalCase: normal,
		WorstCase:  worst,
	}
}

func (s *riskService) CalculateMetrics(ctx context.Context, params dto.RiskParams) dto.RiskMetrics {
	portfolio := params.InitialPortfolio
	riskAmount := portfolio * (params.RiskPercentage / 100)
	maxLoss := portfolio * (params.MaxDrawdown / 100)
	remaining := portfolio - maxLoss

	metrics := dto.RiskMetrics{
		InitialPortfolio:   portfolio,
		RiskPercentage:     params.RiskPercentage,
		RiskAmount:         riskAmount,
		MaxDrawdown:        params.MaxDrawdown,
		MaxLoss:            maxLoss,
		RemainingPortfolio: remaining,

		InitialPortfolioDisplay:   utils.FormatUSD(portfolio),
		RiskAmountDisplay:         utils.FormatUSD(riskAmount),
		MaxLossDisplay:            utils.FormatUSD(maxLoss),
		RemainingPortfolioDisplay: utils.FormatUSD(remaining),
	}

	if riskAmount == 0 {
		s.log.WarnContext(ctx, "max trades undefined, risk amount is zero",
			logger.Float64Field("initial_portfolio", portfolio),
		)
		return metrics
	}

	maxTrades := portfolio / riskAmount
	metrics.MaxTrades = int(math.Floor(maxTrades))
	metrics.MaxTradesDefined = true
	metrics.AvgTradeSize = portfolio / maxTrades
	metrics.AvgTradeSizeDisplay = utils.FormatUSD(metrics.AvgTradeSize)

	return metrics
}

// CalculatePositionSize sizes a position so a stop-loss hit consumes
// exactly the risk-per-trade amount. Undefined when entry equals stop.
func (s *riskService) CalculatePositionSize(ctx context.Context, req dto.PositionSizeRequest) dto.PositionSize {
	riskAmount := req.InitialPortfolio * (req.RiskPercentage / 100)

	result := dto.PositionSize{RiskAmount: riskAmount}

	stopDistance := req.EntryPrice - req.StopLoss
	if stopDistance == 0 {
		s.log.WarnContext(ctx, "position size undefined, entry equals stop loss",
			logger.Float64Field("entry_price", req.EntryPrice),
		)
		return result
	}

	result.Size = math.Abs(riskAmount / stopDistance)
	result.TotalValue = result.Size * req.EntryPrice
	result.Defined = true

	return result
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
