package service

import (
	"context"
	"math"

	"trading-risk-dashboard/internal/dto"
)

// Project builds the 12-month portfolio projection for the three
// clamped scenarios. Linear mode adds a fixed monthly gain computed
// from the initial portfolio; compound mode reinvests each month. Both
// agree at month 1 and diverge from month 2 on.
func (s *riskService) Project(ctx context.Context, params dto.RiskParams, mode dto.ProjectionMode) dto.Projection {
	if mode != dto.ProjectionModeCompound {
		mode = dto.ProjectionModeLinear
	}

	scenarios := s.ClampScenarios(params)

	series := []dto.ProjectionSeries{
		projectSeries(dto.ScenarioBest, scenarios.BestCase, dto.SeriesBestColor, params.InitialPortfolio, mode),
		projectSeries(dto.ScenarioNormal, scenarios.NormalCase, dto.SeriesNormalColor, params.InitialPortfolio, mode),
		projectSeries(dto.ScenarioWorst, scenarios.WorstCase, dto.SeriesWorstColor, params.InitialPortfolio, mode),
	}

	return dto.Projection{
		Mode:   mode,
		Months: dto.ProjectionMonths,
		Series: series,
	}
}

func projectSeries(scenario dto.Scenario, returnPct float64, color string, portfolio float64, mode dto.ProjectionMode) dto.ProjectionSeries {
	points := make([]dto.ProjectionPoint, 0, dto.ProjectionMonths)

	monthlyGain := portfolio * (returnPct / 100)
	growthFactor := 1 + returnPct/100

	for m := 1; m <= dto.ProjectionMonths; m++ {
		var value float64
		switch mode {
		case dto.ProjectionModeCompound:
			value = portfolio * math.Pow(growthFactor, float64(m))
		default:
			value = portfolio + monthlyGain*float64(m)
		}
		points = append(points, dto.ProjectionPoint{Month: m, Value: value})
	}

	return dto.ProjectionSeries{
		Scenario:   scenario,
		ReturnPct:  returnPct,
		Color:      color,
		Points:     points,
		FinalValue: points[len(points)-1].Value,
	}
}
