package dto

type ProjectionMode string

const (
	ProjectionModeLinear   ProjectionMode = "linear"
	ProjectionModeCompound ProjectionMode = "compound"
)

type Scenario string

const (
	ScenarioBest   Scenario = "best"
	ScenarioNormal Scenario = "normal"
	ScenarioWorst  Scenario = "worst"
)

// Control bounds for the dashboard inputs.
const (
	MinPortfolio  float64 = 1000
	MaxPortfolio  float64 = 1000000
	PortfolioStep float64 = 1000

	MinRiskPercentage  float64 = 0.5
	MaxRiskPercentage  float64 = 5.0
	RiskPercentageStep float64 = 0.1

	MinMaxDrawdown  float64 = 5.0
	MaxMaxDrawdown  float64 = 50.0
	MaxDrawdownStep float64 = 0.1

	MinScenarioReturn float64 = 0
	MaxScenarioReturn float64 = 100
)

// ProjectionMonths is the horizon of the portfolio projection.
const ProjectionMonths = 12

// Gauge band and series colors.
const (
	GaugeBarColor        = "darkblue"
	GaugeBandWorstColor  = "lightgray"
	GaugeBandNormalColor = "gray"
	GaugeBandBestColor   = "lightblue"

	SeriesBestColor   = "green"
	SeriesNormalColor = "blue"
	SeriesWorstColor  = "red"
)
