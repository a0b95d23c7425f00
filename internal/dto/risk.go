package dto

// RiskParams are the dashboard inputs. Scenario returns are clamped by
// the service so that worst <= normal <= best before anything is
// computed, mirroring the dependent slider maxima of the UI.
type RiskParams struct {
	InitialPortfolio float64 `json:"initial_portfolio" query:"initial_portfolio" validate:"required,gte=1000,lte=1000000"`
	RiskPercentage   float64 `json:"risk_percentage" query:"risk_percentage" validate:"gte=0,lte=5"`
	MaxDrawdown      float64 `json:"max_drawdown" query:"max_drawdown" validate:"gte=0,lte=50"`
	BestCase         float64 `json:"best_case" query:"best_case"`
	NormalCase       float64 `json:"normal_case" query:"normal_case"`
	WorstCase        float64 `json:"worst_case" query:"worst_case"`
}

// RiskMetrics are the derived scalar metrics of the dashboard header.
type RiskMetrics struct {
	InitialPortfolio   float64 `json:"initial_portfolio"`
	RiskPercentage     float64 `json:"risk_percentage"`
	RiskAmount         float64 `json:"risk_amount"`
	MaxDrawdown        float64 `json:"max_drawdown"`
	MaxLoss            float64 `json:"max_loss"`
	RemainingPortfolio float64 `json:"remaining_portfolio"`

	// MaxTrades is floored for display; MaxTradesDefined is false when
	// the risk amount is zero and the quotient is undefined.
	MaxTrades        int     `json:"max_trades"`
	MaxTradesDefined bool    `json:"max_trades_defined"`
	AvgTradeSize     float64 `json:"avg_trade_size"`

	InitialPortfolioDisplay   string `json:"initial_portfolio_display"`
	RiskAmountDisplay         string `json:"risk_amount_display"`
	MaxLossDisplay            string `json:"max_loss_display"`
	RemainingPortfolioDisplay string `json:"remaining_portfolio_display"`
	AvgTradeSizeDisplay       string `json:"avg_trade_size_display"`
}

// ScenarioReturns are the clamped monthly return assumptions.
type ScenarioReturns struct {
	BestCase   float64 `json:"best_case"`
	NormalCase float64 `json:"normal_case"`
	WorstCase  float64 `json:"worst_case"`
}

type ProjectionRequest struct {
	RiskParams
	Mode ProjectionMode `json:"mode" query:"mode" validate:"omitempty,oneof=linear compound"`
}

// ProjectionPoint is one month of a projected scenario.
type ProjectionPoint struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}

type ProjectionSeries struct {
	Scenario   Scenario          `json:"scenario"`
	ReturnPct  float64           `json:"return_pct"`
	Color      string            `json:"color"`
	Points     []ProjectionPoint `json:"points"`
	FinalValue float64           `json:"final_value"`
}

type Projection struct {
	Mode   ProjectionMode     `json:"mode"`
	Months int                `json:"months"`
	Series []ProjectionSeries `json:"series"`
}

type PositionSizeRequest struct {
	InitialPortfolio float64 `json:"initial_portfolio" validate:"required,gte=1000,lte=1000000"`
	RiskPercentage   float64 `json:"risk_percentage" validate:"gte=0,lte=5"`
	EntryPrice       float64 `json:"entry_price" validate:"required,gt=0"`
	StopLoss         float64 `json:"stop_loss" validate:"gte=0"`
}

// PositionSize is the stop-distance position sizing result. Defined is
// false when entry price equals stop loss and the size is undefined.
type PositionSize struct {
	RiskAmount float64 `json:"risk_amount"`
	Size       float64 `json:"size"`
	TotalValue float64 `json:"total_value"`
	Defined    bool    `json:"defined"`
}

// GaugeStep is one colored band of a gauge chart.
type GaugeStep struct {
	Range [2]float64 `json:"range"`
	Color string     `json:"color"`
}

// GaugeSpec is a renderer-agnostic gauge chart description.
type GaugeSpec struct {
	Title    string      `json:"title"`
	Value    float64     `json:"value"`
	AxisMin  float64     `json:"axis_min"`
	AxisMax  float64     `json:"axis_max"`
	BarColor string      `json:"bar_color"`
	Steps    []GaugeStep `json:"steps"`
}

// ProjectionChart is the time-series chart description.
type ProjectionChart struct {
	Title      string             `json:"title"`
	XAxisTitle string             `json:"x_axis_title"`
	YAxisTitle string             `json:"y_axis_title"`
	Series     []ProjectionSeries `json:"series"`
}

// DashboardSnapshot is the full dashboard payload.
type DashboardSnapshot struct {
	Params     RiskParams      `json:"params"`
	Scenarios  ScenarioReturns `json:"scenarios"`
	Metrics    RiskMetrics     `json:"metrics"`
	Gauges     []GaugeSpec     `json:"gauges"`
	Projection ProjectionChart `json:"projection"`
	Mode       ProjectionMode  `json:"mode"`
}
