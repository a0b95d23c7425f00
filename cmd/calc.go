package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"trading-risk-dashboard/internal/dto"
	"trading-risk-dashboard/internal/service"
	"trading-risk-dashboard/pkg/utils"
)

var (
	calcPortfolio  float64
	calcRiskPct    float64
	calcMaxDD      float64
	calcBestCase   float64
	calcNormalCase float64
	calcWorstCase  float64
	calcMode       string
	calcEntryPrice float64
	calcStopLoss   float64
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a risk snapshot without starting the server",
	Run:   Calc,
}

func init() {
	calcCmd.Flags().Float64Var(&calcPortfolio, "portfolio", 0, "initial portfolio in USD")
	calcCmd.Flags().Float64Var(&calcRiskPct, "risk", 0, "risk per trade in percent")
	calcCmd.Flags().Float64Var(&calcMaxDD, "max-dd", 0, "estimated max drawdown in percent")
	calcCmd.Flags().Float64Var(&calcBestCase, "best", 0, "best case monthly return in percent")
	calcCmd.Flags().Float64Var(&calcNormalCase, "normal", 0, "normal case monthly return in percent")
	calcCmd.Flags().Float64Var(&calcWorstCase, "worst", 0, "worst case monthly return in percent")
	calcCmd.Flags().StringVar(&calcMode, "mode", "linear", "projection mode: linear or compound")
	calcCmd.Flags().Float64Var(&calcEntryPrice, "entry", 0, "entry price for position sizing")
	calcCmd.Flags().Float64Var(&calcStopLoss, "stop", 0, "stop loss price for position sizing")
}

func Calc(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	services := service.NewService(appDep.cfg, appDep.log, appDep.cache)
	risk := services.RiskService

	params := dto.RiskParams{
		InitialPortfolio: calcPortfolio,
		RiskPercentage:   calcRiskPct,
		MaxDrawdown:      calcMaxDD,
		BestCase:         calcBestCase,
		NormalCase:       calcNormalCase,
		WorstCase:        calcWorstCase,
	}
	risk.ApplyDefaults(&params)

	if err := appDep.validator.Struct(&params); err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	metrics := risk.CalculateMetrics(ctx, params)
	scenarios := risk.ClampScenarios(params)
	projection := risk.Project(ctx, params, dto.ProjectionMode(calcMode))

	fmt.Println("Trading Strategy Metrics")
	fmt.Println("------------------------")
	fmt.Printf("Initial Portfolio:          %s\n", metrics.InitialPortfolioDisplay)
	fmt.Printf("Risk Per Trade:             %s (%s)\n", metrics.RiskAmountDisplay, utils.FormatPercentage(metrics.RiskPercentage))
	fmt.Printf("Estimated Max Drawdown:     %.1f%% (-%s)\n", metrics.MaxDrawdown, metrics.MaxLossDisplay)
	fmt.Printf("Remaining After Max DD:     %s\n", metrics.RemainingPortfolioDisplay)
	if metrics.MaxTradesDefined {
		fmt.Printf("Max Simultaneous Trades:    %d\n", metrics.MaxTrades)
		fmt.Printf("Average Trade Size:         %s\n", metrics.AvgTradeSizeDisplay)
	} else {
		fmt.Println("Max Simultaneous Trades:    undefined (risk amount is zero)")
	}

	fmt.Println()
	fmt.Printf("Scenarios (clamped):        best %.0f%% / normal %.0f%% / worst %.0f%%\n",
		scenarios.BestCase, scenarios.NormalCase, scenarios.WorstCase)

	fmt.Println()
	fmt.Printf("%d-Month Projection (%s)\n", projection.Months, projection.Mode)
	for _, series := range projection.Series {
		fmt.Printf("  %-6s -> %s\n", series.Scenario, utils.FormatUSD(series.FinalValue))
	}

	if calcEntryPrice > 0 {
		result := risk.CalculatePositionSize(ctx, dto.PositionSizeRequest{
			InitialPortfolio: params.InitialPortfolio,
			RiskPercentage:   params.RiskPercentage,
			EntryPrice:       calcEntryPrice,
			StopLoss:         calcStopLoss,
		})

		fmt.Println()
		fmt.Println("Position Sizing")
		if result.Defined {
			fmt.Printf("  Size:        %.2f units\n", result.Size)
			fmt.Printf("  Total Value: %s\n", utils.FormatUSD(result.TotalValue))
		} else {
			fmt.Println("  undefined: entry price equals stop loss")
		}
	}
}
