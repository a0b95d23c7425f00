package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-risk-dashboard/config"
	"trading-risk-dashboard/internal/dto"
	"trading-risk-dashboard/internal/service"
	"trading-risk-dashboard/pkg/cache"
	"trading-risk-dashboard/pkg/logger"
)

func newTestHandler(t *testing.T) (*HttpAPIHandler, *echo.Echo) {
	t.Helper()

	cfg := &config.Config{
		Cache: config.Cache{
			DefaultExpiration: time.Minute,
			CleanupInterval:   time.Minute,
			SnapshotTTL:       time.Minute,
		},
		Risk: config.Risk{
			InitialPortfolio: 75000,
			RiskPercentage:   2.0,
			MaxDrawdown:      32.6,
			BestCase:         66,
			NormalCase:       32,
			WorstCase:        21,
		},
	}

	log := logger.NewNop()
	inmemoryCache := cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval)
	inmemoryCache.Flush()

	services := service.NewService(cfg, log, inmemoryCache)

	e := echo.New()
	handler := NewHttpAPIHandler(context.Background(), e, goValidator.New(), services)
	handler.SetupRoutes()

	return handler, e
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.BaseResponse {
	t.Helper()

	var resp dto.BaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetDashboard_Defaults(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/risk/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var snapshot dto.DashboardSnapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))

	assert.Equal(t, 75000.0, snapshot.Params.InitialPortfolio)
	assert.Equal(t, dto.ProjectionModeLinear, snapshot.Mode)
	assert.InDelta(t, 1500.00, snapshot.Metrics.RiskAmount, 1e-9)
	assert.Len(t, snapshot.Gauges, 3)
	require.Len(t, snapshot.Projection.Series, 3)
	assert.Len(t, snapshot.Projection.Series[0].Points, 12)
}

func TestGetDashboard_QueryParams(t *testing.T) {
	_, e := newTestHandler(t)

	target := "/api/v1/risk/dashboard?initial_portfolio=60000&risk_percentage=1&max_drawdown=20&best_case=40&normal_case=60&worst_case=10&mode=compound"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	data, _ := json.Marshal(resp.Data)
	var snapshot dto.DashboardSnapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))

	assert.Equal(t, dto.ProjectionModeCompound, snapshot.Mode)
	// normal_case=60 exceeds best_case=40, clamped down.
	assert.Equal(t, 40.0, snapshot.Scenarios.NormalCase)
	assert.InDelta(t, 600.0, snapshot.Metrics.RiskAmount, 1e-9)
}

func TestGetDashboard_PortfolioOutOfRange(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/risk/dashboard?initial_portfolio=500", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateMetrics(t *testing.T) {
	_, e := newTestHandler(t)

	body := `{"initial_portfolio":75000,"risk_percentage":2.0,"max_drawdown":32.6}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/metrics", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	data, _ := json.Marshal(resp.Data)
	var metrics dto.RiskMetrics
	require.NoError(t, json.Unmarshal(data, &metrics))

	assert.InDelta(t, 1500.00, metrics.RiskAmount, 1e-9)
	assert.InDelta(t, 24450.00, metrics.MaxLoss, 1e-9)
	assert.InDelta(t, 50550.00, metrics.RemainingPortfolio, 1e-9)
	assert.True(t, metrics.MaxTradesDefined)
	assert.Equal(t, 50, metrics.MaxTrades)
}

func TestCalculateMetrics_MissingPortfolio(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/metrics", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateProjection(t *testing.T) {
	_, e := newTestHandler(t)

	body := `{"initial_portfolio":75000,"best_case":66,"normal_case":32,"worst_case":21,"mode":"compound"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/projection", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	data, _ := json.Marshal(resp.Data)
	var projection dto.Projection
	require.NoError(t, json.Unmarshal(data, &projection))

	assert.Equal(t, dto.ProjectionModeCompound, projection.Mode)
	require.Len(t, projection.Series, 3)
	assert.InDelta(t, 75000*1.66, projection.Series[0].Points[0].Value, 1e-6)
}

func TestCalculateProjection_InvalidMode(t *testing.T) {
	_, e := newTestHandler(t)

	body := `{"initial_portfolio":75000,"mode":"hyperbolic"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/projection", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculatePositionSize(t *testing.T) {
	_, e := newTestHandler(t)

	body := `{"initial_portfolio":75000,"risk_percentage":2.0,"entry_price":100,"stop_loss":95}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/position-size", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	data, _ := json.Marshal(resp.Data)
	var result dto.PositionSize
	require.NoError(t, json.Unmarshal(data, &result))

	assert.True(t, result.Defined)
	assert.InDelta(t, 300.00, result.Size, 1e-9)
	assert.InDelta(t, 30000.00, result.TotalValue, 1e-9)
}

func TestCalculatePositionSize_EntryEqualsStop(t *testing.T) {
	_, e := newTestHandler(t)

	body := `{"initial_portfolio":75000,"risk_percentage":2.0,"entry_price":100,"stop_loss":100}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/risk/position-size", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Contains(t, resp.Message, "undefined")
}

func TestDashboardPage(t *testing.T) {
	_, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Trading Strategy Metrics")
}
