package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trading-risk-dashboard/internal/dto"
)

func (h *HttpAPIHandler) SetupRisk(base *echo.Group) {
	v1 := base.Group("/v1/risk")
	{
		v1.GET("/dashboard", h.GetDashboard)
		v1.POST("/metrics", h.CalculateMetrics)
		v1.POST("/projection", h.CalculateProjection)
		v1.POST("/position-size", h.CalculatePositionSize)
	}
}

// GetDashboard serves the full dashboard snapshot. Query params are
// optional; absent ones fall back to the configured defaults.
func (h *HttpAPIHandler) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.ProjectionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid query parameters"))
	}

	h.service.RiskService.ApplyDefaults(&req.RiskParams)

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	snapshot := h.service.DashboardService.Snapshot(ctx, req.RiskParams, req.Mode)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("dashboard snapshot", snapshot))
}

func (h *HttpAPIHandler) CalculateMetrics(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.RiskParams)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	metrics := h.service.RiskService.CalculateMetrics(ctx, *req)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("risk metrics", metrics))
}

func (h *HttpAPIHandler) CalculateProjection(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.ProjectionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	projection := h.service.RiskService.Project(ctx, req.RiskParams, req.Mode)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("portfolio projection", projection))
}

// CalculatePositionSize returns 422 when entry price equals stop loss,
// so an undefined size never leaves the API as Inf or NaN.
func (h *HttpAPIHandler) CalculatePositionSize(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.PositionSizeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	result := h.service.RiskService.CalculatePositionSize(ctx, *req)
	if !result.Defined {
		return c.JSON(http.StatusUnprocessableEntity,
			dto.NewUnprocessableResponse("position size undefined: entry price equals stop loss"))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("position size", result))
}
