package http

import (
	"context"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"trading-risk-dashboard/internal/service"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.SetupDashboardPage()

	base := h.echo.Group("/api")
	h.SetupRisk(base)
}
