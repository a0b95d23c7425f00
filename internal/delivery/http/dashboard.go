package http

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static/index.html
var staticFS embed.FS

// SetupDashboardPage serves the embedded single-page dashboard.
func (h *HttpAPIHandler) SetupDashboardPage() {
	h.echo.GET("/", func(c echo.Context) error {
		page, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.HTMLBlob(http.StatusOK, page)
	})
}
