package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func envFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// TestDatabase reports backend and database connectivity plus env-var
// presence --> GET /test
func (h *Handler) TestDatabase(c echo.Context) error {
	ctx := c.Request().Context()
	response := map[string]interface{}{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"connection_status": "Not Connected",
		"collections":       []string{},
		"database_url":      envFlag(h.cfg.DatabaseURL != ""),
		"database_name":     envFlag(h.cfg.DatabaseName != ""),
	}

	if h.diag.Available() {
		if err := h.diag.Ping(ctx); err != nil {
			detail := err.Error()
			if len(detail) > 80 {
				detail = detail[:80]
			}
			response["database"] = "❌ Error: " + detail
		} else {
			response["database"] = "✅ Available"
			response["connection_status"] = "Connected"
			if names, err := h.diag.CollectionNames(ctx); err == nil {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
			}
		}
	} else {
		response["database"] = "⚠️ Available but not initialized"
	}

	return c.JSON(http.StatusOK, response)
}
