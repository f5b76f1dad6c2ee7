package api

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ImportTeam imports a roster CSV as a new team --> POST /api/team/import
// Form fields: team_name, sport; file field: csv with name,number,size
// headers.
func (h *Handler) ImportTeam(c echo.Context) error {
	teamName := c.FormValue("team_name")
	sport := c.FormValue("sport")
	if teamName == "" || sport == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "team_name and sport are required"})
	}

	fh, err := c.FormFile("csv")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "csv file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not read csv file"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not read csv file"})
	}

	id, count, err := h.teams.ImportRoster(c.Request().Context(), teamName, sport, data)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"id": id, "count": count})
}
