package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jerseykraft/internal/entity"
)

// ListTemplates returns the template catalog --> GET /api/templates
func (h *Handler) ListTemplates(c echo.Context) error {
	docs, err := h.catalog.ListTemplates(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

// CreateTemplate persists a new template --> POST /api/templates
func (h *Handler) CreateTemplate(c echo.Context) error {
	t := entity.JerseyTemplate{}
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	t.ApplyDefaults()
	if err := c.Validate(&t); err != nil {
		return errorJSON(c, err)
	}
	id, err := h.catalog.CreateTemplate(c.Request().Context(), &t)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

// CreateTier persists a new pricing tier --> POST /api/admin/tiers
func (h *Handler) CreateTier(c echo.Context) error {
	t := entity.PricingTier{}
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	t.ApplyDefaults()
	if err := c.Validate(&t); err != nil {
		return errorJSON(c, err)
	}
	id, err := h.catalog.CreateTier(c.Request().Context(), &t)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

// ListTiers returns every pricing tier --> GET /api/admin/tiers
func (h *Handler) ListTiers(c echo.Context) error {
	docs, err := h.catalog.ListTiers(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

type aiLogoRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Style  string `json:"style"`
}

// GenerateLogo returns a placeholder logo and suggested placement rects.
// Stub: no external model is called --> POST /api/ai/logo
func (h *Handler) GenerateLogo(c echo.Context) error {
	req := aiLogoRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.Style == "" {
		req.Style = "sporty"
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"logo_url": "https://placehold.co/256x256/png?text=AI+Logo",
		"suggested_positions": []map[string]interface{}{
			{"area": "front_center", "x": 0.5, "y": 0.25, "w": 0.3},
			{"area": "chest_left", "x": 0.28, "y": 0.22, "w": 0.18},
			{"area": "sleeve_right", "x": 0.82, "y": 0.35, "w": 0.2},
		},
	})
}
