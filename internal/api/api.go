package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"jerseykraft/internal/config"
	"jerseykraft/internal/entity"
	"jerseykraft/internal/schema"
)

// CatalogService serves templates and pricing tiers.
type CatalogService interface {
	ListTemplates(ctx context.Context) ([]bson.M, error)
	CreateTemplate(ctx context.Context, t *entity.JerseyTemplate) (string, error)
	ListTiers(ctx context.Context) ([]bson.M, error)
	CreateTier(ctx context.Context, t *entity.PricingTier) (string, error)
}

// TeamService imports uploaded rosters.
type TeamService interface {
	ImportRoster(ctx context.Context, teamName, sport string, csvData []byte) (string, int, error)
}

// OrderService handles checkout and order operations.
type OrderService interface {
	Checkout(ctx context.Context, req *entity.CheckoutRequest) (*entity.CheckoutResult, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Order(ctx context.Context, id string) (bson.M, error)
	Orders(ctx context.Context, limit int) ([]bson.M, error)
}

// Diagnostics reports store connectivity for GET /test.
type Diagnostics interface {
	Available() bool
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

// Handler routes HTTP requests to the services.
type Handler struct {
	cfg     *config.Config
	catalog CatalogService
	teams   TeamService
	orders  OrderService
	diag    Diagnostics
	schemas map[string]*jsonschema.Schema
}

// NewHandler creates a new instance of Handler.
func NewHandler(cfg *config.Config, catalog CatalogService, teams TeamService, orders OrderService, diag Diagnostics) *Handler {
	return &Handler{
		cfg:     cfg,
		catalog: catalog,
		teams:   teams,
		orders:  orders,
		diag:    diag,
		schemas: schema.Registry(),
	}
}

// RegisterRoutes attaches every route to the echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Root)
	e.GET("/schema", h.SchemaRegistry)
	e.GET("/test", h.TestDatabase)

	e.GET("/api/templates", h.ListTemplates)
	e.POST("/api/templates", h.CreateTemplate)
	e.POST("/api/team/import", h.ImportTeam)
	e.POST("/api/ai/logo", h.GenerateLogo)
	e.POST("/api/checkout", h.Checkout)
	e.POST("/api/orders/:id/status", h.UpdateOrderStatus)
	e.GET("/api/orders/:id", h.GetOrder)
	e.GET("/api/orders", h.ListOrders)
	e.POST("/api/admin/tiers", h.CreateTier)
	e.GET("/api/admin/tiers", h.ListTiers)
}

// Root answers the liveness probe.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "JerseyKraft backend is running"})
}

// SchemaRegistry exposes the entity schemas for the DB viewer.
func (h *Handler) SchemaRegistry(c echo.Context) error {
	return c.JSON(http.StatusOK, h.schemas)
}

// Validator adapts go-playground/validator to echo's Validator hook.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return entity.NewValidationError(err)
	}
	return nil
}

// errorJSON maps the error taxonomy onto status codes at the endpoint
// boundary. Clients get a status and a detail string, nothing structured.
func errorJSON(c echo.Context, err error) error {
	var ve *entity.ValidationError
	var ee *entity.EncodingError
	var se *entity.StorageError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Detail})
	case errors.As(err, &ee):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ee.Detail})
	case errors.Is(err, entity.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	case errors.As(err, &se):
		if se.Unavailable {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": se.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": se.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
