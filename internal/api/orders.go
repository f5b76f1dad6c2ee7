package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jerseykraft/internal/entity"
)

const defaultOrderListLimit = 50

// Checkout creates an order and a simulated payment intent for it
// --> POST /api/checkout
func (h *Handler) Checkout(c echo.Context) error {
	req := entity.CheckoutRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	req.Design.ApplyDefaults()
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, err)
	}
	result, err := h.orders.Checkout(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// UpdateOrderStatus overwrites an order's status --> POST /api/orders/:id/status
// Any of the four literal statuses is accepted; transitions are not
// enforced and repeating a status is fine.
func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order id"})
	}
	req := entity.UpdateStatusRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, err)
	}
	if err := h.orders.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// GetOrder returns one order record --> GET /api/orders/:id
// Malformed ids are rejected before any store access.
func (h *Handler) GetOrder(c echo.Context) error {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order id"})
	}
	doc, err := h.orders.Order(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// ListOrders returns order records newest first --> GET /api/orders?limit=
func (h *Handler) ListOrders(c echo.Context) error {
	limit := defaultOrderListLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid limit"})
		}
		limit = n
	}
	docs, err := h.orders.Orders(c.Request().Context(), limit)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}
