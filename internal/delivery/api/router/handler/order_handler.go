package handler

import (
	"net/http"

	"greengrocer/config"
	"greengrocer/internal/delivery/api/response"
	"greengrocer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Config  *config.Config
}

// OrderHandler serves the order resource
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	limits  pageLimits
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		limits: pageLimits{
			defaultLimit: params.Config.Pagination.DefaultLimit,
			maxLimit:     params.Config.Pagination.MaxLimit,
		},
	}
}

// OrderRequest is the body of create and update
type OrderRequest struct {
	VegetableID uuid.UUID `json:"vegetableId" validate:"required"`
	CustomerID  uuid.UUID `json:"customerId" validate:"required"`
	Quantity    *int      `json:"quantity" validate:"required"`
}

func (r *OrderRequest) toInput() *usecase.OrderInput {
	return &usecase.OrderInput{
		VegetableID: r.VegetableID,
		CustomerID:  r.CustomerID,
		Quantity:    *r.Quantity,
	}
}

// ListOrders handles GET /orders. skip is accepted in place of offset.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, err := parsePagination(c, h.limits, "offset", "skip")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.orderUC.ListOrders(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CreateOrder handles POST /orders. A missing customer or vegetable is a 404
// naming the missing reference.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// UpdateOrder handles PUT /orders/:id
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req OrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.DeleteOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK,
		response.NewDeleteResponse("Order deleted successfully", "deletedOrder", order))
}
