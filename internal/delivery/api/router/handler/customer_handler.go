package handler

import (
	"log/slog"
	"net/http"

	"greengrocer/config"
	"greengrocer/internal/delivery/api/response"
	"greengrocer/internal/domain/entity"
	"greengrocer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// CustomerHandler serves the customer resource
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	limits     pageLimits
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		limits: pageLimits{
			defaultLimit: params.Config.Pagination.CustomerDefaultLimit,
			maxLimit:     params.Config.Pagination.MaxLimit,
		},
		logger: params.Logger,
	}
}

// CustomerRequest is the body of create and update
type CustomerRequest struct {
	FullName string `json:"fullName" validate:"required"`
}

// ListCustomers handles GET /customers with the optional order filters
// minTotalQuantity and vegetableTypeId.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	page, err := parsePagination(c, h.limits, "offset")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	minTotal, err := parseOptionalInt(c, "minTotalQuantity")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	vegetableID, err := parseOptionalUUID(c, "vegetableTypeId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.customerUC.ListCustomers(c.Request().Context(), entity.CustomerFilter{
		MinTotalQuantity: minTotal,
		VegetableID:      vegetableID,
		Pagination:       page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), &usecase.CustomerInput{
		FullName: req.FullName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, customer)
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), id, &usecase.CustomerInput{
		FullName: req.FullName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.DeleteCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK,
		response.NewDeleteResponse("Customer deleted successfully", "deletedCustomer", customer))
}
