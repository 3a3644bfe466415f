package handler

import (
	"net/http"

	"greengrocer/config"
	"greengrocer/internal/delivery/api/response"
	"greengrocer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VegetableHandlerParams holds dependencies for VegetableHandler, injected by Fx.
type VegetableHandlerParams struct {
	fx.In

	VegetableUC usecase.VegetableUsecase
	Config      *config.Config
}

// VegetableHandler serves the vegetable resource
type VegetableHandler struct {
	vegetableUC usecase.VegetableUsecase
	limits      pageLimits
}

// NewVegetableHandler is the constructor for VegetableHandler
func NewVegetableHandler(params VegetableHandlerParams) *VegetableHandler {
	return &VegetableHandler{
		vegetableUC: params.VegetableUC,
		limits: pageLimits{
			defaultLimit: params.Config.Pagination.DefaultLimit,
			maxLimit:     params.Config.Pagination.MaxLimit,
		},
	}
}

// VegetableRequest is the body of create and update. Numeric fields are
// pointers so an explicit 0 passes the required rule.
type VegetableRequest struct {
	Title  string `json:"title" validate:"required"`
	Weight *int   `json:"weight" validate:"required"`
	Price  *int   `json:"price" validate:"required"`
	Length *int   `json:"length" validate:"required"`
}

func (r *VegetableRequest) toInput() *usecase.VegetableInput {
	return &usecase.VegetableInput{
		Title:  r.Title,
		Weight: *r.Weight,
		Price:  *r.Price,
		Length: *r.Length,
	}
}

// ListVegetables handles GET /vegetables. skip is accepted in place of offset.
func (h *VegetableHandler) ListVegetables(c echo.Context) error {
	page, err := parsePagination(c, h.limits, "offset", "skip")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.vegetableUC.ListVegetables(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetVegetable handles GET /vegetables/:id
func (h *VegetableHandler) GetVegetable(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	vegetable, err := h.vegetableUC.GetVegetable(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vegetable)
}

// CreateVegetable handles POST /vegetables
func (h *VegetableHandler) CreateVegetable(c echo.Context) error {
	var req VegetableRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	vegetable, err := h.vegetableUC.CreateVegetable(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, vegetable)
}

// UpdateVegetable handles PUT /vegetables/:id
func (h *VegetableHandler) UpdateVegetable(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req VegetableRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	vegetable, err := h.vegetableUC.UpdateVegetable(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vegetable)
}

// DeleteVegetable handles DELETE /vegetables/:id
func (h *VegetableHandler) DeleteVegetable(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	vegetable, err := h.vegetableUC.DeleteVegetable(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK,
		response.NewDeleteResponse("Vegetable deleted successfully", "deletedVegetable", vegetable))
}
