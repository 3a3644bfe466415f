package handler

import (
	"strconv"

	"greengrocer/internal/domain/entity"
	domainerrors "greengrocer/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pageLimits are the paging bounds of one list endpoint.
type pageLimits struct {
	defaultLimit int
	maxLimit     int
}

// parsePagination reads limit and offset. The first of offsetNames present
// in the query supplies the offset.
func parsePagination(c echo.Context, limits pageLimits, offsetNames ...string) (entity.Pagination, error) {
	page := entity.Pagination{Limit: limits.defaultLimit}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return page, domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")
		}
		if limit > limits.maxLimit {
			return page, domainerrors.ErrValidationFailed.WithDetails("limit must be at most " + strconv.Itoa(limits.maxLimit))
		}
		page.Limit = limit
	}

	for _, name := range offsetNames {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}

		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return page, domainerrors.ErrValidationFailed.WithDetails(name + " must be a non-negative integer")
		}
		page.Offset = offset

		break
	}

	return page, nil
}

// parseOptionalInt returns nil when name is absent from the query.
func parseOptionalInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return &v, nil
}

// parseOptionalUUID returns nil when name is absent from the query.
func parseOptionalUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return &id, nil
}

// parseIDParam reads the :id path parameter.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	return id, nil
}

// bindAndValidate decodes the JSON body into req and runs the struct rules.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON for this resource")
	}

	return c.Validate(req)
}
