// Package impl contains the application-specific business rules implementations.
package impl

import (
	"greengrocer/internal/domain/entity"
	domainerrors "greengrocer/internal/domain/errors"
	"greengrocer/internal/domain/repository"
	"greengrocer/internal/errors"

	"github.com/google/uuid"
)

// entityKind pairs an entity name with the sentinel its repository returns
// for a missing record.
type entityKind struct {
	name     string
	notFound error
}

var (
	customerKind  = entityKind{name: domainerrors.EntityCustomer, notFound: repository.ErrCustomerNotFound}
	vegetableKind = entityKind{name: domainerrors.EntityVegetable, notFound: repository.ErrVegetableNotFound}
	orderKind     = entityKind{name: domainerrors.EntityOrder, notFound: repository.ErrOrderNotFound}
)

// translate maps a repository error for the record id to the domain error
// callers see. Errors that already are AppErrors pass through wrapped with op.
func (k entityKind) translate(err error, id uuid.UUID, op string) error {
	switch {
	case errors.Is(err, k.notFound):
		return domainerrors.NewNotFoundError(k.name, id)
	case errors.Is(err, repository.ErrReferenceViolation):
		return domainerrors.ErrReferenceConflict.WithDetails(k.name + " " + id.String() + " is referenced by existing orders")
	default:
		return errors.Wrap(err, op)
	}
}

// validatePagination rejects windows the store cannot express.
func validatePagination(page entity.Pagination) error {
	if page.Limit < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("limit must not be negative")
	}
	if page.Offset < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("offset must not be negative")
	}

	return nil
}

// newID returns a time-ordered identifier for a new record.
func newID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to generate id")
	}

	return id, nil
}
