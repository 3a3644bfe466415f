// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a person who places orders.
type Customer struct {
	ID        uuid.UUID `json:"id"`        // Server-generated, immutable identifier.
	FullName  string    `json:"fullName"`  // The only mutable field.
	CreatedAt time.Time `json:"createdAt"` // Set once at creation.
}

// CustomerFilter narrows the customer list by the orders each customer placed.
// A nil field means the predicate is not applied.
type CustomerFilter struct {
	// MinTotalQuantity keeps customers whose summed order quantity is at least this value.
	// When VegetableID is also set only orders for that vegetable are summed.
	MinTotalQuantity *int
	// VegetableID keeps customers with at least one order for this vegetable.
	VegetableID *uuid.UUID

	Pagination
}

// HasPredicate reports whether the filter narrows the customer set at all.
func (f CustomerFilter) HasPredicate() bool {
	return f.MinTotalQuantity != nil || f.VegetableID != nil
}
