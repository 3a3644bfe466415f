// Package query holds the gorm/gen type-safe query builders for the
// persistence models. Regenerate with `go run ./cmd/gen`.
package query

import (
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Query groups the query builders of every model over one *gorm.DB.
type Query struct {
	db *gorm.DB

	CustomerModel  customerModel
	OrderModel     orderModel
	VegetableModel vegetableModel
}

// Use binds the query builders to db, which may be a transaction.
func Use(db *gorm.DB, opts ...gen.DOOption) *Query {
	return &Query{
		db:             db,
		CustomerModel:  newCustomerModel(db, opts...),
		OrderModel:     newOrderModel(db, opts...),
		VegetableModel: newVegetableModel(db, opts...),
	}
}
