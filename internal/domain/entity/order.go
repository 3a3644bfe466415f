package entity

import "github.com/google/uuid"

// Order links a customer to a vegetable with a quantity.
type Order struct {
	ID          uuid.UUID `json:"id"`
	VegetableID uuid.UUID `json:"vegetableId"`
	CustomerID  uuid.UUID `json:"customerId"`
	Quantity    int       `json:"quantity"`
}
