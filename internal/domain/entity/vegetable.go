package entity

import "github.com/google/uuid"

// Vegetable is a priced catalog item. Weight, price and length carry no unit.
type Vegetable struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Weight int       `json:"weight"`
	Price  int       `json:"price"`
	Length int       `json:"length"`
}
