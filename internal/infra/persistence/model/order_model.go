package model

import "github.com/google/uuid"

// OrderModel mirrors the 'orders' table. VegetableID references vegetables.id and
// CustomerID references customers.id; deleting a referenced row is rejected
// at statement end (NO ACTION).
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VegetableID uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"not null"`

	// Belongs-to associations, only used by AutoMigrate to emit the foreign keys.
	Vegetable VegetableModel `gorm:"foreignKey:VegetableID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
	Customer  CustomerModel  `gorm:"foreignKey:CustomerID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// All returns every persistence model in dependency order.
func All() []any {
	return []any{
		&CustomerModel{},
		&VegetableModel{},
		&OrderModel{},
	}
}
