package model

import "github.com/google/uuid"

// VegetableModel mirrors the 'vegetables' table.
type VegetableModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title  string    `gorm:"not null"`
	Weight int       `gorm:"not null"`
	Price  int       `gorm:"not null"`
	Length int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VegetableModel) TableName() string {
	return "vegetables"
}
