package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. IDs are generated by the service (UUIDv7).
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
