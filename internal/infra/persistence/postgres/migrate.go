package postgres

import (
	"context"

	"greengrocer/internal/errors"
	"greengrocer/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the customers, vegetables and orders tables with
// their foreign keys. It is a provisioning step, not part of serving traffic.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
