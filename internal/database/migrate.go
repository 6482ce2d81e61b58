package database

import (
	"marketforge/internal/models"

	"gorm.io/gorm"
)

// RegisteredModels lists every model included in migrations, parents first so
// foreign keys resolve in order.
func RegisteredModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Prompt{},
		&models.GeneratedContent{},
		&models.Review{},
	}
}

// Migrate creates or updates the schema for all registered models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(RegisteredModels()...)
}

// Reset drops and recreates the full schema. There is no incremental
// migration tooling; a reset is the only supported schema rebuild.
func Reset(db *gorm.DB) error {
	registered := RegisteredModels()
	// Drop children first.
	for i := len(registered) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(registered[i]); err != nil {
			return err
		}
	}
	return Migrate(db)
}
