package database

import "gorm.io/gorm"

var registeredModels []any

// RegisterModels registers the given models for Gorm.
func RegisterModels(models ...any) {
	registeredModels = append(registeredModels, models...)
}

// AutoMigrate migrates all registered models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(registeredModels...)
}

// GetRegisteredModels returns the registered models for Gorm.
func GetRegisteredModels() []any {
	return registeredModels
}
