package models

import "gorm.io/gorm"

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Client{},
		&SubClient{},
		&User{},
		&Outlet{},
		&Asset{},
		&GhostAsset{},
		&SmartDevice{},
		&Movement{},
		&HealthEvent{},
		&DoorEvent{},
		&Alert{},
		&AlertsDefinition{},
	}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
