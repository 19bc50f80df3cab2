package config

import (
	"log"

	"gorm.io/gorm"
)

// Migrate applies the schema in one ordered pass at startup. The order
// matters: application_types before questions and applications, users
// before applications.
func Migrate(db *gorm.DB, models ...interface{}) {
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Failed to migrate %T: %v", model, err)
		}
	}
	log.Println("Database schema up to date")
}
