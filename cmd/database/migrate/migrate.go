package migration

import (
	"Recipe-API/entities"
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, including the recipe_tags and
// recipe_ingredients join tables. Models go in one call so gorm can order
// them by their foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.Tag{},
		&entities.Ingredient{},
	); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}
	return nil
}
