package migration

import (
	"RecipeHub/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeLike{}); err != nil {
		log.Fatalf("Error migrating recipe like database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeFavorite{}); err != nil {
		log.Fatalf("Error migrating recipe favorite database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeWatch{}); err != nil {
		log.Fatalf("Error migrating recipe watch database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserRecipe{}); err != nil {
		log.Fatalf("Error migrating user recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FamilyRecipe{}); err != nil {
		log.Fatalf("Error migrating family recipe database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
