package migration

import (
	"fmt"
	"log"

	"cafeteria-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuEntry{}); err != nil {
		log.Fatalf("Error migrating menu entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Topup{}); err != nil {
		log.Fatalf("Error migrating topup database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CreditTransaction{}); err != nil {
		log.Fatalf("Error migrating credit transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
