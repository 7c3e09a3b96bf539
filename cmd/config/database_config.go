package config

import (
	"fmt"
	"log"

	"cafeteria-backend/internal/utils"
	"cafeteria-backend/pkg/database"

	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	driver := utils.GetConfig("DB_DRIVER")

	var dsn string
	if driver == "sqlite" {
		dsn = utils.GetConfig("DB_NAME")
	} else {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
	}

	db, err := database.Open(driver, dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
