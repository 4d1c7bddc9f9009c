package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"wanderlust/internal/config"
	"wanderlust/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DB.URL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(&db_models.Account{}, &db_models.Trip{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
