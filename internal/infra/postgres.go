package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gymtrack/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := AutoMigrate(connectionPool); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return connectionPool
}

// AutoMigrate creates the five tables; foreign-key cascades come from the
// association constraint tags on the models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Member{},
		&db_models.Exercise{},
		&db_models.WorkoutSession{},
		&db_models.WorkoutLog{},
		&db_models.BodyMeasurement{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed")
	}
}
