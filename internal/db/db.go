package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/smilepoint/dental-clinic/internal/config"
	"github.com/smilepoint/dental-clinic/internal/models"
)

// NewDB connects and migrates. A nil return means the server runs
// without persistence (DATABASE_URL unset).
func NewDB(cfg *config.Config) *gorm.DB {
	if cfg.DBUrl == "" {
		log.Println("DATABASE_URL not set, persistence disabled")
		return nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Dentist{},
		&models.TimeSlot{},
		&models.Appointment{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.ProductReview{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := Seed(db); err != nil {
		log.Printf("seed error: %v", err)
	}

	return db
}
