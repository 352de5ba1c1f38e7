package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"soundwave_backend/internals/configs"
	cartModel "soundwave_backend/internals/features/carts/model"
	classModel "soundwave_backend/internals/features/classes/model"
	instructorModel "soundwave_backend/internals/features/instructors/model"
	paymentModel "soundwave_backend/internals/features/payments/model"
	userModel "soundwave_backend/internals/features/users/users/model"
)

// ConnectDB opens the pool. The handle is returned to the caller and passed
// down explicitly; nothing here keeps it in a package variable.
func ConnectDB(cfg configs.Config) (*gorm.DB, error) {
	log.Println("[INFO] Connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	log.Println("[INFO] DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate creates or updates the tables owned by this service.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&instructorModel.InstructorModel{},
		&classModel.ClassModel{},
		&cartModel.CartModel{},
		&paymentModel.PaymentModel{},
	)
}

// Ping reports whether the pool can reach the server.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
