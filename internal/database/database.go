// Package database wires IDS: a MySQL store accessed through GORM, with the
// connection-pool tuning and migration discipline bookings-api established
// (internal/database/database.go).
package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/icarusiftctts/campus-bus-backend/internal/config"
	"github.com/icarusiftctts/campus-bus-backend/internal/dao"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// InitDB opens the MySQL connection, configures pooling, and pings to fail
// fast on misconfiguration.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required but not provided in configuration")
	}

	log.Info().Str("dsn", sanitizeDSN(cfg.DatabaseURL)).Msg("connecting to MySQL")

	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
		DisableForeignKeyConstraintWhenMigrating: false,
		PrepareStmt:                              true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping MySQL database: %w", err)
	}

	log.Info().Str("database", extractDatabaseName(cfg.DatabaseURL)).Msg("MySQL connection established")

	return db, nil
}

// AutoMigrate creates/updates all IDS tables. Safe to run on every startup.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&dao.Passenger{},
		&dao.Operator{},
		&dao.Trip{},
		&dao.Booking{},
		&dao.TripAssignment{},
		&dao.MisconductReport{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	log.Info().Msg("database tables migrated")
	return nil
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

func sanitizeDSN(dsn string) string {
	if idx := strings.Index(dsn, ":"); idx != -1 {
		if idx2 := strings.Index(dsn[idx:], "@"); idx2 != -1 {
			return dsn[:idx+1] + "***" + dsn[idx+idx2:]
		}
	}
	return dsn
}

func extractDatabaseName(dsn string) string {
	if idx := strings.Index(dsn, "/"); idx != -1 {
		dbPart := dsn[idx+1:]
		if idx2 := strings.Index(dbPart, "?"); idx2 != -1 {
			return dbPart[:idx2]
		}
		return dbPart
	}
	return "unknown"
}
