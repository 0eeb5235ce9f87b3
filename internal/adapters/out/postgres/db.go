// Package postgres wires the GORM connection used by the database-backed
// scenario source.
package postgres

import (
	"fmt"

	"dronefleet/internal/adapters/out/postgres/scenariorepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Settings holds the connection parameters.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SslMode  string
}

// DSN renders the settings as a libpq keyword/value connection string.
func (s Settings) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.Name, s.SslMode)
}

// Open connects to PostgreSQL and migrates the scenario tables.
//
// Example:
//
//	db, err := postgres.Open(postgres.Settings{Host: "localhost", Port: "5432", ...})
//	if err != nil {
//	    log.Fatalf("database: %v", err)
//	}
//	repo, _ := scenariorepo.NewGormScenarioRepository(db)
func Open(settings Settings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the scenario tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&scenariorepo.ScenarioDTO{}, &scenariorepo.ScenarioLineDTO{}); err != nil {
		return fmt.Errorf("failed to migrate scenario tables: %w", err)
	}
	return nil
}
