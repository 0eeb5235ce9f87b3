package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"dronefleet/internal/adapters/out/postgres"
	"dronefleet/internal/core/application/engine"
	"dronefleet/internal/pkg/errs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Scenario source kinds.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPPort string     `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// ScenarioSource selects where load reads scenarios from: file paths or
	// scenario names stored in PostgreSQL.
	ScenarioSource string `env:"SCENARIO_SOURCE" envDefault:"file"`
	// ScenarioDir confines file sources; load names are paths relative to it.
	ScenarioDir string `env:"SCENARIO_DIR" envDefault:"data"`
	// ScenarioPath is what the console loads when no source is given.
	ScenarioPath string `env:"SCENARIO_PATH" envDefault:"scenario_demo.txt"`

	WeightCeiling float64 `env:"DISPATCH_WEIGHT_CEILING" envDefault:"2.0"`
	// AutoDispatchSchedule enables the planning and launch jobs in serve mode.
	AutoDispatchSchedule string `env:"AUTO_DISPATCH_SCHEDULE"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"dronefleet"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var errList []error
	if c.HTTPPort == "" {
		errList = append(errList, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.ScenarioSource == SourceFile && c.ScenarioDir == "" {
		errList = append(errList, errs.NewValueIsRequiredError("SCENARIO_DIR"))
	}
	if c.ScenarioSource != SourceFile && c.ScenarioSource != SourcePostgres {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SCENARIO_SOURCE",
			fmt.Errorf("%q is neither %q nor %q", c.ScenarioSource, SourceFile, SourcePostgres)))
	}
	if _, err := c.Policy(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// Policy builds the dispatch policy from DISPATCH_WEIGHT_CEILING.
func (c Config) Policy() (engine.Policy, error) {
	return engine.NewPolicy(c.WeightCeiling)
}

func (c Config) Database() postgres.Settings {
	return postgres.Settings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SslMode:  c.DBSslMode,
	}
}
