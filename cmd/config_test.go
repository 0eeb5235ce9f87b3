package cmd

import (
	"log/slog"
	"testing"

	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, slog.LevelInfo, config.LogLevel)
		assert.Equal(t, SourceFile, config.ScenarioSource)
		assert.Equal(t, "data", config.ScenarioDir)
		assert.Equal(t, "scenario_demo.txt", config.ScenarioPath)
		assert.InDelta(t, 2.0, config.WeightCeiling, 1e-9)
		assert.Empty(t, config.AutoDispatchSchedule)
		assert.Equal(t, "disable", config.Database().SslMode)
	})

	t.Run("should read the environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("SCENARIO_SOURCE", SourcePostgres)
		t.Setenv("DISPATCH_WEIGHT_CEILING", "3.5")
		t.Setenv("AUTO_DISPATCH_SCHEDULE", "@every 5s")
		t.Setenv("DB_HOST", "db")

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, slog.LevelDebug, config.LogLevel)
		assert.Equal(t, SourcePostgres, config.ScenarioSource)
		assert.Equal(t, "@every 5s", config.AutoDispatchSchedule)
		assert.Equal(t, "db", config.Database().Host)

		policy, err := config.Policy()
		require.NoError(t, err)
		assert.Equal(t, "3.5", policy.WeightCeiling.String())
	})

	t.Run("should reject an unknown scenario source", func(t *testing.T) {
		t.Setenv("SCENARIO_SOURCE", "s3")

		_, err := LoadConfig()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require a scenario directory for file sources", func(t *testing.T) {
		config, err := LoadConfig()
		require.NoError(t, err)
		config.ScenarioDir = ""

		require.ErrorIs(t, config.Validate(), errs.ErrValueIsRequired)
	})

	t.Run("should reject a non-positive weight ceiling", func(t *testing.T) {
		t.Setenv("DISPATCH_WEIGHT_CEILING", "0")

		_, err := LoadConfig()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a malformed weight ceiling", func(t *testing.T) {
		t.Setenv("DISPATCH_WEIGHT_CEILING", "heavy")

		_, err := LoadConfig()

		require.Error(t, err)
	})
}
