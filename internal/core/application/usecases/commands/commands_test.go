package commands_test

import (
	"testing"

	"dronefleet/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadScenarioCommand(t *testing.T) {
	t.Run("should trim the source", func(t *testing.T) {
		cmd, err := commands.NewLoadScenarioCommand("  data/scenario.txt \n")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "data/scenario.txt", cmd.Source())
	})

	t.Run("should reject a blank source", func(t *testing.T) {
		for _, source := range []string{"", "   ", "\t"} {
			_, err := commands.NewLoadScenarioCommand(source)

			require.ErrorIs(t, err, commands.ErrSourceIsRequired)
		}
	})
}

func TestCommands_Validate_ZeroValue(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"load scenario", commands.LoadScenarioCommand{}.Validate, commands.ErrLoadScenarioCommandIsNotConstructed},
		{"plan missions", commands.PlanMissionsCommand{}.Validate, commands.ErrPlanMissionsCommandIsNotConstructed},
		{"launch mission", commands.LaunchMissionCommand{}.Validate, commands.ErrLaunchMissionCommandIsNotConstructed},
		{"complete mission", commands.CompleteMissionCommand{}.Validate, commands.ErrCompleteMissionCommandIsNotConstructed},
		{"pop notification", commands.PopNotificationCommand{}.Validate, commands.ErrPopNotificationCommandIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestCommands_Validate_Constructed(t *testing.T) {
	require.NoError(t, commands.NewPlanMissionsCommand().Validate())
	require.NoError(t, commands.NewLaunchMissionCommand().Validate())
	require.NoError(t, commands.NewCompleteMissionCommand().Validate())
	require.NoError(t, commands.NewPopNotificationCommand().Validate())
}
