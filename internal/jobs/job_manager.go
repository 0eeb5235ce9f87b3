package jobs

import (
	"fmt"
	"log/slog"

	"dronefleet/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	missionPlanningJob *MissionPlanningJob
	missionLaunchJob   *MissionLaunchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Both jobs share one schedule.
func NewJobManager(
	planMissionsHandler commands.PlanMissionsCommandHandler,
	launchMissionHandler commands.LaunchMissionCommandHandler,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		missionPlanningJob: NewMissionPlanningJob(planMissionsHandler, schedule, logger),
		missionLaunchJob:   NewMissionLaunchJob(launchMissionHandler, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.missionPlanningJob.Start(); err != nil {
		return fmt.Errorf("failed to start mission planning job: %w", err)
	}

	if err := jm.missionLaunchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.missionPlanningJob.Stop()
		return fmt.Errorf("failed to start mission launch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ticks to finish.
func (jm *JobManager) StopAll() {
	jm.missionLaunchJob.Stop()
	jm.missionPlanningJob.Stop()
}
