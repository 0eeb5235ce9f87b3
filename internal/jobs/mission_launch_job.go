package jobs

import (
	"context"
	"log/slog"

	"dronefleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MissionLaunchJob manages the scheduled launch of planned missions.
// Each tick launches at most one mission, like the console launch entry.
type MissionLaunchJob struct {
	handler  commands.LaunchMissionCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMissionLaunchJob creates a new job for launching missions.
func NewMissionLaunchJob(handler commands.LaunchMissionCommandHandler, schedule string, logger *slog.Logger) *MissionLaunchJob {
	return &MissionLaunchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "mission_launch_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *MissionLaunchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Mission launch job started", "schedule", j.schedule)
	return nil
}

// Run launches the next planned mission, if any.
func (j *MissionLaunchJob) Run(ctx context.Context) {
	outcome, err := j.handler.Handle(ctx, commands.NewLaunchMissionCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Mission launch job failed", "error", err)
		return
	}
	if outcome.Applied {
		j.logger.InfoContext(ctx, outcome.Message)
	}
}

// Stop stops the mission launch job.
func (j *MissionLaunchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Mission launch job stopped")
}
