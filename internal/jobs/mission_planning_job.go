package jobs

import (
	"context"
	"log/slog"

	"dronefleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MissionPlanningJob manages the scheduled matching of queued parcels to drones.
type MissionPlanningJob struct {
	handler  commands.PlanMissionsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMissionPlanningJob creates a new job for planning missions.
// schedule is a cron expression with a seconds field, or a descriptor such as "@every 5s".
func NewMissionPlanningJob(handler commands.PlanMissionsCommandHandler, schedule string, logger *slog.Logger) *MissionPlanningJob {
	return &MissionPlanningJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "mission_planning_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *MissionPlanningJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Mission planning job started", "schedule", j.schedule)
	return nil
}

// Run plans missions once.
func (j *MissionPlanningJob) Run(ctx context.Context) {
	report, err := j.handler.Handle(ctx, commands.NewPlanMissionsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Mission planning job failed", "error", err)
		return
	}

	// An empty queue is the usual case between scenarios.
	if report.PendingBefore == 0 {
		return
	}
	j.logger.InfoContext(ctx, "Missions planned",
		"pending_before", report.PendingBefore,
		"planned", report.Planned,
		"pending_after", report.PendingAfter,
	)
}

// Stop stops the mission planning job.
func (j *MissionPlanningJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Mission planning job stopped")
}
