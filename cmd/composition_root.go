package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"dronefleet/internal/adapters/in/cli"
	httpin "dronefleet/internal/adapters/in/http"
	"dronefleet/internal/adapters/out/postgres"
	"dronefleet/internal/adapters/out/postgres/scenariorepo"
	"dronefleet/internal/adapters/out/scenariofile"
	"dronefleet/internal/core/application/engine"
	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/core/ports"
	"dronefleet/internal/jobs"

	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// CompositionRoot owns the single engine instance and builds every handler
// around it. It implements cli.Application.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	runner *engine.Runner
	source ports.ScenarioSource

	// gormDB is opened on first use.
	gormDB *gorm.DB
}

var _ cli.Application = (*CompositionRoot)(nil)

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := config.Policy()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config: config,
		logger: logger,
		runner: engine.NewRunner(engine.New(policy, logger)),
	}

	switch config.ScenarioSource {
	case SourcePostgres:
		repo, err := c.scenarioRepository()
		if err != nil {
			return nil, err
		}
		c.source = repo
	default:
		c.source = scenariofile.New(config.ScenarioDir)
	}

	return c, nil
}

func (c *CompositionRoot) CreateLoadScenarioCommandHandler() commands.LoadScenarioCommandHandler {
	return commands.NewLoadScenarioCommandHandler(c.source, c.runner)
}

func (c *CompositionRoot) CreatePlanMissionsCommandHandler() commands.PlanMissionsCommandHandler {
	return commands.NewPlanMissionsCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateLaunchMissionCommandHandler() commands.LaunchMissionCommandHandler {
	return commands.NewLaunchMissionCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateCompleteMissionCommandHandler() commands.CompleteMissionCommandHandler {
	return commands.NewCompleteMissionCommandHandler(c.runner)
}

func (c *CompositionRoot) CreatePopNotificationCommandHandler() commands.PopNotificationCommandHandler {
	return commands.NewPopNotificationCommandHandler(c.runner)
}

func (c *CompositionRoot) CreateDescribeSystemQueryHandler() queries.DescribeSystemQueryHandler {
	return queries.NewDescribeSystemQueryHandler(c.runner)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.runner)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.runner)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePlanMissionsCommandHandler(),
		c.CreateLaunchMissionCommandHandler(),
		c.config.AutoDispatchSchedule,
		c.logger,
	)
}

// Shell creates the operator console.
func (c *CompositionRoot) Shell(in io.Reader, out io.Writer) *cli.Shell {
	handlers := cli.Handlers{
		LoadScenario:    c.CreateLoadScenarioCommandHandler(),
		PlanMissions:    c.CreatePlanMissionsCommandHandler(),
		LaunchMission:   c.CreateLaunchMissionCommandHandler(),
		CompleteMission: c.CreateCompleteMissionCommandHandler(),
		PopNotification: c.CreatePopNotificationCommandHandler(),
		DescribeSystem:  c.CreateDescribeSystemQueryHandler(),
		GetStatistics:   c.CreateGetStatisticsQueryHandler(),
		GetPackage:      c.CreateGetPackageQueryHandler(),
	}
	return cli.NewShell(handlers, c.config.ScenarioPath, in, out)
}

// Serve runs the HTTP API, plus the auto-dispatch jobs when a schedule is
// configured, until ctx is cancelled.
func (c *CompositionRoot) Serve(ctx context.Context) error {
	server := httpin.NewServer(httpin.Handlers{
		LoadScenario:    c.CreateLoadScenarioCommandHandler(),
		PlanMissions:    c.CreatePlanMissionsCommandHandler(),
		LaunchMission:   c.CreateLaunchMissionCommandHandler(),
		CompleteMission: c.CreateCompleteMissionCommandHandler(),
		PopNotification: c.CreatePopNotificationCommandHandler(),
		DescribeSystem:  c.CreateDescribeSystemQueryHandler(),
		GetStatistics:   c.CreateGetStatisticsQueryHandler(),
		GetPackage:      c.CreateGetPackageQueryHandler(),
	}, c.logger)

	e, err := httpin.NewRouter(server, c.logger)
	if err != nil {
		return err
	}

	if c.config.AutoDispatchSchedule != "" {
		jobManager := c.CreateJobManager()
		if err := jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", c.config.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// ImportScenario validates the scenario file at path and stores its lines under name.
func (c *CompositionRoot) ImportScenario(ctx context.Context, name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrSourceUnavailable, err)
	}

	records, err := scenariofile.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	repo, err := c.scenarioRepository()
	if err != nil {
		return err
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if err := repo.Save(ctx, name, strings.Split(strings.TrimRight(text, "\n"), "\n")); err != nil {
		return err
	}

	c.logger.Info("scenario imported", "name", name, "path", path, "records", len(records))
	return nil
}

// ListScenarios returns the names of the stored scenarios.
func (c *CompositionRoot) ListScenarios(ctx context.Context) ([]string, error) {
	repo, err := c.scenarioRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

func (c *CompositionRoot) scenarioRepository() (*scenariorepo.GormScenarioRepository, error) {
	if c.gormDB == nil {
		db, err := postgres.Open(c.config.Database())
		if err != nil {
			return nil, err
		}
		c.gormDB = db
	}
	return scenariorepo.NewGormScenarioRepository(c.gormDB)
}
