package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"dronefleet/internal/core/application/engine"
	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/core/ports"
	"dronefleet/internal/generated/servers"
	"dronefleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	loadScenarioHandler    commands.LoadScenarioCommandHandler
	planMissionsHandler    commands.PlanMissionsCommandHandler
	launchMissionHandler   commands.LaunchMissionCommandHandler
	completeMissionHandler commands.CompleteMissionCommandHandler
	popNotificationHandler commands.PopNotificationCommandHandler

	// Query handlers
	describeSystemHandler queries.DescribeSystemQueryHandler
	getStatisticsHandler  queries.GetStatisticsQueryHandler
	getPackageHandler     queries.GetPackageQueryHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use case handlers the server needs.
type Handlers struct {
	LoadScenario    commands.LoadScenarioCommandHandler
	PlanMissions    commands.PlanMissionsCommandHandler
	LaunchMission   commands.LaunchMissionCommandHandler
	CompleteMission commands.CompleteMissionCommandHandler
	PopNotification commands.PopNotificationCommandHandler
	DescribeSystem  queries.DescribeSystemQueryHandler
	GetStatistics   queries.GetStatisticsQueryHandler
	GetPackage      queries.GetPackageQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
// Load failures are logged in full; clients only see a generic message.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		loadScenarioHandler:    handlers.LoadScenario,
		planMissionsHandler:    handlers.PlanMissions,
		launchMissionHandler:   handlers.LaunchMission,
		completeMissionHandler: handlers.CompleteMission,
		popNotificationHandler: handlers.PopNotification,
		describeSystemHandler:  handlers.DescribeSystem,
		getStatisticsHandler:   handlers.GetStatistics,
		getPackageHandler:      handlers.GetPackage,
		logger:                 logger.With("component", "http_server"),
	}
}

// LoadScenario handles POST /api/v1/scenario - replaces the running scenario.
func (s *Server) LoadScenario(ctx echo.Context) error {
	var request servers.LoadScenarioRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewLoadScenarioCommand(request.Source)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	report, err := s.loadScenarioHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "Scenario load failed", "source", cmd.Source(), "error", err)
	}
	switch {
	case errors.Is(err, ports.ErrSourceUnavailable):
		return errorJSON(ctx, http.StatusNotFound, "Scenario not found")
	case errors.Is(err, ports.ErrMalformedLine), errors.Is(err, engine.ErrMalformedRecord):
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Scenario is malformed")
	case err != nil:
		return failure(ctx, err, "Failed to load scenario")
	}

	return ctx.JSON(http.StatusOK, servers.LoadReport{
		Generation: report.Generation.String(),
		Drones:     report.Drones,
		Packages:   report.Parcels,
	})
}

// PlanMissions handles POST /api/v1/missions/plan.
func (s *Server) PlanMissions(ctx echo.Context) error {
	report, err := s.planMissionsHandler.Handle(ctx.Request().Context(), commands.NewPlanMissionsCommand())
	if err != nil {
		return failure(ctx, err, "Failed to plan missions")
	}

	return ctx.JSON(http.StatusOK, servers.PlanReport{
		PendingBefore: report.PendingBefore,
		Planned:       report.Planned,
		Rejected:      report.Rejected,
		PendingAfter:  report.PendingAfter,
	})
}

// LaunchMission handles POST /api/v1/missions/launch.
func (s *Server) LaunchMission(ctx echo.Context) error {
	outcome, err := s.launchMissionHandler.Handle(ctx.Request().Context(), commands.NewLaunchMissionCommand())
	if err != nil {
		return failure(ctx, err, "Failed to launch mission")
	}

	return ctx.JSON(http.StatusOK, toOutcome(outcome))
}

// CompleteMission handles POST /api/v1/missions/complete.
func (s *Server) CompleteMission(ctx echo.Context) error {
	outcome, err := s.completeMissionHandler.Handle(ctx.Request().Context(), commands.NewCompleteMissionCommand())
	if err != nil {
		return failure(ctx, err, "Failed to complete mission")
	}

	return ctx.JSON(http.StatusOK, toOutcome(outcome))
}

// GetSystem handles GET /api/v1/system.
func (s *Server) GetSystem(ctx echo.Context) error {
	view, err := s.describeSystemHandler.Handle(ctx.Request().Context(), queries.NewDescribeSystemQuery())
	if err != nil {
		return failure(ctx, err, "Failed to describe system")
	}

	response := servers.SystemState{
		Generation:        view.Generation,
		Text:              view.Text,
		Drones:            make([]servers.Drone, len(view.Drones)),
		Pending:           make([]servers.Package, len(view.Pending)),
		ActiveMissions:    toMissions(view.ActiveMissions),
		CompletedMissions: toMissions(view.CompletedMissions),
	}
	for i, d := range view.Drones {
		response.Drones[i] = servers.Drone{
			Id:         d.ID,
			Model:      d.Model,
			MaxPayload: d.MaxPayload,
			Status:     d.Status,
		}
		if d.ParcelID != 0 {
			parcelID := d.ParcelID
			response.Drones[i].PackageId = &parcelID
		}
	}
	for i, p := range view.Pending {
		response.Pending[i] = servers.Package{Id: p.ID, Weight: p.Weight, Destination: p.Destination}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatistics handles GET /api/v1/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.getStatisticsHandler.Handle(ctx.Request().Context(), queries.NewGetStatisticsQuery())
	if err != nil {
		return failure(ctx, err, "Failed to compute statistics")
	}

	return ctx.JSON(http.StatusOK, servers.Statistics{
		Drones:            stats.Drones,
		AvailableDrones:   stats.AvailableDrones,
		FlyingDrones:      stats.FlyingDrones,
		ActiveMissions:    stats.ActiveMissions,
		CompletedMissions: stats.CompletedMissions,
		PendingPackages:   stats.PendingParcels,
	})
}

// PopNotification handles POST /api/v1/notifications/pop.
func (s *Server) PopNotification(ctx echo.Context) error {
	result, err := s.popNotificationHandler.Handle(ctx.Request().Context(), commands.NewPopNotificationCommand())
	if err != nil {
		return failure(ctx, err, "Failed to pop notification")
	}

	return ctx.JSON(http.StatusOK, servers.Notification{Message: result.Message, Found: result.Found})
}

// GetPackage handles GET /api/v1/packages/{id}.
func (s *Server) GetPackage(ctx echo.Context, id int) error {
	query, err := queries.NewGetPackageQuery(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	view, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errorJSON(ctx, http.StatusNotFound, "Package not found")
	}
	if err != nil {
		return failure(ctx, err, "Failed to look package up")
	}

	return ctx.JSON(http.StatusOK, servers.Package{
		Id:          view.ID,
		Weight:      view.Weight,
		Destination: view.Destination,
		Description: &view.Description,
	})
}

func toOutcome(outcome engine.Outcome) servers.Outcome {
	return servers.Outcome{
		Applied:      outcome.Applied,
		Message:      outcome.Message,
		Notification: outcome.Notification,
	}
}

func toMissions(views []queries.MissionView) []servers.Mission {
	missions := make([]servers.Mission, len(views))
	for i, m := range views {
		missions[i] = servers.Mission{DroneId: m.DroneID, PackageId: m.ParcelID, Status: m.Status}
	}
	return missions
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

// failure maps cancellation to 503 and everything else to 500.
func failure(ctx echo.Context, err error, message string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errorJSON(ctx, http.StatusServiceUnavailable, message)
	}
	return errorJSON(ctx, http.StatusInternalServerError, message)
}
