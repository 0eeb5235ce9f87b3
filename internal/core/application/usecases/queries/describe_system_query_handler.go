package queries

import (
	"context"

	"dronefleet/internal/core/application/engine"
	"dronefleet/internal/core/domain/model/mission"
)

// DescribeSystemQueryHandler builds the system snapshot from the engine.
type DescribeSystemQueryHandler struct {
	reader EngineReader
}

// NewDescribeSystemQueryHandler creates the handler.
func NewDescribeSystemQueryHandler(reader EngineReader) DescribeSystemQueryHandler {
	return DescribeSystemQueryHandler{reader: reader}
}

// Handle executes the query.
func (h DescribeSystemQueryHandler) Handle(
	ctx context.Context,
	query DescribeSystemQuery,
) (DescribeSystemQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DescribeSystemQueryResponse{}, err
	}

	var response DescribeSystemQueryResponse
	err := h.reader.Run(ctx, func(e *engine.Engine) error {
		response.Generation = e.Generation().String()
		response.Text = e.DescribeSystem()

		response.Drones = make([]DroneView, 0)
		for _, d := range e.Drones() {
			view := DroneView{
				ID:         d.ID().Value(),
				Model:      d.Model(),
				MaxPayload: d.MaxPayload().Kilograms(),
				Status:     d.Status().String(),
			}
			if cargo := d.Cargo(); cargo != nil {
				view.ParcelID = cargo.ParcelID.Value()
			}
			response.Drones = append(response.Drones, view)
		}

		response.Pending = make([]ParcelView, 0)
		for _, p := range e.Pending() {
			response.Pending = append(response.Pending, ParcelView{
				ID:          p.ID().Value(),
				Weight:      p.Weight().Kilograms(),
				Destination: p.Destination(),
			})
		}

		response.ActiveMissions = missionViews(e.ActiveMissions())
		response.CompletedMissions = missionViews(e.CompletedMissions())
		return nil
	})
	if err != nil {
		return DescribeSystemQueryResponse{}, err
	}

	return response, nil
}

func missionViews(missions []*mission.Mission) []MissionView {
	views := make([]MissionView, 0, len(missions))
	for _, m := range missions {
		views = append(views, MissionView{
			DroneID:  m.DroneID().Value(),
			ParcelID: m.ParcelID().Value(),
			Status:   m.Status().String(),
		})
	}
	return views
}
