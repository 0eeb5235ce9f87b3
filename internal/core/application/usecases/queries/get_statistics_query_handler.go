package queries

import (
	"context"

	"dronefleet/internal/core/application/engine"
)

// GetStatisticsQueryHandler reads engine.Statistics.
type GetStatisticsQueryHandler struct {
	reader EngineReader
}

// NewGetStatisticsQueryHandler creates the handler.
func NewGetStatisticsQueryHandler(reader EngineReader) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{reader: reader}
}

// Handle executes the query.
func (h GetStatisticsQueryHandler) Handle(ctx context.Context, query GetStatisticsQuery) (engine.Statistics, error) {
	if err := query.Validate(); err != nil {
		return engine.Statistics{}, err
	}

	var stats engine.Statistics
	err := h.reader.Run(ctx, func(e *engine.Engine) error {
		stats = e.Statistics()
		return nil
	})
	if err != nil {
		return engine.Statistics{}, err
	}

	return stats, nil
}
