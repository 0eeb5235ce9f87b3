package queries

import (
	"context"

	"dronefleet/internal/core/application/engine"
)

// GetPackageQueryHandler looks a parcel up in the engine archive.
type GetPackageQueryHandler struct {
	reader EngineReader
}

// NewGetPackageQueryHandler creates the handler.
func NewGetPackageQueryHandler(reader EngineReader) GetPackageQueryHandler {
	return GetPackageQueryHandler{reader: reader}
}

// Handle executes the query.
// Returns *errs.ObjectNotFoundError if the running scenario has no such parcel.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	var response GetPackageQueryResponse
	err := h.reader.Run(ctx, func(e *engine.Engine) error {
		p, err := e.LookupPackage(query.ID())
		if err != nil {
			return err
		}

		response = GetPackageQueryResponse{
			ParcelView: ParcelView{
				ID:          p.ID().Value(),
				Weight:      p.Weight().Kilograms(),
				Destination: p.Destination(),
			},
			Description: p.Description(),
		}
		return nil
	})
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	return response, nil
}
