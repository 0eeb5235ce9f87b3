package queries

import (
	"errors"
	"fmt"

	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves one parcel of the running scenario by id.
//
// Example:
//
//	query, err := NewGetPackageQuery(42)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("Package not found.")
//	}
type GetPackageQuery struct {
	id int

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates the query.
// Returns a ValueIsInvalidError if id is not positive.
func NewGetPackageQuery(id int) (GetPackageQuery, error) {
	if id <= 0 {
		return GetPackageQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%d is not greater than 0", id),
		)
	}

	return GetPackageQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// ID returns the requested parcel id.
func (q GetPackageQuery) ID() int {
	return q.id
}

// GetPackageQueryResponse is the parcel read model.
type GetPackageQueryResponse struct {
	ParcelView
	Description string
}
