package scenariorepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dronefleet/internal/adapters/out/scenariofile"
	"dronefleet/internal/core/ports"
	"dronefleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormScenarioRepository implements ports.ScenarioSource on top of GORM. The
// scenario name given to Read is the stored scenario name.
type GormScenarioRepository struct {
	db *gorm.DB
}

var _ ports.ScenarioSource = (*GormScenarioRepository)(nil)

// NewGormScenarioRepository creates a repository. db must not be nil.
func NewGormScenarioRepository(db *gorm.DB) (*GormScenarioRepository, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	return &GormScenarioRepository{db: db}, nil
}

// Save stores lines under name, replacing any scenario with the same name.
// The lines are not parsed; Read reports malformed lines.
func (r *GormScenarioRepository) Save(ctx context.Context, name string, lines []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	dto := toDTO(name, lines)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing ScenarioDTO
		err := tx.Where("name = ?", name).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return err
		default:
			if err = tx.Where("scenario_id = ?", existing.ID).Delete(&ScenarioLineDTO{}).Error; err != nil {
				return err
			}
			if err = tx.Delete(&existing).Error; err != nil {
				return err
			}
		}

		return tx.Create(&dto).Error
	})
}

// Read loads the named scenario and parses it line by line.
//
// Returns:
//   - ports.ErrSourceUnavailable wrapping *errs.ObjectNotFoundError if no scenario has this name
//   - ports.ErrSourceUnavailable wrapping the driver error if the query fails
//   - ports.ErrMalformedLine if a stored line cannot be parsed
func (r *GormScenarioRepository) Read(ctx context.Context, name string) ([]ports.ScenarioRecord, error) {
	var dto ScenarioDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("name = ?", name).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %w", ports.ErrSourceUnavailable, errs.NewObjectNotFoundError("scenario", name))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrSourceUnavailable, err)
	}

	records := make([]ports.ScenarioRecord, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		record, ok, err := scenariofile.ParseLine(line.Position, line.Content)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", name, err)
		}
		if ok {
			records = append(records, record)
		}
	}

	return records, nil
}

// List returns the stored scenario names in alphabetical order.
func (r *GormScenarioRepository) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	if err := r.db.WithContext(ctx).Model(&ScenarioDTO{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
