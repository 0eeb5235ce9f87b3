// Package scenariorepo stores scenarios in PostgreSQL as raw descriptor lines and
// serves them back as a ports.ScenarioSource.
package scenariorepo

import (
	"github.com/google/uuid"
)

// ScenarioDTO is a named scenario.
type ScenarioDTO struct {
	ID    uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name  string            `gorm:"type:varchar(255);not null;uniqueIndex"`
	Lines []ScenarioLineDTO `gorm:"foreignKey:ScenarioID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "scenario_dtos".
func (ScenarioDTO) TableName() string {
	return "scenarios"
}

// ScenarioLineDTO is one line of a scenario, comments and blanks included, so a
// stored scenario reads back exactly like the file it was imported from.
type ScenarioLineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScenarioID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Position is the 1-based line number.
	Position int    `gorm:"type:int;not null"`
	Content  string `gorm:"type:text;not null"`
}

// TableName overrides GORM's default "scenario_line_dtos".
func (ScenarioLineDTO) TableName() string {
	return "scenario_lines"
}

func toDTO(name string, lines []string) ScenarioDTO {
	dto := ScenarioDTO{
		ID:    uuid.New(),
		Name:  name,
		Lines: make([]ScenarioLineDTO, 0, len(lines)),
	}
	for i, content := range lines {
		dto.Lines = append(dto.Lines, ScenarioLineDTO{
			ID:         uuid.New(),
			ScenarioID: dto.ID,
			Position:   i + 1,
			Content:    content,
		})
	}
	return dto
}
