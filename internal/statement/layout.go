package statement

import (
	"errors"
	"fmt"

	"github.com/theezequiel42/water-tracker/internal/month"
)

// Layout describes how a sheet is organised: the identity column and the
// header markers of the monthly columns.
type Layout struct {
	NameColumn      string        `yaml:"name_column"`
	ConsumptionUnit string        `yaml:"consumption_unit"`
	Markers         month.Markers `yaml:",inline"`
}

func DefaultLayout() Layout {
	return Layout{
		NameColumn:      "Nome",
		ConsumptionUnit: "m³",
		Markers:         month.DefaultMarkers,
	}
}

func (l Layout) Validate() error {
	if l.NameColumn == "" {
		return errors.New("layout: name column is empty")
	}

	if l.ConsumptionUnit == "" {
		return errors.New("layout: consumption unit is empty")
	}

	if err := l.Markers.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	return nil
}
