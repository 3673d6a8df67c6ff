package statement

import (
	"context"
	"errors"
	"fmt"

	"github.com/theezequiel42/water-tracker/internal/sheet"
)

var (
	ErrMissingNameColumn = errors.New("name column not found in sheet")
	ErrNoMonths          = errors.New("no monthly consumption and amount columns found in sheet")
	ErrUnknownMonth      = errors.New("unknown month")
	ErrNotFound          = errors.New("no data for this name and month")
)

// IsConfigError reports whether err means the sheet cannot be used at all.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingNameColumn) || errors.Is(err, ErrNoMonths)
}

//go:generate mockgen -source=service.go -destination=loader_mock.go -package=statement
type Loader interface {
	Load(ctx context.Context) (*sheet.Table, error)
}

type Service struct {
	loader Loader
	layout Layout
}

func NewService(loader Loader, layout Layout) *Service {
	return &Service{loader: loader, layout: layout}
}

// Load reads the sheet again and resolves its months.
func (s *Service) Load(ctx context.Context) (*Ledger, error) {
	table, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sheet: %w", err)
	}

	return NewLedger(table, s.layout)
}
