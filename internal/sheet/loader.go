package sheet

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Source selects where the table is read from.
type Source string

const (
	SourceURL    Source = "url"
	SourceFile   Source = "file"
	SourceGoogle Source = "google"
)

var ErrNoSource = errors.New("no sheet source configured")

type Loader interface {
	Load(ctx context.Context) (*Table, error)
}

// Options carries the settings of every source; only the fields of the
// chosen Source are used.
type Options struct {
	Source  Source
	URL     string
	Path    string
	Timeout time.Duration

	SpreadsheetID   string
	Range           string
	CredentialsJSON []byte
}

// Resolve returns the explicit source, or infers it from the first
// configured location: URL, then file, then spreadsheet.
func (o Options) Resolve() (Source, error) {
	if o.Source != "" {
		switch o.Source {
		case SourceURL, SourceFile, SourceGoogle:
			return o.Source, nil
		}

		return "", fmt.Errorf("unknown sheet source %q", o.Source)
	}

	switch {
	case o.URL != "":
		return SourceURL, nil
	case o.Path != "":
		return SourceFile, nil
	case o.SpreadsheetID != "":
		return SourceGoogle, nil
	}

	return "", ErrNoSource
}

func NewLoader(ctx context.Context, opts Options) (Loader, error) {
	src, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	switch src {
	case SourceURL:
		if opts.URL == "" {
			return nil, fmt.Errorf("%w: sheet url is empty", ErrNoSource)
		}

		return NewHTTPLoader(opts.URL, opts.Timeout), nil
	case SourceFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("%w: sheet path is empty", ErrNoSource)
		}

		return NewFileLoader(opts.Path), nil
	default:
		return NewGoogleLoader(ctx, opts.SpreadsheetID, opts.Range, opts.CredentialsJSON)
	}
}
