package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/theezequiel42/water-tracker/internal/sheet"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Consulta de Consumo"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Sheet struct {
		Source       string        `envconfig:"SHEET_SOURCE"`
		URL          string        `envconfig:"SHEET_URL"`
		Path         string        `envconfig:"SHEET_PATH"`
		FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	}

	Google struct {
		SpreadsheetID      string `envconfig:"GOOGLE_SPREADSHEET_ID"`
		Range              string `envconfig:"GOOGLE_SHEET_RANGE" default:"A:ZZ"`
		ServiceAccountFile string `envconfig:"GOOGLE_SERVICE_ACCOUNT_FILE"`
		ServiceAccountJSON string `envconfig:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
		File  string `envconfig:"LOG_FILE"`
	}

	LayoutFile string `envconfig:"LAYOUT_FILE"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// SheetOptions builds the loader settings. Service-account credentials are
// read from GOOGLE_SERVICE_ACCOUNT_JSON, or from the file it points to
// otherwise.
func (c *Config) SheetOptions() (sheet.Options, error) {
	opts := sheet.Options{
		Source:        sheet.Source(c.Sheet.Source),
		URL:           c.Sheet.URL,
		Path:          c.Sheet.Path,
		Timeout:       c.Sheet.FetchTimeout,
		SpreadsheetID: c.Google.SpreadsheetID,
		Range:         c.Google.Range,
	}

	switch {
	case c.Google.ServiceAccountJSON != "":
		opts.CredentialsJSON = []byte(c.Google.ServiceAccountJSON)
	case c.Google.ServiceAccountFile != "":
		b, err := os.ReadFile(c.Google.ServiceAccountFile)
		if err != nil {
			return sheet.Options{}, fmt.Errorf("reading service account file: %w", err)
		}

		opts.CredentialsJSON = b
	}

	return opts, nil
}

// Layout returns the sheet layout from LAYOUT_FILE, or the default one.
func (c *Config) Layout() (statement.Layout, error) {
	return LoadLayout(c.LayoutFile)
}

// LoadLayout reads a YAML layout file over the default layout, so a file
// only needs the keys it changes. An empty path yields the default.
func LoadLayout(path string) (statement.Layout, error) {
	layout := statement.DefaultLayout()
	if path == "" {
		return layout, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return statement.Layout{}, fmt.Errorf("reading layout file: %w", err)
	}

	if err := yaml.Unmarshal(b, &layout); err != nil {
		return statement.Layout{}, fmt.Errorf("parsing layout file: %w", err)
	}

	if err := layout.Validate(); err != nil {
		return statement.Layout{}, errors.Join(fmt.Errorf("invalid layout file %s", path), err)
	}

	return layout, nil
}
