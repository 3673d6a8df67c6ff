package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theezequiel42/water-tracker/internal/config"
	"github.com/theezequiel42/water-tracker/internal/sheet"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.App.Port)
		assert.Equal(t, 30*time.Second, cfg.Sheet.FetchTimeout)
		assert.Equal(t, "A:ZZ", cfg.Google.Range)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("From Environment", func(t *testing.T) {
		t.Setenv("SHEET_URL", "https://example.com/pub?output=csv")
		t.Setenv("PORT", "9090")
		t.Setenv("FETCH_TIMEOUT", "5s")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "https://example.com/pub?output=csv", cfg.Sheet.URL)
		assert.Equal(t, 9090, cfg.App.Port)
		assert.Equal(t, 5*time.Second, cfg.Sheet.FetchTimeout)
	})

	t.Run("Invalid Duration", func(t *testing.T) {
		t.Setenv("FETCH_TIMEOUT", "soon")

		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestConfig_SheetOptions(t *testing.T) {
	creds := filepath.Join(t.TempDir(), "sa.json")
	require.NoError(t, os.WriteFile(creds, []byte(`{"type":"service_account"}`), 0o600))

	t.Setenv("GOOGLE_SPREADSHEET_ID", "abc123")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", creds)

	cfg, err := config.Load()
	require.NoError(t, err)

	opts, err := cfg.SheetOptions()
	require.NoError(t, err)

	src, err := opts.Resolve()
	require.NoError(t, err)
	assert.Equal(t, sheet.SourceGoogle, src)
	assert.JSONEq(t, `{"type":"service_account"}`, string(opts.CredentialsJSON))

	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", `{"type":"inline"}`)

	cfg, err = config.Load()
	require.NoError(t, err)

	opts, err = cfg.SheetOptions()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"inline"}`, string(opts.CredentialsJSON))
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

		return p
	}

	type testCase struct {
		name    string
		path    string
		want    func() statement.Layout
		wantErr bool
	}

	tests := []testCase{
		{
			name: "Empty Path Is The Default",
			path: "",
			want: statement.DefaultLayout,
		},
		{
			name: "Partial File Keeps Defaults",
			path: write("partial.yaml", "name_column: Morador\n"),
			want: func() statement.Layout {
				l := statement.DefaultLayout()
				l.NameColumn = "Morador"

				return l
			},
		},
		{
			name: "Markers Override",
			path: write("markers.yaml", "consumption_marker: Leitura\namount_marker: Total\noverdue_qualifier: pendente\nconsumption_unit: kWh\n"),
			want: func() statement.Layout {
				l := statement.DefaultLayout()
				l.ConsumptionUnit = "kWh"
				l.Markers.Consumption = "Leitura"
				l.Markers.Amount = "Total"
				l.Markers.Overdue = "pendente"

				return l
			},
		},
		{
			name:    "Invalid Layout",
			path:    write("invalid.yaml", "amount_marker: Consumo\n"),
			wantErr: true,
		},
		{
			name:    "Malformed YAML",
			path:    write("broken.yaml", "name_column: [\n"),
			wantErr: true,
		},
		{
			name:    "Missing File",
			path:    filepath.Join(dir, "nope.yaml"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.LoadLayout(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}
