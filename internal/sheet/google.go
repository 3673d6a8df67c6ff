package sheet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/theezequiel42/water-tracker/internal/currency"
)

// GoogleLoader reads a range of a private spreadsheet through the Sheets API
// using service-account credentials.
type GoogleLoader struct {
	svc           *gsheet.Service
	spreadsheetID string
	readRange     string
}

func NewGoogleLoader(ctx context.Context, spreadsheetID, readRange string, credentialsJSON []byte) (*GoogleLoader, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	if len(credentialsJSON) == 0 {
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &GoogleLoader{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

func (l *GoogleLoader) Load(ctx context.Context) (*Table, error) {
	resp, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, l.readRange).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("get values %s: %w", l.readRange, err)
	}

	return fromValues(resp.Values)
}

// fromValues converts the Sheets API value matrix. Numbers stay numeric so
// amounts need no locale parsing.
func fromValues(values [][]interface{}) (*Table, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}

	headers := make([]string, len(values[0]))
	for i, v := range values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(v))
	}

	rows := make([][]currency.Value, 0, len(values)-1)

	for _, raw := range values[1:] {
		row := make([]currency.Value, len(raw))
		empty := true

		for i, v := range raw {
			row[i] = cellValue(v)
			if !row[i].IsEmpty() {
				empty = false
			}
		}

		if empty {
			continue
		}

		rows = append(rows, row)
	}

	return NewTable(headers, rows), nil
}

func cellValue(v interface{}) currency.Value {
	switch x := v.(type) {
	case nil:
		return currency.Absent()
	case float64:
		return currency.Number(x)
	case int:
		return currency.Number(float64(x))
	case bool:
		return currency.Text(strconv.FormatBool(x))
	case string:
		if x == "" {
			return currency.Absent()
		}

		return currency.Text(x)
	default:
		return currency.Text(fmt.Sprint(x))
	}
}
