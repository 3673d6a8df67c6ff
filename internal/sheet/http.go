package sheet

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HTTPLoader downloads a sheet published as CSV, e.g. a Google Sheets
// "publish to the web" link ending in output=csv.
type HTTPLoader struct {
	url    string
	client *http.Client
}

func NewHTTPLoader(url string, timeout time.Duration) *HTTPLoader {
	return &HTTPLoader{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (l *HTTPLoader) Load(ctx context.Context) (*Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "text/csv")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for sheet url", resp.StatusCode)
	}

	t, err := ReadCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	return t, nil
}
