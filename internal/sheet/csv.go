package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	enc "github.com/theezequiel42/water-tracker/internal/encoding"
)

// ReadCSV reads a CSV export whose first record is the header row. The
// encoding is detected and the delimiter is "," unless the header line has
// more ";" than ",".
func ReadCSV(r io.Reader) (*Table, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return fromStrings(records)
}

func sniffDelimiter(br *bufio.Reader) rune {
	buf, _ := br.Peek(br.Size())

	line, _, _ := bytes.Cut(buf, []byte("\n"))
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}

	return ','
}
