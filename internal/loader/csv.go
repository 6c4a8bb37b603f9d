package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errNoColumns = errors.New("no columns to parse from file")

type csvParser struct{}

func (csvParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

// Parse decodes data under each of Encodings in turn and returns the first
// table that parses cleanly. When none do, the first decodable text is parsed
// again with lenient quoting, and the raw bytes only as a last resort.
func (csvParser) Parse(name string, data []byte) (*Table, error) {
	delim := sniffDelimiter(name)
	var decoded []byte
	for _, enc := range Encodings {
		text, err := enc.Decode(data)
		if err != nil {
			continue
		}
		if t, err := parseCSV(name, text, delim, false); err == nil {
			return t, nil
		}
		if decoded == nil {
			decoded = text
		}
	}
	if decoded == nil {
		decoded = data
	}
	return parseCSV(name, decoded, delim, true)
}

func sniffDelimiter(name string) rune {
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		return '\t'
	}
	return ','
}

func parseCSV(name string, data []byte, delim rune, lazy bool) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.Comma = delim
	r.LazyQuotes = lazy

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoColumns
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) == 0 {
		return nil, errNoColumns
	}
	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}
	return NewTable(name, header, rows), nil
}
