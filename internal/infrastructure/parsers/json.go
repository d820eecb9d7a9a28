package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses family records from JSON format.
type JSONParser struct{}

// Parse reads a JSON array of records from the reader.
func (p *JSONParser) Parse(r io.Reader) ([]RawRecord, error) {
	var records []RawRecord

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set line numbers (array index + 1, 1-indexed)
	for i := range records {
		records[i].LineNum = i + 1
	}

	return records, nil
}
