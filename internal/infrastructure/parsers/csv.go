package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVParser parses family records from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed records.
// Expected columns: record, name, sex, deceased, parent, child, type, members.
// The members column is a semicolon-separated list of names.
func (p *CSVParser) Parse(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	if _, ok := colIndex["record"]; !ok {
		return nil, fmt.Errorf("missing required column: record")
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawRecords.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawRecord, error) {
	var records []RawRecord

	line := 1 // Header was line 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		line++

		field := func(name string) string {
			idx, ok := colIndex[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		record := RawRecord{
			Record:  field("record"),
			Name:    field("name"),
			Sex:     field("sex"),
			Parent:  field("parent"),
			Child:   field("child"),
			Type:    field("type"),
			LineNum: line,
		}
		if v := field("deceased"); v != "" {
			deceased, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid deceased value %q", line, v)
			}
			record.Deceased = deceased
		}
		if v := field("members"); v != "" {
			for _, m := range strings.Split(v, ";") {
				if m = strings.TrimSpace(m); m != "" {
					record.Members = append(record.Members, m)
				}
			}
		}

		records = append(records, record)
	}

	return records, nil
}
