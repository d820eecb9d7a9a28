// Package parsers provides parsers for importing family records from
// external files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// Record type discriminators.
const (
	RecordPerson = "person"
	RecordParent = "parent"
	RecordUnion  = "union"
)

// RawRecord is one family record parsed from an external source before
// validation. Person records carry Name/Sex/Deceased; parent records carry
// Parent/Child/Type; union records carry Members. People are referenced by
// name; resolution to ids happens at import time.
type RawRecord struct {
	Record   string   `json:"record"`
	Name     string   `json:"name,omitempty"`
	Sex      string   `json:"sex,omitempty"`
	Deceased bool     `json:"deceased,omitempty"`
	Parent   string   `json:"parent,omitempty"`
	Child    string   `json:"child,omitempty"`
	Type     string   `json:"type,omitempty"`
	Members  []string `json:"members,omitempty"`
	LineNum  int      `json:"-"` // Line number in source file (set by parser)
}

// Parser defines the interface for parsing family records from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawRecord, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
