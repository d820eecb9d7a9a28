package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/nileroots/kinship-core/internal/domain/services"
	"github.com/nileroots/kinship-core/internal/infrastructure/parsers"
)

// ImportHandler handles loading family records from external files.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// HandleImport parses the reader in the given format ("json" or "csv") and
// loads the records into the tree.
func (h *ImportHandler) HandleImport(ctx context.Context, treeID, format string, r io.Reader) (*services.ImportResult, error) {
	parser := parsers.ForFormat(format)
	if parser == nil {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	records, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}
	if len(records) == 0 {
		return &services.ImportResult{}, nil
	}

	return h.service.Import(ctx, treeID, records)
}
