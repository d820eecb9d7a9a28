package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/ports"
)

// LabelHandler handles relationship vocabulary management.
type LabelHandler struct {
	vocab ports.Vocabulary
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(vocab ports.Vocabulary) *LabelHandler {
	return &LabelHandler{vocab: vocab}
}

// HandleList returns vocabulary rows, optionally restricted to one locale.
func (h *LabelHandler) HandleList(ctx context.Context, locale string) ([]entities.LabelEntry, error) {
	return h.vocab.ListLabels(ctx, locale)
}

// HandleSet overrides one vocabulary row.
func (h *LabelHandler) HandleSet(ctx context.Context, kind, sex, locale, display string) error {
	if display == "" {
		return errors.New("display label is required")
	}
	if locale == "" {
		return errors.New("locale is required")
	}
	entry := &entities.LabelEntry{
		Kind:      entities.Kind(kind),
		Sex:       entities.ParseSex(sex),
		Locale:    locale,
		Display:   display,
		CreatedAt: time.Now(),
	}
	return h.vocab.SaveLabel(ctx, entry)
}
