package ports

import (
	"context"

	"github.com/nileroots/kinship-core/internal/domain/entities"
)

// Vocabulary resolves relationship display labels. The vocabulary is
// external configuration data (multi-script side table), never logic:
// classifiers decide the kind, the vocabulary only words it.
type Vocabulary interface {
	// Lookup returns the display label for a (kind, sex, locale) triple, or
	// "" when the vocabulary has no entry. Fallback policy (sex-neutral row,
	// then English) belongs to the label service, not the store.
	Lookup(ctx context.Context, kind entities.Kind, sex entities.Sex, locale string) (string, error)

	// ListLabels returns all vocabulary rows for a locale; empty locale
	// means every locale.
	ListLabels(ctx context.Context, locale string) ([]entities.LabelEntry, error)

	// SaveLabel inserts or overwrites one vocabulary row.
	SaveLabel(ctx context.Context, entry *entities.LabelEntry) error
}
