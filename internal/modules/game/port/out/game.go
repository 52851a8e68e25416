package out

import (
	"context"

	"mindrng/internal/modules/game/domain"
)

// HistoryStore owns the durable form of the ordered trial history.
// Save is a whole-file overwrite; clearing is saving an empty history.
type HistoryStore interface {
	Load(ctx context.Context) ([]domain.Record, error)
	Save(ctx context.Context, records []domain.Record) error
}

type CSVExporter interface {
	Export(ctx context.Context, records []domain.Record, path string) error
}

// HistoryProjector is a rebuildable read model of the history. The store's
// file stays the source of truth.
type HistoryProjector interface {
	Rebuild(ctx context.Context, records []domain.Record) error
	Recent(ctx context.Context, limit int) ([]domain.Record, error)
	Count(ctx context.Context) (int, error)
}

type NumberSource interface {
	Generate(algorithm domain.Algorithm, minVal, maxVal int) (int, error)
}

type SettingsStore interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}
