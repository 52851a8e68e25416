package in

import (
	"context"

	"mindrng/internal/modules/game/dto"
)

type Usecase interface {
	Play(ctx context.Context, input dto.PlayInput) (dto.PlayOutput, error)
	Stats(ctx context.Context, input dto.StatsInput) (dto.StatsOutput, error)
	History(ctx context.Context, input dto.HistoryInput) (dto.HistoryOutput, error)
	Distribution(ctx context.Context, input dto.DistributionInput) (dto.DistributionOutput, error)
	ExportCSV(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Clear(ctx context.Context) error
	Reindex(ctx context.Context) error
	GetSettings(ctx context.Context) (dto.SettingsOutput, error)
	UpdateSettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, error)
}
