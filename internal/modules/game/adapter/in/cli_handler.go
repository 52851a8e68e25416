package in

import (
	"context"

	"mindrng/internal/modules/game/dto"
	gamein "mindrng/internal/modules/game/port/in"
)

type CLIHandler struct {
	usecase gamein.Usecase
}

func NewCLIHandler(usecase gamein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Play(ctx context.Context, input dto.PlayInput) (dto.PlayOutput, error) {
	return h.usecase.Play(ctx, input)
}

func (h CLIHandler) Stats(ctx context.Context, topN int, special *int) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx, dto.StatsInput{TopN: topN, SpecialNumber: special})
}

func (h CLIHandler) History(ctx context.Context, last int) (dto.HistoryOutput, error) {
	return h.usecase.History(ctx, dto.HistoryInput{Last: last})
}

func (h CLIHandler) Distribution(ctx context.Context, bins int) (dto.DistributionOutput, error) {
	return h.usecase.Distribution(ctx, dto.DistributionInput{Bins: bins})
}

func (h CLIHandler) ExportCSV(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.ExportCSV(ctx, dto.ExportInput{Path: path})
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) GetSettings(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.GetSettings(ctx)
}

func (h CLIHandler) UpdateSettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, error) {
	return h.usecase.UpdateSettings(ctx, input)
}
