package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"mindrng/internal/modules/game/domain"
	"mindrng/internal/modules/game/dto"
	gamein "mindrng/internal/modules/game/port/in"
	gameout "mindrng/internal/modules/game/port/out"
	"mindrng/internal/modules/game/service"
	"mindrng/internal/platform/clock"
)

// Interactor orchestrates trials over the durable history. Persistence
// trouble never fails a read: an unreadable history file degrades to an
// empty history with a warning carried in the output, so the tool stays
// usable on corrupt state.
type Interactor struct {
	svc       *service.GameService
	store     gameout.HistoryStore
	exporter  gameout.CSVExporter
	projector gameout.HistoryProjector
	settings  gameout.SettingsStore
	clock     clock.Clock
	exportDir string
}

func NewInteractor(
	svc *service.GameService,
	store gameout.HistoryStore,
	exporter gameout.CSVExporter,
	projector gameout.HistoryProjector,
	settings gameout.SettingsStore,
	clk clock.Clock,
	exportDir string,
) gamein.Usecase {
	return &Interactor{
		svc:       svc,
		store:     store,
		exporter:  exporter,
		projector: projector,
		settings:  settings,
		clock:     clk,
		exportDir: exportDir,
	}
}

func (i *Interactor) loadHistory(ctx context.Context) ([]domain.Record, string) {
	records, err := i.store.Load(ctx)
	if err != nil {
		return nil, fmt.Sprintf("history unreadable, continuing with empty history: %v", err)
	}
	return records, ""
}

func (i *Interactor) Play(ctx context.Context, input dto.PlayInput) (dto.PlayOutput, error) {
	settings, err := i.settings.Load(ctx)
	if err != nil {
		return dto.PlayOutput{}, err
	}
	minVal, maxVal := settings.MinVal, settings.MaxVal
	if input.MinVal != nil {
		minVal = *input.MinVal
	}
	if input.MaxVal != nil {
		maxVal = *input.MaxVal
	}
	mode := settings.GameMode
	if input.GameMode != "" {
		mode = domain.GameMode(input.GameMode)
	}
	algorithm := settings.Algorithm
	if input.Algorithm != "" {
		algorithm = domain.Algorithm(input.Algorithm)
	}

	record, err := i.svc.PlayRound(ctx, input.Prediction, minVal, maxVal, mode, algorithm)
	if err != nil {
		return dto.PlayOutput{}, err
	}

	records, warning := i.loadHistory(ctx)
	records = append(records, record)
	if err := i.store.Save(ctx, records); err != nil {
		warning = joinWarnings(warning, fmt.Sprintf("history not saved: %v", err))
	} else if err := i.projector.Rebuild(ctx, records); err != nil {
		warning = joinWarnings(warning, fmt.Sprintf("history index not updated: %v", err))
	}

	out := dto.PlayOutput{
		Prediction:    record.Prediction,
		Generated:     record.Generated,
		Timestamp:     record.Timestamp,
		GameMode:      string(record.GameMode),
		Algorithm:     string(record.Algorithm),
		MinVal:        record.MinVal,
		MaxVal:        record.MaxVal,
		Hit:           record.IsHit(),
		CurrentStreak: domain.NewAnalytics(records).CurrentStreak(),
		Warning:       warning,
	}
	if d, ok := record.Distance(); ok {
		out.Distance = &d
	}
	return out, nil
}

func (i *Interactor) Stats(ctx context.Context, input dto.StatsInput) (dto.StatsOutput, error) {
	settings, err := i.settings.Load(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	records, warning := i.loadHistory(ctx)
	analytics := domain.NewAnalytics(records)

	topN := input.TopN
	if topN <= 0 {
		topN = settings.TopN
	}
	special := settings.SpecialNumber
	if input.SpecialNumber != nil {
		special = *input.SpecialNumber
	}

	out := dto.StatsOutput{
		TotalAttempts:    analytics.TotalAttempts(),
		TotalPredictions: analytics.TotalPredictions(),
		TotalHits:        analytics.TotalHits(),
		HitRate:          analytics.HitRate(),
		CurrentStreak:    analytics.CurrentStreak(),
		LongestStreak:    analytics.LongestStreak(),
		ColdNumbers:      analytics.ColdNumbers(topN, settings.MinVal, settings.MaxVal),
		SpecialNumber:    special,
		SpecialCount:     analytics.SpecialNumberCount(special),
		Warning:          warning,
	}
	if avg, ok := analytics.AverageDistance(); ok {
		out.AverageDistance = &avg
	}
	for _, nc := range analytics.HotNumbers(topN) {
		out.HotNumbers = append(out.HotNumbers, dto.NumberCount{Value: nc.Value, Count: nc.Count})
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) (dto.HistoryOutput, error) {
	limit := input.Last
	if limit <= 0 {
		limit = 10
	}
	records, warning := i.loadHistory(ctx)

	if n, err := i.projector.Count(ctx); err == nil && n == len(records) {
		if recent, err := i.projector.Recent(ctx, limit); err == nil {
			return dto.HistoryOutput{Records: toRecordOutputs(recent), Warning: warning}, nil
		}
	}

	// Projection stale or unreadable: serve straight from the file.
	recent := make([]domain.Record, 0, limit)
	for j := len(records) - 1; j >= 0 && len(recent) < limit; j-- {
		recent = append(recent, records[j])
	}
	return dto.HistoryOutput{Records: toRecordOutputs(recent), Warning: warning}, nil
}

func (i *Interactor) Distribution(ctx context.Context, input dto.DistributionInput) (dto.DistributionOutput, error) {
	settings, err := i.settings.Load(ctx)
	if err != nil {
		return dto.DistributionOutput{}, err
	}
	bins := input.Bins
	if bins <= 0 {
		bins = settings.Bins
	}
	records, warning := i.loadHistory(ctx)
	labels, counts := domain.NewAnalytics(records).Distribution(bins)
	return dto.DistributionOutput{Labels: labels, Counts: counts, Warning: warning}, nil
}

func (i *Interactor) ExportCSV(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	records, warning := i.loadHistory(ctx)
	path := input.Path
	if path == "" {
		path = filepath.Join(i.exportDir, fmt.Sprintf("sessions_%s.csv", i.clock.Now().Format("20060102_150405")))
	}
	if err := i.exporter.Export(ctx, records, path); err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path, Records: len(records), Warning: warning}, nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	if err := i.store.Save(ctx, nil); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if err := i.projector.Rebuild(ctx, nil); err != nil {
		return fmt.Errorf("clear history index: %w", err)
	}
	return nil
}

// Reindex rebuilds the read model from the file. Unlike the read paths it
// surfaces a corrupt file instead of silently emptying the index.
func (i *Interactor) Reindex(ctx context.Context) error {
	records, err := i.store.Load(ctx)
	if err != nil {
		return err
	}
	return i.projector.Rebuild(ctx, records)
}

func (i *Interactor) GetSettings(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.settings.Load(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toSettingsOutput(settings), nil
}

func (i *Interactor) UpdateSettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, error) {
	settings, err := i.settings.Load(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	if input.MinVal != nil {
		settings.MinVal = *input.MinVal
	}
	if input.MaxVal != nil {
		settings.MaxVal = *input.MaxVal
	}
	if input.GameMode != nil {
		settings.GameMode = domain.GameMode(*input.GameMode)
	}
	if input.Algorithm != nil {
		settings.Algorithm = domain.Algorithm(*input.Algorithm)
	}
	if input.Bins != nil {
		settings.Bins = *input.Bins
	}
	if input.TopN != nil {
		settings.TopN = *input.TopN
	}
	if input.SpecialNumber != nil {
		settings.SpecialNumber = *input.SpecialNumber
	}
	if err := settings.Validate(); err != nil {
		return dto.SettingsOutput{}, err
	}
	if err := i.settings.Save(ctx, settings); err != nil {
		return dto.SettingsOutput{}, err
	}
	return toSettingsOutput(settings), nil
}

func toSettingsOutput(s domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{
		MinVal:        s.MinVal,
		MaxVal:        s.MaxVal,
		GameMode:      string(s.GameMode),
		Algorithm:     string(s.Algorithm),
		Bins:          s.Bins,
		TopN:          s.TopN,
		SpecialNumber: s.SpecialNumber,
	}
}

func toRecordOutputs(records []domain.Record) []dto.RecordOutput {
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		item := dto.RecordOutput{
			Prediction: r.Prediction,
			Generated:  r.Generated,
			Timestamp:  r.Timestamp,
			GameMode:   string(r.GameMode),
			Algorithm:  string(r.Algorithm),
			MinVal:     r.MinVal,
			MaxVal:     r.MaxVal,
			Hit:        r.IsHit(),
		}
		if d, ok := r.Distance(); ok {
			item.Distance = &d
		}
		out = append(out, item)
	}
	return out
}

func joinWarnings(parts ...string) string {
	kept := []string{}
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "; ")
}
