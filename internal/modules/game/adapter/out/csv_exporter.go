package out

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"mindrng/internal/modules/game/domain"
	gameout "mindrng/internal/modules/game/port/out"
)

var csvHeader = []string{"prediction", "generated", "timestamp", "game_mode", "min_val", "max_val", "algorithm"}

// FileCSVExporter writes one row per record. An empty history produces a
// header-only file.
type FileCSVExporter struct{}

func NewFileCSVExporter() gameout.CSVExporter {
	return FileCSVExporter{}
}

func (FileCSVExporter) Export(_ context.Context, records []domain.Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		prediction := ""
		if r.Prediction != nil {
			prediction = strconv.Itoa(*r.Prediction)
		}
		row := []string{
			prediction,
			strconv.Itoa(r.Generated),
			r.Timestamp,
			string(r.GameMode),
			strconv.Itoa(r.MinVal),
			strconv.Itoa(r.MaxVal),
			string(r.Algorithm),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
