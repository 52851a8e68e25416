package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mindrng/internal/modules/game/adapter/out"
	"mindrng/internal/modules/game/domain"
	apperrors "mindrng/internal/platform/errors"
)

func intp(v int) *int { return &v }

func sampleRecords() []domain.Record {
	stamp := time.Date(2026, 3, 1, 12, 47, 0, 0, time.UTC).Format(time.RFC3339)
	return []domain.Record{
		{Prediction: intp(5), Generated: 5, Timestamp: stamp, GameMode: domain.GameModeExactMatch, MinVal: 0, MaxVal: 99, Algorithm: domain.AlgorithmStandard},
		{Prediction: nil, Generated: 47, Timestamp: stamp, GameMode: domain.GameModeHighLow, MinVal: 0, MaxVal: 99, Algorithm: domain.AlgorithmSecrets},
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()
	store := out.NewFileHistoryStore(filepath.Join(t.TempDir(), "sessions.json"))
	records, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d records", len(records))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "sessions.json")
	store := out.NewFileHistoryStore(path)

	saved := sampleRecords()
	if err := store.Save(context.Background(), saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file must not survive a save")
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != len(saved) {
		t.Fatalf("expected %d records, got %d", len(saved), len(loaded))
	}
	for i := range saved {
		got, want := loaded[i], saved[i]
		if (got.Prediction == nil) != (want.Prediction == nil) {
			t.Fatalf("record %d: prediction presence mismatch", i)
		}
		if got.Prediction != nil && *got.Prediction != *want.Prediction {
			t.Fatalf("record %d: prediction %d, want %d", i, *got.Prediction, *want.Prediction)
		}
		if got.Generated != want.Generated || got.Timestamp != want.Timestamp ||
			got.GameMode != want.GameMode || got.MinVal != want.MinVal ||
			got.MaxVal != want.MaxVal || got.Algorithm != want.Algorithm {
			t.Fatalf("record %d mismatch: got %+v want %+v", i, got, want)
		}
	}
}

func TestSaveEmptyHistoryOverwrites(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sessions.json")
	store := out.NewFileHistoryStore(path)

	if err := store.Save(context.Background(), sampleRecords()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(context.Background(), nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	records, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected cleared history, got %d records", len(records))
	}
}

func TestLoadCorruptFileFailsWhole(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sessions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	store := out.NewFileHistoryStore(path)
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("corrupt file should be malformed, got %v", err)
	}
}

func TestLoadRejectsRecordMissingRequiredField(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sessions.json")
	payload := `[{"prediction": 5, "timestamp": "2026-03-01T12:47:00Z", "game_mode": "exact_match", "min_val": 0, "max_val": 99, "algorithm": "standard"}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	store := out.NewFileHistoryStore(path)
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("record without generated should be malformed, got %v", err)
	}
}

func TestLoadRejectsOutOfRangeRecord(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sessions.json")
	payload := `[{"prediction": null, "generated": 500, "timestamp": "2026-03-01T12:47:00Z", "game_mode": "exact_match", "min_val": 0, "max_val": 99, "algorithm": "standard"}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	store := out.NewFileHistoryStore(path)
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("out-of-range generated should be malformed, got %v", err)
	}
}
