package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mindrng/internal/modules/game/domain"
	gameout "mindrng/internal/modules/game/port/out"
	apperrors "mindrng/internal/platform/errors"
)

// FileHistoryStore keeps the full trial history as one JSON array. A load
// never returns a partial history: any malformed record fails the whole read.
type FileHistoryStore struct {
	path string
}

func NewFileHistoryStore(path string) gameout.HistoryStore {
	return &FileHistoryStore{path: path}
}

// recordPayload mirrors the durable field set with pointers so that absent
// required fields are distinguishable from zero values.
type recordPayload struct {
	Prediction *int    `json:"prediction"`
	Generated  *int    `json:"generated"`
	Timestamp  *string `json:"timestamp"`
	GameMode   *string `json:"game_mode"`
	MinVal     *int    `json:"min_val"`
	MaxVal     *int    `json:"max_val"`
	Algorithm  *string `json:"algorithm"`
}

func (p recordPayload) toRecord() (domain.Record, error) {
	if p.Generated == nil || p.Timestamp == nil || p.GameMode == nil || p.MinVal == nil || p.MaxVal == nil || p.Algorithm == nil {
		return domain.Record{}, fmt.Errorf("%w: missing required field", apperrors.ErrMalformedRecord)
	}
	record := domain.Record{
		Prediction: p.Prediction,
		Generated:  *p.Generated,
		Timestamp:  *p.Timestamp,
		GameMode:   domain.GameMode(*p.GameMode),
		MinVal:     *p.MinVal,
		MaxVal:     *p.MaxVal,
		Algorithm:  domain.Algorithm(*p.Algorithm),
	}
	if err := record.Validate(); err != nil {
		return domain.Record{}, err
	}
	return record, nil
}

func (s *FileHistoryStore) Load(_ context.Context) ([]domain.Record, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	var stored []recordPayload
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("%w: decode history: %v", apperrors.ErrMalformedRecord, err)
	}
	records := make([]domain.Record, 0, len(stored))
	for i, p := range stored {
		record, err := p.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Save overwrites the whole file through a temp-file rename so a crash
// mid-write cannot corrupt the existing history.
func (s *FileHistoryStore) Save(_ context.Context, records []domain.Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	if records == nil {
		records = []domain.Record{}
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("swap history: %w", err)
	}
	return nil
}
