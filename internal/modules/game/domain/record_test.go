package domain_test

import (
	"errors"
	"testing"
	"time"

	"mindrng/internal/modules/game/domain"
	apperrors "mindrng/internal/platform/errors"
)

func intp(v int) *int { return &v }

func validRecord() domain.Record {
	return domain.Record{
		Prediction: intp(5),
		Generated:  5,
		Timestamp:  time.Date(2026, 3, 1, 12, 47, 0, 0, time.UTC).Format(time.RFC3339),
		GameMode:   domain.GameModeExactMatch,
		MinVal:     0,
		MaxVal:     99,
		Algorithm:  domain.AlgorithmStandard,
	}
}

func TestRecordIsHit(t *testing.T) {
	t.Parallel()
	hit := validRecord()
	if !hit.IsHit() {
		t.Fatalf("prediction equal to generated should be a hit")
	}
	miss := validRecord()
	miss.Prediction = intp(7)
	if miss.IsHit() {
		t.Fatalf("prediction 7 against generated 5 should miss")
	}
	skipped := validRecord()
	skipped.Prediction = nil
	if skipped.IsHit() {
		t.Fatalf("record without prediction can never hit")
	}
}

func TestRecordDistance(t *testing.T) {
	t.Parallel()
	r := validRecord()
	r.Prediction = intp(3)
	r.Generated = 7
	d, ok := r.Distance()
	if !ok || d != 4 {
		t.Fatalf("expected distance 4, got %d ok=%t", d, ok)
	}
	r.Prediction = intp(9)
	d, ok = r.Distance()
	if !ok || d != 2 {
		t.Fatalf("distance must be absolute, got %d ok=%t", d, ok)
	}
	r.Prediction = nil
	if _, ok := r.Distance(); ok {
		t.Fatalf("distance is undefined without a prediction")
	}
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("record should be valid: %v", err)
	}

	badMode := validRecord()
	badMode.GameMode = "telepathy"
	if err := badMode.Validate(); !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("unknown mode should be malformed, got %v", err)
	}

	badAlgo := validRecord()
	badAlgo.Algorithm = "dice"
	if err := badAlgo.Validate(); !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("unknown algorithm should be malformed, got %v", err)
	}

	outOfRange := validRecord()
	outOfRange.Generated = 150
	if err := outOfRange.Validate(); !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("generated outside range should be malformed, got %v", err)
	}

	inverted := validRecord()
	inverted.MinVal, inverted.MaxVal = 99, 0
	if err := inverted.Validate(); !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("inverted range should be malformed, got %v", err)
	}

	noStamp := validRecord()
	noStamp.Timestamp = ""
	if err := noStamp.Validate(); !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("missing timestamp should be malformed, got %v", err)
	}

	badStamp := validRecord()
	badStamp.Timestamp = "yesterday"
	if err := badStamp.Validate(); !errors.Is(err, apperrors.ErrMalformedRecord) {
		t.Fatalf("unparseable timestamp should be malformed, got %v", err)
	}
}

func TestValidateRange(t *testing.T) {
	t.Parallel()
	if err := domain.ValidateRange(0, 99); err != nil {
		t.Fatalf("0..99 should be valid: %v", err)
	}
	if err := domain.ValidateRange(5, 5); !errors.Is(err, apperrors.ErrInvalidRange) {
		t.Fatalf("single-value span should fail, got %v", err)
	}
	if err := domain.ValidateRange(10, 0); !errors.Is(err, apperrors.ErrInvalidRange) {
		t.Fatalf("min above max should fail, got %v", err)
	}
	if err := domain.ValidateRange(0, 10001); !errors.Is(err, apperrors.ErrInvalidRange) {
		t.Fatalf("span above 10000 should fail, got %v", err)
	}
	if err := domain.ValidateRange(0, 9999); err != nil {
		t.Fatalf("span of exactly 10000 should pass: %v", err)
	}
	if err := domain.ValidateRange(-5, -4); err != nil {
		t.Fatalf("negative two-value span should pass: %v", err)
	}
}

func TestGameModeAndAlgorithmValidate(t *testing.T) {
	t.Parallel()
	for _, m := range []domain.GameMode{domain.GameModeExactMatch, domain.GameModeRange, domain.GameModeHighLow} {
		if err := m.Validate(); err != nil {
			t.Fatalf("mode %s should be valid: %v", m, err)
		}
	}
	if err := domain.GameMode("unknown").Validate(); err == nil {
		t.Fatalf("unknown game mode should fail")
	}
	for _, a := range []domain.Algorithm{domain.AlgorithmStandard, domain.AlgorithmSecrets, domain.AlgorithmTimeBased} {
		if err := a.Validate(); err != nil {
			t.Fatalf("algorithm %s should be valid: %v", a, err)
		}
	}
	if err := domain.Algorithm("oracle").Validate(); err == nil {
		t.Fatalf("unknown algorithm should fail")
	}
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()
	if err := domain.DefaultSettings().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}
	s := domain.DefaultSettings()
	s.MinVal, s.MaxVal = 50, 50
	if err := s.Validate(); !errors.Is(err, apperrors.ErrInvalidRange) {
		t.Fatalf("degenerate range should fail, got %v", err)
	}
	s = domain.DefaultSettings()
	s.Bins = 0
	if err := s.Validate(); err == nil {
		t.Fatalf("zero bins should fail")
	}
	s = domain.DefaultSettings()
	s.TopN = 0
	if err := s.Validate(); err == nil {
		t.Fatalf("zero top_n should fail")
	}
}
