package domain

import (
	"fmt"
	"time"

	apperrors "mindrng/internal/platform/errors"
)

type GameMode string

const (
	GameModeExactMatch GameMode = "exact_match"
	GameModeRange      GameMode = "range_prediction"
	GameModeHighLow    GameMode = "high_low"
)

type Algorithm string

const (
	AlgorithmStandard  Algorithm = "standard"
	AlgorithmSecrets   Algorithm = "secrets"
	AlgorithmTimeBased Algorithm = "time_based"
)

// Playable range limits. A range needs at least two values to leave room
// for a wrong guess, and is capped to keep cold-number scans bounded.
const (
	MinRangeSpan = 2
	MaxRangeSpan = 10000
)

func (m GameMode) Validate() error {
	switch m {
	case GameModeExactMatch, GameModeRange, GameModeHighLow:
		return nil
	default:
		return fmt.Errorf("unsupported game mode %q", string(m))
	}
}

func (a Algorithm) Validate() error {
	switch a {
	case AlgorithmStandard, AlgorithmSecrets, AlgorithmTimeBased:
		return nil
	default:
		return fmt.Errorf("unsupported algorithm %q", string(a))
	}
}

// ValidateRange is the gate every generation call must pass first.
func ValidateRange(minVal, maxVal int) error {
	if minVal > maxVal {
		return fmt.Errorf("%w: min %d exceeds max %d", apperrors.ErrInvalidRange, minVal, maxVal)
	}
	span := maxVal - minVal + 1
	if span < MinRangeSpan {
		return fmt.Errorf("%w: span of %d values, need at least %d", apperrors.ErrInvalidRange, span, MinRangeSpan)
	}
	if span > MaxRangeSpan {
		return fmt.Errorf("%w: span of %d values exceeds %d", apperrors.ErrInvalidRange, span, MaxRangeSpan)
	}
	return nil
}

// Record is one completed trial. Records are immutable once constructed and
// live in an append-only, chronologically ordered history.
type Record struct {
	Prediction *int      `json:"prediction"`
	Generated  int       `json:"generated"`
	Timestamp  string    `json:"timestamp"`
	GameMode   GameMode  `json:"game_mode"`
	MinVal     int       `json:"min_val"`
	MaxVal     int       `json:"max_val"`
	Algorithm  Algorithm `json:"algorithm"`
}

// IsHit reports whether the prediction exactly matched the generated number.
// A record without a prediction is never a hit.
func (r Record) IsHit() bool {
	return r.Prediction != nil && *r.Prediction == r.Generated
}

// Distance returns the absolute difference between prediction and outcome.
// The second return is false when the record has no prediction.
func (r Record) Distance() (int, bool) {
	if r.Prediction == nil {
		return 0, false
	}
	d := *r.Prediction - r.Generated
	if d < 0 {
		d = -d
	}
	return d, true
}

func (r Record) Validate() error {
	if err := r.GameMode.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedRecord, err)
	}
	if err := r.Algorithm.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedRecord, err)
	}
	if r.MinVal > r.MaxVal {
		return fmt.Errorf("%w: min %d exceeds max %d", apperrors.ErrMalformedRecord, r.MinVal, r.MaxVal)
	}
	if r.Generated < r.MinVal || r.Generated > r.MaxVal {
		return fmt.Errorf("%w: generated %d outside [%d, %d]", apperrors.ErrMalformedRecord, r.Generated, r.MinVal, r.MaxVal)
	}
	if r.Timestamp == "" {
		return fmt.Errorf("%w: missing timestamp", apperrors.ErrMalformedRecord)
	}
	if _, err := time.Parse(time.RFC3339, r.Timestamp); err != nil {
		return fmt.Errorf("%w: bad timestamp %q", apperrors.ErrMalformedRecord, r.Timestamp)
	}
	return nil
}
