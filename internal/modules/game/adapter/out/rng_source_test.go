package out_test

import (
	"errors"
	"testing"
	"time"

	"mindrng/internal/modules/game/adapter/out"
	"mindrng/internal/modules/game/domain"
	apperrors "mindrng/internal/platform/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestGenerateStaysInRange(t *testing.T) {
	t.Parallel()
	source := out.NewRNGSource(fixedClock{now: time.Date(2026, 3, 1, 12, 47, 0, 0, time.UTC)})

	for _, algorithm := range []domain.Algorithm{domain.AlgorithmStandard, domain.AlgorithmSecrets, domain.AlgorithmTimeBased} {
		for i := 0; i < 200; i++ {
			n, err := source.Generate(algorithm, 3, 9)
			if err != nil {
				t.Fatalf("%s: generate: %v", algorithm, err)
			}
			if n < 3 || n > 9 {
				t.Fatalf("%s: generated %d outside [3, 9]", algorithm, n)
			}
		}
	}
}

func TestGenerateRejectsInvalidRange(t *testing.T) {
	t.Parallel()
	source := out.NewRNGSource(fixedClock{now: time.Unix(0, 0)})
	if _, err := source.Generate(domain.AlgorithmStandard, 9, 3); !errors.Is(err, apperrors.ErrInvalidRange) {
		t.Fatalf("inverted range should fail the gate, got %v", err)
	}
	if _, err := source.Generate(domain.AlgorithmStandard, 5, 5); !errors.Is(err, apperrors.ErrInvalidRange) {
		t.Fatalf("single-value span should fail the gate, got %v", err)
	}
}

func TestGenerateRejectsUnknownAlgorithm(t *testing.T) {
	t.Parallel()
	source := out.NewRNGSource(fixedClock{now: time.Unix(0, 0)})
	if _, err := source.Generate(domain.Algorithm("oracle"), 0, 9); err == nil {
		t.Fatalf("unknown algorithm should fail")
	}
}

func TestTimeBasedIsDeterministicForAFrozenClock(t *testing.T) {
	t.Parallel()
	clk := fixedClock{now: time.Date(2026, 3, 1, 12, 47, 0, 0, time.UTC)}
	source := out.NewRNGSource(clk)

	first, err := source.Generate(domain.AlgorithmTimeBased, 0, 9999)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := source.Generate(domain.AlgorithmTimeBased, 0, 9999)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != second {
		t.Fatalf("frozen clock must reproduce the draw, got %d then %d", first, second)
	}
}
