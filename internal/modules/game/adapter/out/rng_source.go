package out

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"

	"mindrng/internal/modules/game/domain"
	gameout "mindrng/internal/modules/game/port/out"
	"mindrng/internal/platform/clock"
)

// RNGSource draws numbers with one of the closed set of algorithms. The
// time_based variant reseeds from the clock on every call so the outcome
// tracks the moment of generation, which is the point of that mode.
type RNGSource struct {
	clock clock.Clock
	rng   *mathrand.Rand
}

func NewRNGSource(clk clock.Clock) gameout.NumberSource {
	return &RNGSource{
		clock: clk,
		rng:   mathrand.New(mathrand.NewSource(clk.Now().UnixNano())),
	}
}

func (s *RNGSource) Generate(algorithm domain.Algorithm, minVal, maxVal int) (int, error) {
	if err := domain.ValidateRange(minVal, maxVal); err != nil {
		return 0, err
	}
	span := maxVal - minVal + 1

	switch algorithm {
	case domain.AlgorithmStandard:
		return minVal + s.rng.Intn(span), nil
	case domain.AlgorithmSecrets:
		n, err := rand.Int(rand.Reader, big.NewInt(int64(span)))
		if err != nil {
			return 0, fmt.Errorf("crypto random: %w", err)
		}
		return minVal + int(n.Int64()), nil
	case domain.AlgorithmTimeBased:
		seed := s.clock.Now().UnixMicro() % 1_000_000
		return minVal + mathrand.New(mathrand.NewSource(seed)).Intn(span), nil
	default:
		return 0, fmt.Errorf("unsupported algorithm %q", string(algorithm))
	}
}
