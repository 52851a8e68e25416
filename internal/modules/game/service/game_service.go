package service

import (
	"context"
	"fmt"
	"time"

	"mindrng/internal/modules/game/domain"
	gameout "mindrng/internal/modules/game/port/out"
	"mindrng/internal/platform/clock"
	apperrors "mindrng/internal/platform/errors"
)

// GameService runs one trial: validates the inputs, draws a number, and
// stamps the resulting record.
type GameService struct {
	clock   clock.Clock
	numbers gameout.NumberSource
}

func NewGameService(clock clock.Clock, numbers gameout.NumberSource) *GameService {
	return &GameService{clock: clock, numbers: numbers}
}

func (s *GameService) PlayRound(_ context.Context, prediction *int, minVal, maxVal int, mode domain.GameMode, algorithm domain.Algorithm) (domain.Record, error) {
	if err := domain.ValidateRange(minVal, maxVal); err != nil {
		return domain.Record{}, err
	}
	if err := mode.Validate(); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := algorithm.Validate(); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	generated, err := s.numbers.Generate(algorithm, minVal, maxVal)
	if err != nil {
		return domain.Record{}, fmt.Errorf("generate number: %w", err)
	}

	record := domain.Record{
		Prediction: prediction,
		Generated:  generated,
		Timestamp:  s.clock.Now().Format(time.RFC3339),
		GameMode:   mode,
		MinVal:     minVal,
		MaxVal:     maxVal,
		Algorithm:  algorithm,
	}
	if err := record.Validate(); err != nil {
		return domain.Record{}, fmt.Errorf("generated record: %w", err)
	}
	return record, nil
}
