package domain

import "fmt"

// Settings are the persisted user preferences that seed each trial.
type Settings struct {
	MinVal        int       `yaml:"min_val"`
	MaxVal        int       `yaml:"max_val"`
	GameMode      GameMode  `yaml:"game_mode"`
	Algorithm     Algorithm `yaml:"algorithm"`
	Bins          int       `yaml:"bins"`
	TopN          int       `yaml:"top_n"`
	SpecialNumber int       `yaml:"special_number"`
}

func DefaultSettings() Settings {
	return Settings{
		MinVal:        0,
		MaxVal:        99,
		GameMode:      GameModeExactMatch,
		Algorithm:     AlgorithmStandard,
		Bins:          10,
		TopN:          5,
		SpecialNumber: 47,
	}
}

func (s Settings) Validate() error {
	if err := ValidateRange(s.MinVal, s.MaxVal); err != nil {
		return err
	}
	if err := s.GameMode.Validate(); err != nil {
		return err
	}
	if err := s.Algorithm.Validate(); err != nil {
		return err
	}
	if s.Bins < 1 {
		return fmt.Errorf("bins must be at least 1, got %d", s.Bins)
	}
	if s.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", s.TopN)
	}
	return nil
}
