package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"mindrng/internal/modules/game/domain"
	gameout "mindrng/internal/modules/game/port/out"
)

// YAMLSettingsStore persists user preferences. A missing file means
// defaults; keys absent from the file keep their default values.
type YAMLSettingsStore struct {
	path string
}

func NewYAMLSettingsStore(path string) gameout.SettingsStore {
	return &YAMLSettingsStore{path: path}
}

func (s *YAMLSettingsStore) Load(_ context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return domain.Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(payload, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("stored settings: %w", err)
	}
	return settings, nil
}

func (s *YAMLSettingsStore) Save(_ context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	payload, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
