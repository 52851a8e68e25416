package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	DataDir      string
	SessionFile  string
	SettingsPath string
	ExportDir    string
	DBPath       string
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:      dataDir,
		SessionFile:  filepath.Join(dataDir, "sessions.json"),
		SettingsPath: filepath.Join(dataDir, "settings.yaml"),
		ExportDir:    filepath.Join(dataDir, "exports"),
		DBPath:       filepath.Join(dataDir, "mindrng.db"),
	}, nil
}
