package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"team-showcase.backend/pkg/api/client"
)

// cliConfig is persisted between runs. A stored token stays valid until the
// server rejects it; the client never expires it on its own.
type cliConfig struct {
	APIBaseURL  string `json:"api_base_url"`
	AccessToken string `json:"access_token"`
}

var userConfigDir = os.UserConfigDir

func configPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv("TEAMCTL_CONFIG")); p != "" {
		return p, nil
	}
	base, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "teamctl", "config.json"), nil
}

func loadConfig() (cliConfig, error) {
	path, err := configPath()
	if err != nil {
		return cliConfig{}, err
	}
	var cfg cliConfig
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cliConfig{}, err
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cliConfig{}, err
		}
	}
	if env := strings.TrimSpace(os.Getenv("TEAMCTL_API")); env != "" {
		cfg.APIBaseURL = env
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = client.DefaultBaseURL
	}
	return cfg, nil
}

func saveConfig(cfg cliConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
