package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	appDirName = "pocket-cli" // directory name under os.UserConfigDir
	configName = "config.toml"
)

func DefaultDir() (string, error) {
	d, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if d == "" {
		return "", errors.New("os.UserConfigDir() returned empty string")
	}
	return filepath.Join(d, appDirName), nil
}

func DefaultConfigPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName), nil
}
