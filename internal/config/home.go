package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the rustcheat home directory
const HomeEnv = "RUSTCHEAT_HOME"

// GetHome returns the rustcheat home directory.
// Priority order:
//  1. RUSTCHEAT_HOME environment variable (if set)
//  2. ~/.rustcheat
//
// The directory is not created; rustcheat only reads from it.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}
	return filepath.Join(userHome, ".rustcheat"), nil
}

// DefaultConfigPath returns $RUSTCHEAT_HOME/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}
