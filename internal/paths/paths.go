// Package paths locates the configuration and formats paths for display.
package paths

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const (
	// EnvConfig overrides the default configuration location.
	EnvConfig = "CMDALIAS_CONFIG"

	defaultConfigName = ".cmdalias"
)

// DefaultConfig returns $CMDALIAS_CONFIG when set, otherwise ~/.cmdalias.
func DefaultConfig() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, defaultConfigName), nil
}

// Friendly converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func Friendly(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	return friendlyUnder(usr.HomeDir, absPath)
}

func friendlyUnder(homeDir, absPath string) string {
	if homeDir == "" || !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return absPath
	}
	return filepath.Join("~", relPath)
}
