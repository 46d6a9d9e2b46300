// conf/utils.go various util functions for the configuration package
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// GetDefaultConfigPaths returns a list of default configuration paths for the
// current operating system. If a config.yaml exists in one of the paths it is
// picked up from there; otherwise the first path is used when creating a
// default config file.
func GetDefaultConfigPaths() ([]string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("error fetching executable path: %w", err)
	}
	exeDir := filepath.Dir(exePath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error fetching user home directory: %w", err)
	}

	var configPaths []string
	switch runtime.GOOS {
	case "windows":
		configPaths = []string{
			exeDir,
			filepath.Join(homeDir, "AppData", "Roaming", "wellatlas"),
		}
	default:
		configPaths = []string{
			".",
			filepath.Join(homeDir, ".config", "wellatlas"),
			exeDir,
		}
	}

	return configPaths, nil
}

// EnsureDirectories creates the data and upload directories if they do not exist.
func (s *Settings) EnsureDirectories() error {
	for _, dir := range []string{s.DataPath, s.UploadPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}
	return nil
}
