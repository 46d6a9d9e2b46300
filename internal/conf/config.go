// conf/config.go viper based configuration handling for WellAtlas
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// DefaultHeaderTitle is the display title shown when nothing is configured.
const DefaultHeaderTitle = "WellAtlas by Henry Suden"

// WebServerSettings holds the HTTP listener configuration.
type WebServerSettings struct {
	Host string // interface to bind, empty for all
	Port string // TCP port to listen on
}

// LogSettings holds the optional file log configuration.
type LogSettings struct {
	Enabled bool   // true to write a rotating JSON log file
	Path    string // log file path
	MaxSize int    // maximum size in megabytes before rotation
	MaxAge  int    // maximum age in days to retain old log files
}

// Settings contains the runtime configuration for the application.
type Settings struct {
	Debug bool // enable debug logging

	DataPath    string // directory holding the SQLite database file
	UploadPath  string // directory holding uploaded photo files
	MaxUploadMB int64  // request body cap in megabytes

	WebServer WebServerSettings
	Log       LogSettings
}

// SQLitePath returns the full path of the database file under the data directory.
func (s *Settings) SQLitePath() string {
	return filepath.Join(s.DataPath, "wellatlas.db")
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into a Settings struct.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	// Initialize viper and read config
	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	// Unmarshal the config into settings
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := validateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// Get returns the loaded settings instance, or nil before Load has run.
func Get() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create config with defaults
			return createDefaultConfig()
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig writes a config file with default values to the first config path.
func createDefaultConfig() error {
	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	configPath := filepath.Join(configPaths[0], "config.yaml")

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating directories for config file: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	return viper.ReadInConfig()
}

// validateSettings checks settings values that the rest of the application relies on.
func validateSettings(settings *Settings) error {
	if settings.WebServer.Port == "" {
		return fmt.Errorf("webserver port must not be empty")
	}
	if settings.MaxUploadMB <= 0 {
		return fmt.Errorf("maxuploadmb must be positive, got %d", settings.MaxUploadMB)
	}
	return nil
}
