package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

var configDir string
var configFilePath string
var sessionPath string

// getConfigDir returns platform-specific config directory
func getConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		// Windows: %LOCALAPPDATA%\unihub\cli
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = home
		}
		return filepath.Join(appData, "unihub", "cli"), nil
	}

	// Unix-like (macOS, Linux): ~/.config/unihub/cli
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "unihub", "cli"), nil
}

// getSystemConfigPaths returns platform-specific system config paths
func getSystemConfigPaths() []string {
	if runtime.GOOS == "windows" {
		return []string{filepath.Join(os.Getenv("ProgramFiles"), "UniHub", "cli", "config.toml")}
	}

	return []string{
		"/etc/unihub/cli/config.toml",
		"/usr/local/etc/unihub/cli/config.toml",
	}
}

// Init initializes the configuration
func Init(configPath string) error {
	var err error
	if configPath != "" {
		configDir = filepath.Dir(configPath)
		configFilePath = configPath
	} else {
		configDir, err = getConfigDir()
		if err != nil {
			return err
		}
		configFilePath = filepath.Join(configDir, "config.toml")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	sessionPath = filepath.Join(configDir, "session")

	viper.SetConfigType("toml")

	setDefaults()

	// Load system config first (if exists) - serves as foundation
	for _, sysConfigPath := range getSystemConfigPaths() {
		if _, err := os.Stat(sysConfigPath); err == nil {
			viper.SetConfigFile(sysConfigPath)
			_ = viper.ReadInConfig()
			break
		}
	}

	// Load user config second (overrides system config)
	viper.SetConfigFile(configFilePath)
	_ = viper.ReadInConfig()

	return nil
}

func setDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:5000")
	viper.SetDefault("api.timeout", 30)
	viper.SetDefault("api.retry_count", 3)
	viper.SetDefault("api.retry_wait", 1)
	viper.SetDefault("output.format", "text")

	// Badge polling and search debounce knobs
	viper.SetDefault("notifications.poll_interval", 30)
	viper.SetDefault("search.debounce_ms", 300)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", filepath.Join(configDir, "unihub-cli.log"))
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetString returns a string configuration value
func GetString(key string) string {
	value := viper.GetString(key)
	if key == "log.file" {
		return expandPath(value)
	}
	return value
}

// GetInt returns an int configuration value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool configuration value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// SetString sets a string configuration value
func SetString(key string, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Override sets a value for this process only, without persisting it
func Override(key string, value interface{}) {
	viper.Set(key, value)
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	return configDir
}

// GetSessionPath returns the path to the session file
func GetSessionPath() string {
	return sessionPath
}
