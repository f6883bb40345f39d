package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// GlobalConfig holds the configuration of the running command.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects GlobalConfig

// SetGlobalConfig installs cfg as the global configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	GlobalConfig = cfg
}

// ResetGlobalConfigForTest clears the global config.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}

// GetGlobalConfig returns the global configuration, falling back to defaults
// when none has been loaded.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := GlobalConfig
	globalConfigMu.RUnlock()
	if cfg == nil {
		return New()
	}
	return cfg
}

// GetConfigDir returns the collegelist configuration directory.
func GetConfigDir() (string, error) {
	return GetConfigDirWithEnv(os.LookupEnv)
}

// GetConfigDirWithEnv is GetConfigDir with an injectable environment lookup.
func GetConfigDirWithEnv(lookupEnv func(string) (string, bool)) (string, error) {
	if home, ok := lookupEnv(EnvHome); ok && home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".collegelist"), nil
}

// DefaultPath returns the config file path: $COLLEGELIST_CONFIG or
// config.yaml inside the configuration directory.
func DefaultPath() (string, error) {
	return DefaultPathWithEnv(os.LookupEnv)
}

// DefaultPathWithEnv is DefaultPath with an injectable environment lookup.
func DefaultPathWithEnv(lookupEnv func(string) (string, bool)) (string, error) {
	if p, ok := lookupEnv(EnvConfig); ok && p != "" {
		return p, nil
	}
	dir, err := GetConfigDirWithEnv(lookupEnv)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// EnsureLogDir creates the parent directory of the configured log file.
// It does nothing when no log file is configured.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
