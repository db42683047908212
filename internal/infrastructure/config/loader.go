package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	xdg "github.com/bnema/crumbtrail/internal/config"
	"github.com/bnema/crumbtrail/internal/domain/deeplink"
	"github.com/spf13/viper"
)

const (
	envPrefix = "CRUMBTRAIL"
	dirPerm   = 0o755
	filePerm  = 0o644
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a new configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := xdg.GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir)
}

func newManager(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// CRUMBTRAIL_HISTORY_MAX_ENTRIES, CRUMBTRAIL_NAVIGATION_BASE_PATH, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}

	return &Manager{
		viper:      v,
		configFile: filepath.Join(configDir, "config.toml"),
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := xdg.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}
	return m.load()
}

func (m *Manager) load() error {
	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	configFile, createErr := m.createDefaultConfig()
	if createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := xdg.GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Navigation.BasePath = strings.TrimSpace(config.Navigation.BasePath)
	if config.Navigation.BasePath == "" {
		config.Navigation.BasePath = deeplink.DefaultBasePath
	}
	config.Navigation.Root = strings.TrimRight(strings.TrimSpace(config.Navigation.Root), "/")

	switch strings.ToLower(string(config.FileServer.Source)) {
	case string(FileServerLocal):
		config.FileServer.Source = FileServerLocal
	default:
		config.FileServer.Source = FileServerHTTP
	}
	config.FileServer.URL = strings.TrimRight(strings.TrimSpace(config.FileServer.URL), "/")

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes DefaultConfig next to where viper looks for it.
func (m *Manager) createDefaultConfig() (string, error) {
	configFile := m.configFile
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return configFile, err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return configFile, err
	}
	m.viper.SetConfigFile(configFile)
	return configFile, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path is set dynamically in Load()

	m.viper.SetDefault("history.max_entries", defaults.History.MaxEntries)
	m.viper.SetDefault("history.storage_key", defaults.History.StorageKey)

	m.viper.SetDefault("navigation.base_path", defaults.Navigation.BasePath)
	m.viper.SetDefault("navigation.root", defaults.Navigation.Root)
	m.viper.SetDefault("navigation.line_scroll_offset", defaults.Navigation.LineScrollOffset)
	m.viper.SetDefault("navigation.swap_focus_delay_ms", defaults.Navigation.SwapFocusDelayMs)
	m.viper.SetDefault("navigation.load_focus_delay_ms", defaults.Navigation.LoadFocusDelayMs)

	m.viper.SetDefault("file_server.source", string(defaults.FileServer.Source))
	m.viper.SetDefault("file_server.url", defaults.FileServer.URL)
	m.viper.SetDefault("file_server.timeout_ms", defaults.FileServer.TimeoutMs)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
