package config

import (
	"time"

	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/domain/deeplink"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

const (
	defaultFileServerURL     = "http://localhost:7261"
	defaultFileServerTimeout = 2000
	defaultSwapFocusDelayMs  = 200
	defaultLoadFocusDelayMs  = 5
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			MaxEntries: entity.DefaultHistoryCapacity,
			StorageKey: entity.HistoryStorageKey,
		},
		Navigation: NavigationConfig{
			BasePath:         deeplink.DefaultBasePath,
			LineScrollOffset: usecase.DefaultLineScrollOffset,
			SwapFocusDelayMs: defaultSwapFocusDelayMs,
			LoadFocusDelayMs: defaultLoadFocusDelayMs,
		},
		FileServer: FileServerConfig{
			Source:    FileServerHTTP,
			URL:       defaultFileServerURL,
			TimeoutMs: defaultFileServerTimeout,
		},
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// NavigationSettings converts the navigation section for the controller.
func (c *Config) NavigationSettings() usecase.NavigationConfig {
	return usecase.NavigationConfig{
		BasePath:         c.Navigation.BasePath,
		LineScrollOffset: c.Navigation.LineScrollOffset,
		SwapFocusDelay:   time.Duration(c.Navigation.SwapFocusDelayMs) * time.Millisecond,
		LoadFocusDelay:   time.Duration(c.Navigation.LoadFocusDelayMs) * time.Millisecond,
	}
}

// FileServerTimeout returns the file server request timeout.
func (c *Config) FileServerTimeout() time.Duration {
	return time.Duration(c.FileServer.TimeoutMs) * time.Millisecond
}
