package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateNavigation(config)...)
	validationErrors = append(validationErrors, validateFileServer(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateHistory(config *Config) []string {
	var validationErrors []string
	if config.History.MaxEntries < 1 {
		validationErrors = append(validationErrors, "history.max_entries must be at least 1")
	}
	if strings.TrimSpace(config.History.StorageKey) == "" {
		validationErrors = append(validationErrors, "history.storage_key cannot be empty")
	}
	return validationErrors
}

func validateNavigation(config *Config) []string {
	var validationErrors []string
	if !strings.HasPrefix(config.Navigation.BasePath, "/") {
		validationErrors = append(validationErrors, "navigation.base_path must start with '/'")
	}
	if strings.ContainsAny(config.Navigation.BasePath, "?#") {
		validationErrors = append(validationErrors, "navigation.base_path must not contain '?' or '#'")
	}
	if config.Navigation.LineScrollOffset < 0 {
		validationErrors = append(validationErrors, "navigation.line_scroll_offset must be non-negative")
	}
	if config.Navigation.SwapFocusDelayMs < 0 {
		validationErrors = append(validationErrors, "navigation.swap_focus_delay_ms must be non-negative")
	}
	if config.Navigation.LoadFocusDelayMs < 0 {
		validationErrors = append(validationErrors, "navigation.load_focus_delay_ms must be non-negative")
	}
	return validationErrors
}

func validateFileServer(config *Config) []string {
	var validationErrors []string
	if config.FileServer.Source == FileServerHTTP {
		u, err := url.Parse(config.FileServer.URL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			validationErrors = append(validationErrors,
				fmt.Sprintf("file_server.url must be an http(s) URL (got: %q)", config.FileServer.URL))
		}
	}
	if config.FileServer.TimeoutMs < 1 {
		validationErrors = append(validationErrors, "file_server.timeout_ms must be at least 1")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: %s (got: %s)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: %s (got: %s)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	return validationErrors
}
