package config

// Config represents the complete configuration for crumbtrail.
type Config struct {
	History    HistoryConfig    `mapstructure:"history" toml:"history" json:"history" jsonschema:"description=Recent-file history"`
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation" json:"navigation" jsonschema:"description=Pane navigation"`
	FileServer FileServerConfig `mapstructure:"file_server" toml:"file_server" json:"file_server" jsonschema:"description=File information source"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
}

// HistoryConfig controls the persisted recent-file list.
type HistoryConfig struct {
	// MaxEntries is how many recent files are kept (oldest evicted first).
	MaxEntries int `mapstructure:"max_entries" toml:"max_entries" json:"max_entries" jsonschema:"minimum=1,default=8"`
	// StorageKey is the key the list is stored under.
	StorageKey string `mapstructure:"storage_key" toml:"storage_key" json:"storage_key" jsonschema:"default=scriptedHistory"`
}

// NavigationConfig holds deep-link and pane tunables.
type NavigationConfig struct {
	// BasePath prefixes every deep link: <base_path>?<file>#<start>,<end>.
	BasePath string `mapstructure:"base_path" toml:"base_path" json:"base_path" jsonschema:"default=/"`
	// Root is the project root breadcrumbs are split under.
	Root string `mapstructure:"root" toml:"root" json:"root"`
	// LineScrollOffset is how many lines stay visible above a revealed selection.
	LineScrollOffset int `mapstructure:"line_scroll_offset" toml:"line_scroll_offset" json:"line_scroll_offset" jsonschema:"minimum=0,default=5"`
	// SwapFocusDelayMs defers focus after a pane swap.
	SwapFocusDelayMs int `mapstructure:"swap_focus_delay_ms" toml:"swap_focus_delay_ms" json:"swap_focus_delay_ms" jsonschema:"minimum=0,default=200"`
	// LoadFocusDelayMs defers focus on a freshly loaded editor.
	LoadFocusDelayMs int `mapstructure:"load_focus_delay_ms" toml:"load_focus_delay_ms" json:"load_focus_delay_ms" jsonschema:"minimum=0,default=5"`
}

// FileServerSource selects where file information comes from.
type FileServerSource string

const (
	// FileServerHTTP asks the local file server.
	FileServerHTTP FileServerSource = "http"
	// FileServerLocal reads the local filesystem directly.
	FileServerLocal FileServerSource = "local"
)

// FileServerConfig configures the binary check and directory listing source.
type FileServerConfig struct {
	Source    FileServerSource `mapstructure:"source" toml:"source" json:"source" jsonschema:"enum=http,enum=local,default=http"`
	URL       string           `mapstructure:"url" toml:"url" json:"url" jsonschema:"default=http://localhost:7261"`
	TimeoutMs int              `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=1,default=2000"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path is set to the XDG data location when empty.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}
