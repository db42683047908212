// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/bootstrap"
	"github.com/bnema/crumbtrail/internal/cli/styles"
	xdg "github.com/bnema/crumbtrail/internal/config"
	"github.com/bnema/crumbtrail/internal/domain/build"
	"github.com/bnema/crumbtrail/internal/domain/repository"
	"github.com/bnema/crumbtrail/internal/infrastructure/config"
	"github.com/bnema/crumbtrail/internal/infrastructure/fileserver"
	"github.com/bnema/crumbtrail/internal/infrastructure/filesystem"
	"github.com/bnema/crumbtrail/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/crumbtrail/internal/logging"
	"github.com/rs/zerolog"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info

	db      *sqlite.LazyDB
	Store   repository.KeyValueStore
	History *usecase.HistoryStore

	SearchHistoryUC *usecase.SearchHistoryUseCase

	manager *config.Manager
	ctx     context.Context
}

// NewApp creates a new CLI application with all dependencies.
// The database is opened on first use.
func NewApp() (*App, error) {
	ctx := logging.WithContext(context.Background(), logging.NewFromEnv())

	mgr, cfg, configFile := loadConfig(ctx)

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx = logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", configFile).Str("db_path", cfg.Database.Path).Msg("cli initialized")

	db := sqlite.NewLazyDB(cfg.Database.Path)
	a := NewAppWithStore(ctx, cfg, sqlite.NewKeyValueStore(db))
	a.ConfigFile = configFile
	a.db = db
	a.manager = mgr
	return a, nil
}

// NewAppWithStore creates an app whose history lives in store.
func NewAppWithStore(ctx context.Context, cfg *config.Config, store repository.KeyValueStore) *App {
	history := usecase.NewHistoryStore(store, cfg.History.StorageKey, cfg.History.MaxEntries)
	return &App{
		Config:          cfg,
		Theme:           styles.NewTheme(),
		Store:           store,
		History:         history,
		SearchHistoryUC: usecase.NewSearchHistoryUseCase(history),
		ctx:             ctx,
	}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WatchConfig reloads the config file when it changes. Only logging.level is
// applied live, and a reload can lower verbosity below the startup level but
// not raise it.
func (a *App) WatchConfig() {
	if a.manager == nil {
		return
	}
	a.manager.OnConfigChange(func(cfg *config.Config) {
		zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
		logging.FromContext(a.ctx).Debug().Str("level", cfg.Logging.Level).Msg("config reloaded")
	})
	if err := a.manager.Watch(); err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("config watch unavailable")
	}
}

// WorkspaceOptions selects the adapters of a headless workspace.
type WorkspaceOptions struct {
	// Root confines local file access. Empty means the whole filesystem.
	Root string
	// Source overrides the configured file_server.source.
	Source config.FileServerSource
	// DiscardUnsaved answers discard prompts.
	DiscardUnsaved bool
}

// Workspace builds a headless navigation workspace sharing the app's history store.
func (a *App) Workspace(opts WorkspaceOptions) (*bootstrap.Workspace, error) {
	local := filesystem.New(nil)
	if opts.Root != "" {
		local = filesystem.NewRooted(opts.Root)
	}

	source := opts.Source
	if source == "" {
		source = a.Config.FileServer.Source
	}

	var files port.FileInfo
	switch source {
	case config.FileServerLocal:
		files = local
	case config.FileServerHTTP:
		files = fileserver.NewClient(a.Config.FileServer.URL, a.Config.FileServerTimeout())
	default:
		return nil, fmt.Errorf("unknown file server source %q", source)
	}

	return bootstrap.NewWorkspace(a.ctx, bootstrap.WorkspaceInput{
		Config:         a.Config,
		Store:          a.Store,
		Files:          files,
		Source:         local,
		DiscardUnsaved: opts.DiscardUnsaved,
	}), nil
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
// The manager is nil when the loaded config cannot be watched.
func loadConfig(ctx context.Context) (*config.Manager, *config.Config, string) {
	log := logging.FromContext(ctx)

	mgr, err := config.NewManager()
	if err != nil {
		log.Warn().Err(err).Msg("config unavailable, using defaults")
		return nil, fallbackConfig(), ""
	}

	if err := mgr.Load(); err != nil {
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		return nil, fallbackConfig(), mgr.GetConfigFile()
	}

	return mgr, mgr.Get(), mgr.GetConfigFile()
}

func fallbackConfig() *config.Config {
	cfg := config.DefaultConfig()
	if dbPath, err := xdg.GetDatabaseFile(); err == nil {
		cfg.Database.Path = dbPath
	}
	return cfg
}
