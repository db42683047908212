package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/crumbtrail/internal/infrastructure/config"
	"github.com/bnema/crumbtrail/internal/infrastructure/persistence/memory"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return NewAppWithStore(context.Background(), config.DefaultConfig(), memory.NewKeyValueStore(nil))
}

func TestNewAppWithStore_SharesHistory(t *testing.T) {
	app := newTestApp(t)

	require.NotNil(t, app.History)
	assert.Equal(t, app.Config.History.MaxEntries, app.History.Capacity())
	assert.NoError(t, app.Close())
}

func TestApp_Workspace(t *testing.T) {
	tests := []struct {
		name    string
		source  config.FileServerSource
		wantErr bool
	}{
		{name: "local", source: config.FileServerLocal},
		{name: "http", source: config.FileServerHTTP},
		{name: "unknown", source: "ftp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			ws, err := app.Workspace(WorkspaceOptions{Root: t.TempDir(), Source: tt.source})

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, ws)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, app.History.Capacity(), ws.History.Capacity())
		})
	}
}

func TestApp_WatchConfigWithoutManager(t *testing.T) {
	app := newTestApp(t)

	assert.NotPanics(t, app.WatchConfig)
}
