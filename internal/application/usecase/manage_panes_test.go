package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

func TestPaneManager_StartsEmpty(t *testing.T) {
	panes := usecase.NewPaneManager(&fakeLayout{})

	for _, id := range entity.PaneIDs {
		state := panes.Get(id)
		assert.Equal(t, entity.PaneEmpty, state.Status, id)
		assert.False(t, state.IsBound())
		assert.False(t, state.Dirty())
		assert.Nil(t, panes.Editor(id))
	}
	assert.False(t, panes.SidePanelVisible())
	assert.Equal(t, entity.PaneEmpty, panes.Get("bogus").Status)
}

func TestPaneManager_SecondaryLifecycleDrivesSidePanel(t *testing.T) {
	ctx := testContext()
	layout := &fakeLayout{width: 400}
	panes := usecase.NewPaneManager(layout)

	old := panes.BeginLoad(ctx, entity.PaneSecondary, "/b.js")
	assert.Nil(t, old)
	assert.Equal(t, entity.PaneLoading, panes.Get(entity.PaneSecondary).Status)
	assert.True(t, panes.IsOpen(entity.PaneSecondary))
	assert.True(t, layout.sideVisible)
	assert.Equal(t, 400, layout.margin)
	assert.Equal(t, 400, panes.MainMarginRight())

	ed := &fakeEditor{path: "/b.js"}
	panes.Bind(ctx, entity.PaneSecondary, ed, "/b.js")
	state := panes.Get(entity.PaneSecondary)
	assert.Equal(t, entity.PaneBound, state.Status)
	assert.Equal(t, "/b.js", state.FilePath)
	assert.Same(t, ed, panes.Editor(entity.PaneSecondary))

	// Rebinding a visible secondary does not reopen the panel.
	old = panes.BeginLoad(ctx, entity.PaneSecondary, "/c.js")
	assert.Same(t, ed, old)
	assert.Equal(t, []string{"show", "margin:400"}, layout.calls)

	got := panes.Unbind(ctx, entity.PaneSecondary)
	assert.Nil(t, got, "loading pane holds no editor")
	assert.False(t, panes.SidePanelVisible())
	assert.False(t, layout.sideVisible)
	assert.Equal(t, 0, layout.margin)
	assert.Equal(t, 0, panes.MainMarginRight())
}

func TestPaneManager_MainDoesNotTouchSidePanel(t *testing.T) {
	ctx := testContext()
	layout := &fakeLayout{width: 400}
	panes := usecase.NewPaneManager(layout)

	panes.ShowMain()
	panes.BeginLoad(ctx, entity.PaneMain, "/a.js")
	panes.Bind(ctx, entity.PaneMain, &fakeEditor{path: "/a.js"}, "/a.js")
	panes.Unbind(ctx, entity.PaneMain)

	assert.Empty(t, layout.calls)
	assert.True(t, layout.mainVisible)
	assert.True(t, panes.MainVisible())

	panes.HideMain()
	assert.False(t, layout.mainVisible)
}

func TestPaneState_DirtyIsLive(t *testing.T) {
	ctx := testContext()
	panes := usecase.NewPaneManager(nil)
	ed := &fakeEditor{path: "/a.js", saved: "x", text: "x"}
	panes.Bind(ctx, entity.PaneMain, ed, "/a.js")

	assert.False(t, panes.Get(entity.PaneMain).Dirty())
	ed.SetText("y")
	assert.True(t, panes.Get(entity.PaneMain).Dirty())
}

func TestPaneManager_TryAcquireIsPerPane(t *testing.T) {
	panes := usecase.NewPaneManager(nil)

	release, ok := panes.TryAcquire(entity.PaneMain)
	require.True(t, ok)

	_, ok = panes.TryAcquire(entity.PaneMain)
	assert.False(t, ok, "main is held")

	releaseSecondary, ok := panes.TryAcquire(entity.PaneSecondary)
	require.True(t, ok, "secondary is independent")
	releaseSecondary()

	release()
	release2, ok := panes.TryAcquire(entity.PaneMain)
	assert.True(t, ok)
	release2()
}
