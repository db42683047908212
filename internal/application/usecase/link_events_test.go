package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/crumbtrail/internal/application/port/mocks"
	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

func TestHandleLink(t *testing.T) {
	secondary := entity.PaneSecondary

	tests := []struct {
		name      string
		ev        usecase.LinkEvent
		stored    *entity.HistoryEntry
		wantPane  entity.PaneID
		wantPath  string
		wantRange *entity.Selection
	}{
		{
			name:      "plain link opens in main",
			ev:        usecase.LinkEvent{Href: "http://localhost:7261/editor.html?/b.js#3,4"},
			wantPane:  entity.PaneMain,
			wantPath:  "/b.js",
			wantRange: entity.NewSelection(3, 4),
		},
		{
			name:     "shift link opens in secondary",
			ev:       usecase.LinkEvent{Href: "/?/b.js", Modifiers: entity.Modifiers{Shift: true}},
			wantPane: entity.PaneSecondary,
			wantPath: "/b.js",
		},
		{
			name:     "link inside secondary stays there",
			ev:       usecase.LinkEvent{Href: "/?/b.js", Origin: &secondary},
			wantPane: entity.PaneSecondary,
			wantPath: "/b.js",
		},
		{
			name:      "missing range falls back to history",
			ev:        usecase.LinkEvent{Href: "/?/b.js"},
			stored:    ptr(historyEntry("/b.js", 5, 6)),
			wantPane:  entity.PaneMain,
			wantPath:  "/b.js",
			wantRange: entity.NewSelection(5, 6),
		},
		{
			name:      "malformed range falls back to history",
			ev:        usecase.LinkEvent{Href: "/?/b.js#oops"},
			stored:    ptr(historyEntry("/b.js", 7, 9)),
			wantPane:  entity.PaneMain,
			wantPath:  "/b.js",
			wantRange: entity.NewSelection(7, 9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			h := newHarness(t, map[string]string{"/a.js": "a", "/b.js": numberedLines(5)}, quietSession(t))
			h.open(t, entity.PaneMain, "/a.js")
			if tt.stored != nil {
				h.history.Record(ctx, *tt.stored)
			}
			if tt.ev.Origin != nil {
				h.open(t, *tt.ev.Origin, "/a.js")
			}

			require.NoError(t, h.ctrl.HandleLink(ctx, tt.ev))

			state := h.panes.Get(tt.wantPane)
			assert.Equal(t, tt.wantPath, state.FilePath)
			if tt.wantRange != nil {
				assert.Equal(t, *tt.wantRange, state.Editor.Selection())
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestHandleLink_PushesBrowserState(t *testing.T) {
	session := portmocks.NewMockSessionHistory(t)
	h := newHarness(t, map[string]string{"/b.js": numberedLines(5)}, session)

	session.EXPECT().PushState(mock.Anything, mock.Anything, "b.js", "/?/b.js#1,2").Return(nil).Once()

	require.NoError(t, h.ctrl.HandleLink(testContext(), usecase.LinkEvent{Href: "/?/b.js#1,2"}))
}

func TestHandleLink_EmptyPath(t *testing.T) {
	h := newHarness(t, nil, quietSession(t))
	err := h.ctrl.HandleLink(testContext(), usecase.LinkEvent{Href: "/editor.html?#1,2"})
	assert.ErrorIs(t, err, usecase.ErrNothingToOpen)
}

func TestHandleLink_ShiftAfterMainLoadFailureStaysInMain(t *testing.T) {
	ctx := testContext()
	h := newHarness(t, map[string]string{"/b.js": "b"}, quietSession(t))
	require.ErrorIs(t, h.ctrl.Navigate(ctx, usecase.NavigateInput{FilePath: "/gone.js", Target: entity.TargetMain}), usecase.ErrEditorLoad)

	err := h.ctrl.HandleLink(ctx, usecase.LinkEvent{Href: "/?/b.js", Modifiers: entity.Modifiers{Shift: true}})
	require.NoError(t, err)
	assert.Equal(t, "/b.js", h.panes.Get(entity.PaneMain).FilePath)
	assert.False(t, h.panes.SidePanelVisible())
}

func TestOpenOnRange(t *testing.T) {
	secondary := entity.PaneSecondary
	main := entity.PaneMain
	toSecondary := entity.TargetSecondary

	t.Run("missing path uses origin file", func(t *testing.T) {
		h := newHarness(t, map[string]string{"/a.js": numberedLines(10)}, quietSession(t))
		ed := h.open(t, entity.PaneMain, "/a.js")

		err := h.ctrl.OpenOnRange(testContext(), usecase.DefinitionJump{
			Definition: usecase.Definition{Range: entity.NewSelection(16, 20)},
			Origin:     &main,
		})
		require.NoError(t, err)
		assert.Same(t, ed, h.editor(entity.PaneMain))
		assert.Equal(t, entity.Selection{Start: 16, End: 20}, ed.Selection())
	})

	t.Run("missing range uses origin selection", func(t *testing.T) {
		h := newHarness(t, map[string]string{"/a.js": "a", "/b.js": numberedLines(10)}, quietSession(t))
		h.open(t, entity.PaneMain, "/a.js").SetSelection(entity.Selection{Start: 9, End: 9})

		err := h.ctrl.OpenOnRange(testContext(), usecase.DefinitionJump{
			Definition: usecase.Definition{Path: "/b.js"},
			Origin:     &main,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.Selection{Start: 9, End: 9}, h.editor(entity.PaneMain).Selection())
		assert.Equal(t, "/b.js", h.panes.Get(entity.PaneMain).FilePath)
	})

	t.Run("explicit target is inverted from secondary", func(t *testing.T) {
		h := newHarness(t, map[string]string{"/a.js": "a", "/b.js": "b"}, quietSession(t))
		h.open(t, entity.PaneMain, "/a.js")
		h.open(t, entity.PaneSecondary, "/a.js")

		err := h.ctrl.OpenOnRange(testContext(), usecase.DefinitionJump{
			Definition: usecase.Definition{Path: "/b.js", Range: entity.NewSelection(0, 1)},
			Target:     &toSecondary,
			Origin:     &secondary,
		})
		require.NoError(t, err)
		assert.Equal(t, "/b.js", h.panes.Get(entity.PaneMain).FilePath)
		assert.Equal(t, "/a.js", h.panes.Get(entity.PaneSecondary).FilePath)
	})

	t.Run("empty definition", func(t *testing.T) {
		h := newHarness(t, nil, quietSession(t))
		err := h.ctrl.OpenOnRange(testContext(), usecase.DefinitionJump{Origin: &main})
		assert.ErrorIs(t, err, usecase.ErrNothingToOpen)
	})

	t.Run("incomplete definition without origin", func(t *testing.T) {
		h := newHarness(t, nil, quietSession(t))
		err := h.ctrl.OpenOnRange(testContext(), usecase.DefinitionJump{
			Definition: usecase.Definition{Range: entity.NewSelection(1, 2)},
		})
		assert.ErrorIs(t, err, usecase.ErrNothingToOpen)
	})
}

func TestOpen_ReplacesBrowserState(t *testing.T) {
	ctx := testContext()
	session := portmocks.NewMockSessionHistory(t)
	h := newHarness(t, map[string]string{"/project/a.js": numberedLines(5)}, session)

	session.EXPECT().ReplaceState(mock.Anything, mock.Anything, "a.js", "/?/project/a.js#8,9").Return(nil).Once()

	require.NoError(t, h.ctrl.Open(ctx, "/?/project/a.js#8,9"))
	assert.Equal(t, "/project/a.js", h.panes.Get(entity.PaneMain).FilePath)
}

func TestToggleSidePanel(t *testing.T) {
	ctx := testContext()
	h := newHarness(t, map[string]string{"/a.js": numberedLines(5)}, quietSession(t))
	main := h.open(t, entity.PaneMain, "/a.js")
	main.SetSelection(entity.Selection{Start: 3, End: 6})

	require.NoError(t, h.ctrl.ToggleSidePanel(ctx))
	assert.True(t, h.panes.SidePanelVisible())
	sub := h.editor(entity.PaneSecondary)
	require.NotNil(t, sub)
	assert.Equal(t, "/a.js", sub.FilePath())
	assert.Equal(t, entity.Selection{Start: 3, End: 6}, sub.Selection())
	assert.True(t, sub.HasFocus())

	require.NoError(t, h.ctrl.ToggleSidePanel(ctx))
	assert.False(t, h.panes.SidePanelVisible())
	assert.True(t, sub.destroyed)
	assert.True(t, main.HasFocus())
}

func TestToggleSidePanel_EmptyMain(t *testing.T) {
	h := newHarness(t, nil, quietSession(t))
	assert.ErrorIs(t, h.ctrl.ToggleSidePanel(testContext()), usecase.ErrNothingToOpen)
}

func TestCloseSecondary(t *testing.T) {
	t.Run("dirty and declined", func(t *testing.T) {
		h := newHarness(t, map[string]string{"/a.js": "a", "/b.js": "b"}, quietSession(t), withConfirmer(declineAll()))
		h.open(t, entity.PaneMain, "/a.js")
		h.open(t, entity.PaneSecondary, "/b.js").SetText("changed")

		err := h.ctrl.CloseSecondary(testContext())
		require.ErrorIs(t, err, usecase.ErrNavigationDeclined)
		assert.True(t, h.panes.SidePanelVisible())
	})

	t.Run("nothing open", func(t *testing.T) {
		h := newHarness(t, nil, quietSession(t))
		assert.ErrorIs(t, h.ctrl.CloseSecondary(testContext()), usecase.ErrNoSecondary)
	})
}
