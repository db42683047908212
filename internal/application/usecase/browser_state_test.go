package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/crumbtrail/internal/application/port/mocks"
	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

func TestBrowserStateBridge_PushAndReplace(t *testing.T) {
	ctx := testContext()
	session := portmocks.NewMockSessionHistory(t)
	bridge := usecase.NewBrowserStateBridge(session, nil)

	entry := historyEntry("/project/a.js", 10, 20)

	session.EXPECT().PushState(mock.Anything, entity.NewBrowserHistoryRecord(entry), "a.js", "/?/project/a.js#10,20").
		Return(nil).Once()
	session.EXPECT().ReplaceState(mock.Anything, entity.NewBrowserHistoryRecord(entry), "a.js", "/?/project/a.js#10,20").
		Return(nil).Once()

	bridge.Push(ctx, entry)
	bridge.Replace(ctx, entry)
}

func TestBrowserStateBridge_FailuresAreSwallowed(t *testing.T) {
	ctx := testContext()
	session := portmocks.NewMockSessionHistory(t)
	bridge := usecase.NewBrowserStateBridge(session, nil)

	session.EXPECT().PushState(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("SecurityError"))
	session.EXPECT().ReplaceState(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("SecurityError"))

	assert.NotPanics(t, func() {
		bridge.Push(ctx, historyEntry("/a.js", 0, 0))
		bridge.Replace(ctx, historyEntry("/a.js", 0, 0))
	})
}

func TestBrowserStateBridge_HandlePop(t *testing.T) {
	type popCall struct {
		path   string
		target entity.NavigationTarget
	}

	tests := []struct {
		name     string
		record   entity.BrowserHistoryRecord
		mods     entity.Modifiers
		disabled bool
		handled  bool
		want     *popCall
	}{
		{
			name:    "record without file path",
			record:  entity.BrowserHistoryRecord{},
			handled: false,
		},
		{
			name:    "plain pop targets main",
			record:  entity.NewBrowserHistoryRecord(historyEntry("/a.js", 1, 2)),
			handled: true,
			want:    &popCall{path: "/a.js", target: entity.TargetMain},
		},
		{
			name:    "shift pop targets secondary",
			record:  entity.NewBrowserHistoryRecord(historyEntry("/a.js", 1, 2)),
			mods:    entity.Modifiers{Shift: true},
			handled: true,
			want:    &popCall{path: "/a.js", target: entity.TargetSecondary},
		},
		{
			name:     "shift pop with sub navigation disabled",
			record:   entity.NewBrowserHistoryRecord(historyEntry("/a.js", 1, 2)),
			mods:     entity.Modifiers{Shift: true},
			disabled: true,
			handled:  true,
			want:     &popCall{path: "/a.js", target: entity.TargetMain},
		},
		{
			name:    "ctrl pop opens tab",
			record:  entity.NewBrowserHistoryRecord(historyEntry("/a.js", 1, 2)),
			mods:    entity.Modifiers{CtrlOrMeta: true},
			handled: true,
			want:    &popCall{path: "/a.js", target: entity.TargetNewTab},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bridge := usecase.NewBrowserStateBridge(portmocks.NewMockSessionHistory(t), usecase.NewTargetResolver())
			bridge.SetSubNavigationGuard(func() bool { return tt.disabled })

			var got *popCall
			bridge.OnPop(func(_ context.Context, record entity.BrowserHistoryRecord, target entity.NavigationTarget) {
				got = &popCall{path: record.Entry.FilePath(), target: target}
			})

			handled := bridge.HandlePop(testContext(), tt.record, tt.mods)
			assert.Equal(t, tt.handled, handled)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestBrowserStateBridge_HandlePopWithoutHandler(t *testing.T) {
	bridge := usecase.NewBrowserStateBridge(portmocks.NewMockSessionHistory(t), nil)
	handled := bridge.HandlePop(testContext(), entity.NewBrowserHistoryRecord(historyEntry("/a.js", 0, 0)), entity.Modifiers{})
	assert.True(t, handled)
}
