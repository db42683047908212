package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEntry_JSONWireShape(t *testing.T) {
	entry := entity.NewHistoryEntry(entity.Location{
		FilePath:       "/project/src/a.js",
		Selection:      entity.NewSelection(10, 20),
		ScrollPosition: 42,
	}, "/editor.html?/project/src/a.js#10,20")

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"filename": "a.js",
		"filepath": "/project/src/a.js",
		"range": [10, 20],
		"position": 42,
		"url": "/editor.html?/project/src/a.js#10,20"
	}`, string(data))
}

func TestHistoryEntry_DecodesStoredList(t *testing.T) {
	raw := `[
		{"filename":"a.js","filepath":"/p/a.js","range":[1,2],"position":0,"url":"/?/p/a.js#1,2"},
		{"filepath":"/p/b.js","url":"/?/p/b.js"}
	]`

	var entries []entity.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 2)

	assert.Equal(t, "a.js", entries[0].DisplayName)
	require.NotNil(t, entries[0].Location.Selection)
	assert.Equal(t, entity.Selection{Start: 1, End: 2}, *entries[0].Location.Selection)

	assert.Equal(t, "b.js", entries[1].DisplayName, "display name falls back to the base name")
	assert.Nil(t, entries[1].Location.Selection)
}

func TestHistoryEntry_RejectsBadRange(t *testing.T) {
	var entry entity.HistoryEntry
	err := json.Unmarshal([]byte(`{"filepath":"/p/a.js","range":[1]}`), &entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "range must have 2 elements")
}

func TestBrowserHistoryRecord_HasFilePath(t *testing.T) {
	var rec entity.BrowserHistoryRecord
	require.NoError(t, json.Unmarshal([]byte(`{"url":"/"}`), &rec))
	assert.False(t, rec.HasFilePath())

	require.NoError(t, json.Unmarshal([]byte(`{"filepath":"/p/a.js"}`), &rec))
	assert.True(t, rec.HasFilePath())
}

func TestSelection_Valid(t *testing.T) {
	tests := []struct {
		name string
		sel  *entity.Selection
		want bool
	}{
		{name: "nil", sel: nil, want: false},
		{name: "zero", sel: entity.NewSelection(0, 0), want: true},
		{name: "regular", sel: entity.NewSelection(3, 9), want: true},
		{name: "negative start", sel: entity.NewSelection(-1, 9), want: false},
		{name: "negative end", sel: entity.NewSelection(3, -9), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Valid())
		})
	}
}

func TestNavigationTarget_Pane(t *testing.T) {
	pane, ok := entity.TargetMain.Pane()
	assert.True(t, ok)
	assert.Equal(t, entity.PaneMain, pane)

	pane, ok = entity.TargetSecondary.Pane()
	assert.True(t, ok)
	assert.Equal(t, entity.PaneSecondary, pane)

	_, ok = entity.TargetNewTab.Pane()
	assert.False(t, ok)
}
