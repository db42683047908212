package entity

import (
	"encoding/json"
	"fmt"
)

// DefaultHistoryCapacity is how many recent files are kept.
const DefaultHistoryCapacity = 8

// HistoryStorageKey is the key-value store key holding the recent-file list.
const HistoryStorageKey = "scriptedHistory"

// HistoryEntry represents a recently visited file location.
// At most one entry per FilePath is kept in the store.
type HistoryEntry struct {
	Location    Location
	URL         string
	DisplayName string
}

// NewHistoryEntry creates a history entry for a location and its deep link.
func NewHistoryEntry(loc Location, url string) HistoryEntry {
	return HistoryEntry{
		Location:    loc,
		URL:         url,
		DisplayName: loc.DisplayName(),
	}
}

// FilePath is a shortcut for the entry's location path.
func (h HistoryEntry) FilePath() string {
	return h.Location.FilePath
}

// historyEntryWire is the persisted and session-history shape of an entry.
// Field names stay compatible with lists written by earlier clients.
type historyEntryWire struct {
	FileName string `json:"filename"`
	FilePath string `json:"filepath"`
	Range    []int  `json:"range,omitempty"`
	Position int    `json:"position"`
	URL      string `json:"url"`
}

// MarshalJSON encodes the entry in its wire shape.
func (h HistoryEntry) MarshalJSON() ([]byte, error) {
	w := historyEntryWire{
		FileName: h.DisplayName,
		FilePath: h.Location.FilePath,
		Position: h.Location.ScrollPosition,
		URL:      h.URL,
	}
	if sel := h.Location.Selection; sel != nil {
		w.Range = []int{sel.Start, sel.End}
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the entry from its wire shape.
func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	var w historyEntryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	loc := Location{FilePath: w.FilePath, ScrollPosition: w.Position}
	switch len(w.Range) {
	case 0:
	case 2:
		loc.Selection = NewSelection(w.Range[0], w.Range[1])
	default:
		return fmt.Errorf("history entry %q: range must have 2 elements, got %d", w.FilePath, len(w.Range))
	}
	name := w.FileName
	if name == "" {
		name = loc.DisplayName()
	}
	*h = HistoryEntry{Location: loc, URL: w.URL, DisplayName: name}
	return nil
}

// BrowserHistoryRecord is the state object attached to a session-history entry.
// It carries a HistoryEntry-shaped payload so a pop can rebuild a Location.
type BrowserHistoryRecord struct {
	Entry HistoryEntry
}

// NewBrowserHistoryRecord wraps a history entry for the session history.
func NewBrowserHistoryRecord(entry HistoryEntry) BrowserHistoryRecord {
	return BrowserHistoryRecord{Entry: entry}
}

// HasFilePath reports whether the record can be mapped back onto a pane.
func (r BrowserHistoryRecord) HasFilePath() bool {
	return r.Entry.Location.FilePath != ""
}

// MarshalJSON encodes the record as its flat entry payload.
func (r BrowserHistoryRecord) MarshalJSON() ([]byte, error) {
	return r.Entry.MarshalJSON()
}

// UnmarshalJSON decodes a flat entry payload.
func (r *BrowserHistoryRecord) UnmarshalJSON(data []byte) error {
	return r.Entry.UnmarshalJSON(data)
}
