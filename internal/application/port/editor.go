// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (browser DOM, headless, etc.).
package port

import (
	"context"

	"github.com/bnema/crumbtrail/internal/domain/entity"
)

// Editor is a live text editor instance bound to one pane.
// All methods must be safe to call after Destroy; they become no-ops.
type Editor interface {
	// ID uniquely identifies this editor instance.
	ID() string

	// FilePath returns the file the editor was opened on.
	FilePath() string

	// Selection returns the current selection.
	Selection() entity.Selection
	// SetSelection selects [start, end) and moves the caret to end.
	SetSelection(sel entity.Selection)

	// Text returns the in-memory buffer contents.
	Text() string
	// SetText replaces the buffer contents. The editor becomes dirty when
	// the text differs from what is on disk.
	SetText(text string)
	// IsDirty reports unsaved modifications.
	IsDirty() bool

	// ScrollTop returns the vertical scroll position in pixels.
	ScrollTop() int
	// SetScrollTop restores a vertical scroll position in pixels.
	SetScrollTop(px int)
	// LineAtOffset maps a character offset to its zero-based line.
	LineAtOffset(offset int) int
	// SetTopLine scrolls so line is the first visible line.
	SetTopLine(line int)

	// Focus gives the editor keyboard focus.
	Focus()
	// HasFocus reports whether the editor owns keyboard focus.
	HasFocus() bool

	// Destroy releases the editor and its container contents.
	Destroy()
}

// EditorHost constructs editor instances inside pane containers.
type EditorHost interface {
	// CreateEditor builds an editor for filePath in pane. A load failure
	// is reported as an error and no editor is returned.
	CreateEditor(ctx context.Context, pane entity.PaneID, filePath string) (Editor, error)
}
