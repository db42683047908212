// Package headless implements the editor-side ports without a display.
// It backs the replay command and end-to-end tests.
package headless

import (
	"strings"
	"sync"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

// LineHeight is the pixel height of one line, used to map lines to scroll offsets.
const LineHeight = 16

// Editor is an in-memory text buffer implementing port.Editor.
type Editor struct {
	id       string
	pane     entity.PaneID
	filePath string
	host     *Host

	mu        sync.Mutex
	text      string
	saved     string
	sel       entity.Selection
	scrollTop int
	destroyed bool
}

var _ port.Editor = (*Editor)(nil)

func (e *Editor) ID() string { return e.id }

func (e *Editor) FilePath() string { return e.filePath }

// Pane returns the pane the editor was created in.
func (e *Editor) Pane() entity.PaneID { return e.pane }

func (e *Editor) Selection() entity.Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel
}

// SetSelection clamps both ends into the buffer.
func (e *Editor) SetSelection(sel entity.Selection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.sel = entity.Selection{Start: clamp(sel.Start, len(e.text)), End: clamp(sel.End, len(e.text))}
}

func (e *Editor) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

func (e *Editor) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.text = text
	e.sel = entity.Selection{Start: clamp(e.sel.Start, len(text)), End: clamp(e.sel.End, len(text))}
}

// Insert types text at the caret, replacing the selection.
func (e *Editor) Insert(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	start, end := min(e.sel.Start, e.sel.End), max(e.sel.Start, e.sel.End)
	e.text = e.text[:start] + text + e.text[end:]
	caret := start + len(text)
	e.sel = entity.Selection{Start: caret, End: caret}
}

func (e *Editor) IsDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text != e.saved
}

// Save marks the buffer as written.
func (e *Editor) Save() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.saved = e.text
}

func (e *Editor) ScrollTop() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrollTop
}

func (e *Editor) SetScrollTop(px int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	e.scrollTop = max(px, 0)
}

// TopLine is the first visible line.
func (e *Editor) TopLine() int {
	return e.ScrollTop() / LineHeight
}

func (e *Editor) LineAtOffset(offset int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return strings.Count(e.text[:clamp(offset, len(e.text))], "\n")
}

func (e *Editor) SetTopLine(line int) {
	e.SetScrollTop(line * LineHeight)
}

func (e *Editor) Focus() {
	if e.Destroyed() {
		return
	}
	e.host.setFocus(e)
}

func (e *Editor) HasFocus() bool {
	return e.host.focused() == e
}

func (e *Editor) Destroy() {
	e.mu.Lock()
	e.destroyed = true
	e.mu.Unlock()
	e.host.release(e)
}

// Destroyed reports whether Destroy was called.
func (e *Editor) Destroyed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.destroyed
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}
