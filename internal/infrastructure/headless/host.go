package headless

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
	"github.com/google/uuid"
)

// Source supplies file contents to new editors.
type Source interface {
	ReadFile(filePath string) (string, error)
}

// MapSource serves files from memory.
type MapSource map[string]string

// ReadFile implements Source.
func (m MapSource) ReadFile(filePath string) (string, error) {
	text, ok := m[filePath]
	if !ok {
		return "", fmt.Errorf("open %s: file not found", filePath)
	}
	return text, nil
}

// Host builds editors and tracks which one owns keyboard focus.
type Host struct {
	source Source

	mu      sync.Mutex
	focus   *Editor
	live    map[string]*Editor
	created int
}

var _ port.EditorHost = (*Host)(nil)

// NewHost creates a host reading from source.
func NewHost(source Source) *Host {
	return &Host{source: source, live: make(map[string]*Editor)}
}

// CreateEditor reads filePath and builds an editor for pane.
func (h *Host) CreateEditor(ctx context.Context, pane entity.PaneID, filePath string) (port.Editor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := h.source.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	ed := &Editor{
		id:       uuid.NewString(),
		pane:     pane,
		filePath: filePath,
		host:     h,
		text:     text,
		saved:    text,
	}

	h.mu.Lock()
	h.live[ed.id] = ed
	h.created++
	h.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("editor_id", ed.id).
		Str("pane", string(pane)).
		Str("file", filePath).
		Msg("editor created")
	return ed, nil
}

// Focused returns the editor owning focus, if any.
func (h *Host) Focused() (*Editor, bool) {
	ed := h.focused()
	return ed, ed != nil
}

// Created counts editors built so far.
func (h *Host) Created() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.created
}

// Live counts editors not yet destroyed.
func (h *Host) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}

func (h *Host) setFocus(ed *Editor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focus = ed
}

func (h *Host) focused() *Editor {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.focus
}

func (h *Host) release(ed *Editor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.live, ed.id)
	if h.focus == ed {
		h.focus = nil
	}
}
