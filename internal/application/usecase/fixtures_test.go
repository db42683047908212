package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// memoryKV is a map-backed KeyValueStore for tests that need real round trips.
type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (s *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memoryKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memoryKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

type fakeEditor struct {
	id        string
	path      string
	saved     string
	text      string
	sel       entity.Selection
	scrollTop int
	topLine   int
	focused   bool
	destroyed bool
	focusHits int
	host      *fakeHost
}

func (e *fakeEditor) ID() string { return e.id }
func (e *fakeEditor) FilePath() string { return e.path }
func (e *fakeEditor) Selection() entity.Selection { return e.sel }
func (e *fakeEditor) SetSelection(sel entity.Selection) { e.sel = sel }
func (e *fakeEditor) Text() string { return e.text }
func (e *fakeEditor) SetText(text string) { e.text = text }
func (e *fakeEditor) IsDirty() bool { return e.text != e.saved }
func (e *fakeEditor) ScrollTop() int { return e.scrollTop }
func (e *fakeEditor) SetScrollTop(px int) { e.scrollTop = px }
func (e *fakeEditor) SetTopLine(line int) { e.topLine = line }
func (e *fakeEditor) HasFocus() bool { return e.focused }

func (e *fakeEditor) Destroy() {
	e.destroyed = true
	e.focused = false
}

func (e *fakeEditor) LineAtOffset(offset int) int {
	if offset > len(e.text) {
		offset = len(e.text)
	}
	return strings.Count(e.text[:offset], "\n")
}

func (e *fakeEditor) Focus() {
	if e.destroyed {
		return
	}
	if e.host != nil {
		e.host.blurAll()
	}
	e.focused = true
	e.focusHits++
}

// fakeHost builds fakeEditors over an in-memory file set. Files missing from
// the set fail to load.
type fakeHost struct {
	mu      sync.Mutex
	files   map[string]string
	created []*fakeEditor

	// block, when set, is waited on inside CreateEditor.
	block   chan struct{}
	entered chan struct{}
}

func newFakeHost(files map[string]string) *fakeHost {
	return &fakeHost{files: files}
}

func (h *fakeHost) CreateEditor(_ context.Context, pane entity.PaneID, filePath string) (port.Editor, error) {
	if h.entered != nil {
		h.entered <- struct{}{}
	}
	if h.block != nil {
		<-h.block
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	content, ok := h.files[filePath]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", filePath)
	}
	ed := &fakeEditor{
		id:    fmt.Sprintf("%s-%d", pane, len(h.created)+1),
		path:  filePath,
		saved: content,
		text:  content,
		host:  h,
	}
	h.created = append(h.created, ed)
	return ed, nil
}

// blurAll drops focus from every editor, like a single keyboard focus owner.
func (h *fakeHost) blurAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ed := range h.created {
		ed.focused = false
	}
}

func (h *fakeHost) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.created)
}

type fakeLayout struct {
	mu          sync.Mutex
	sideVisible bool
	mainVisible bool
	margin      int
	width       int
	calls       []string
}

func (l *fakeLayout) ShowSidePanel() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sideVisible = true
	l.calls = append(l.calls, "show")
	return l.width
}

func (l *fakeLayout) HideSidePanel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sideVisible = false
	l.calls = append(l.calls, "hide")
}

func (l *fakeLayout) SetMainMarginRight(px int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.margin = px
	l.calls = append(l.calls, fmt.Sprintf("margin:%d", px))
}

func (l *fakeLayout) SetMainVisible(visible bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mainVisible = visible
}

// queueScheduler records deferred work and runs it on Flush.
type queueScheduler struct {
	mu     sync.Mutex
	delays []time.Duration
	queue  []func()
}

func (s *queueScheduler) After(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, delay)
	s.queue = append(s.queue, fn)
}

func (s *queueScheduler) Flush() {
	s.mu.Lock()
	queue := s.queue
	s.queue = nil
	s.mu.Unlock()
	for _, fn := range queue {
		fn()
	}
}

type recordingRenderer struct {
	crumbs []entity.Breadcrumbs
	menus  [][]entity.MenuItem
}

func (r *recordingRenderer) RenderBreadcrumbs(_ context.Context, crumbs entity.Breadcrumbs) {
	r.crumbs = append(r.crumbs, crumbs)
}

func (r *recordingRenderer) RenderHistoryMenu(_ context.Context, items []entity.MenuItem) {
	r.menus = append(r.menus, items)
}

type fakeTree struct {
	ready       bool
	highlighted []string
}

func (t *fakeTree) Ready() bool { return t.ready }

func (t *fakeTree) Highlight(_ context.Context, filePath string) {
	t.highlighted = append(t.highlighted, filePath)
}

// harness wires a controller over fakes. SessionHistory, Confirmer, Notifier,
// Files and Windows are left to each test.
type harness struct {
	host      *fakeHost
	layout    *fakeLayout
	scheduler *queueScheduler
	renderer  *recordingRenderer
	tree      *fakeTree
	kv        *memoryKV
	panes     *usecase.PaneManager
	history   *usecase.HistoryStore
	bridge    *usecase.BrowserStateBridge
	ctrl      *usecase.NavigationController
}

type harnessOption func(*usecase.NavigationDeps)

func newHarness(t *testing.T, files map[string]string, session port.SessionHistory, opts ...harnessOption) *harness {
	t.Helper()

	h := &harness{
		host:      newFakeHost(files),
		layout:    &fakeLayout{width: 320},
		scheduler: &queueScheduler{},
		renderer:  &recordingRenderer{},
		tree:      &fakeTree{ready: true},
		kv:        newMemoryKV(),
	}
	resolver := usecase.NewTargetResolver()
	h.panes = usecase.NewPaneManager(h.layout)
	h.history = usecase.NewHistoryStore(h.kv, entity.HistoryStorageKey, entity.DefaultHistoryCapacity)
	h.bridge = usecase.NewBrowserStateBridge(session, resolver)

	deps := usecase.NavigationDeps{
		Panes:       h.panes,
		History:     h.history,
		Bridge:      h.bridge,
		Resolver:    resolver,
		Breadcrumbs: usecase.NewBreadcrumbsUseCase(nil, "/project", "/"),
		Host:        h.host,
		Renderer:    h.renderer,
		FileTree:    h.tree,
		Scheduler:   h.scheduler,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	h.ctrl = usecase.NewNavigationController(deps, usecase.DefaultNavigationConfig())
	return h
}

func withConfirmer(c port.Confirmer) harnessOption {
	return func(d *usecase.NavigationDeps) { d.Confirmer = c }
}

func withFiles(f port.FileInfo) harnessOption {
	return func(d *usecase.NavigationDeps) { d.Files = f }
}

func withNotifier(n port.Notifier) harnessOption {
	return func(d *usecase.NavigationDeps) { d.Notifier = n }
}

func withWindows(w port.WindowOpener) harnessOption {
	return func(d *usecase.NavigationDeps) { d.Windows = w }
}

func (h *harness) editor(id entity.PaneID) *fakeEditor {
	ed := h.panes.Editor(id)
	if ed == nil {
		return nil
	}
	return ed.(*fakeEditor)
}

// open binds pane to filePath without saving browser state.
func (h *harness) open(t *testing.T, id entity.PaneID, filePath string) *fakeEditor {
	t.Helper()
	err := h.ctrl.Navigate(testContext(), usecase.NavigateInput{
		FilePath: filePath,
		Target:   entity.TargetForPane(id),
	})
	if err != nil {
		t.Fatalf("open %s in %s: %v", filePath, id, err)
	}
	return h.editor(id)
}

func numberedLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "line %02d\n", i)
	}
	return b.String()
}
