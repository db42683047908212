package headless

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

// Renderer keeps the last breadcrumbs and history menu it was given.
type Renderer struct {
	mu          sync.Mutex
	crumbs      entity.Breadcrumbs
	historyMenu []entity.MenuItem
}

var _ port.NavigationRenderer = (*Renderer)(nil)

func (r *Renderer) RenderBreadcrumbs(_ context.Context, crumbs entity.Breadcrumbs) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.crumbs = crumbs
}

func (r *Renderer) RenderHistoryMenu(_ context.Context, items []entity.MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.historyMenu = slices.Clone(items)
}

// Breadcrumbs returns the last rendered breadcrumbs.
func (r *Renderer) Breadcrumbs() entity.Breadcrumbs {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.crumbs
}

// HistoryMenu returns the last rendered secondary-pane history menu.
func (r *Renderer) HistoryMenu() []entity.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.historyMenu)
}

// Scheduler queues deferred work until RunPending is called.
type Scheduler struct {
	mu      sync.Mutex
	pending []scheduled
	seq     int
}

type scheduled struct {
	delay time.Duration
	seq   int
	fn    func()
}

var _ port.Scheduler = (*Scheduler)(nil)

func (s *Scheduler) After(delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.pending = append(s.pending, scheduled{delay: delay, seq: s.seq, fn: fn})
}

// RunPending runs queued work, shortest delay first, until the queue is empty.
// Work queued by a running callback runs in the same call.
func (s *Scheduler) RunPending() int {
	ran := 0
	for {
		s.mu.Lock()
		batch := s.pending
		s.pending = nil
		s.mu.Unlock()
		if len(batch) == 0 {
			return ran
		}

		sort.SliceStable(batch, func(i, j int) bool {
			if batch[i].delay != batch[j].delay {
				return batch[i].delay < batch[j].delay
			}
			return batch[i].seq < batch[j].seq
		})
		for _, job := range batch {
			job.fn()
			ran++
		}
	}
}

// Pending counts queued callbacks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Windows records URLs opened in new browsing contexts.
type Windows struct {
	mu   sync.Mutex
	urls []string
}

var _ port.WindowOpener = (*Windows)(nil)

func (w *Windows) OpenWindow(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.urls = append(w.urls, url)
	return nil
}

// Opened returns every URL opened so far.
func (w *Windows) Opened() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.urls)
}

// Notifications collects user-facing messages and logs them.
type Notifications struct {
	mu       sync.Mutex
	messages []string
}

var _ port.Notifier = (*Notifications)(nil)

func (n *Notifications) Notify(ctx context.Context, message string) {
	logging.FromContext(ctx).Info().Str("message", message).Msg("notification")
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

// Messages returns every message shown so far.
func (n *Notifications) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.messages)
}

// Confirmer answers discard prompts from a fixed policy.
type Confirmer struct {
	mu     sync.Mutex
	accept bool
	asked  []string
}

var _ port.Confirmer = (*Confirmer)(nil)

// NewConfirmer creates a confirmer that answers accept.
func NewConfirmer(accept bool) *Confirmer {
	return &Confirmer{accept: accept}
}

func (c *Confirmer) ConfirmDiscard(ctx context.Context, pane entity.PaneID, filePath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.asked = append(c.asked, filePath)
	logging.FromContext(ctx).Debug().Str("pane", string(pane)).Str("file", filePath).Bool("accept", c.accept).Msg("discard prompt")
	return c.accept, nil
}

// SetAccept changes the answer to future prompts.
func (c *Confirmer) SetAccept(accept bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accept = accept
}

// Asked returns the files a discard prompt was shown for.
func (c *Confirmer) Asked() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.asked)
}

// FileTree records the file last highlighted by navigation.
type FileTree struct {
	mu          sync.Mutex
	ready       bool
	highlighted string
}

var _ port.FileTree = (*FileTree)(nil)

// NewFileTree creates a tree that is ready when ready is true.
func NewFileTree(ready bool) *FileTree {
	return &FileTree{ready: ready}
}

func (f *FileTree) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready
}

func (f *FileTree) Highlight(_ context.Context, filePath string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.highlighted = filePath
}

// Highlighted returns the highlighted file.
func (f *FileTree) Highlighted() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.highlighted
}
