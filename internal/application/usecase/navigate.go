package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/deeplink"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

const (
	// DefaultLineScrollOffset is how many lines are kept above a revealed selection.
	DefaultLineScrollOffset = 5

	// DefaultSwapFocusDelay lets both panes rebuild before focus is restored.
	DefaultSwapFocusDelay = 200 * time.Millisecond

	// DefaultLoadFocusDelay defers focus on a freshly constructed editor.
	DefaultLoadFocusDelay = 5 * time.Millisecond

	binaryFileMessage = "Cannot open binary files"
)

var (
	// ErrBinaryFile is returned when the destination file cannot be shown as text.
	ErrBinaryFile = errors.New("cannot open binary file")
	// ErrNavigationDeclined is returned when discarding unsaved changes was refused.
	ErrNavigationDeclined = errors.New("navigation declined: unsaved changes")
	// ErrNothingToOpen is returned when no file path can be resolved.
	ErrNothingToOpen = errors.New("nothing to open")
	// ErrPaneBusy is returned while another navigation targets the same pane.
	ErrPaneBusy = errors.New("pane is busy loading")
	// ErrEditorLoad wraps a failed editor construction.
	ErrEditorLoad = errors.New("failed to load editor")
	// ErrNoSecondary is returned by operations that need an open secondary pane.
	ErrNoSecondary = errors.New("secondary pane is not open")
	// ErrNoWindowOpener is returned for new-tab navigation without a window opener.
	ErrNoWindowOpener = errors.New("new tab navigation unavailable")
)

// NavigationConfig holds the tunables of the navigation controller.
type NavigationConfig struct {
	BasePath         string
	LineScrollOffset int
	SwapFocusDelay   time.Duration
	LoadFocusDelay   time.Duration
}

// DefaultNavigationConfig returns the stock navigation tunables.
func DefaultNavigationConfig() NavigationConfig {
	return NavigationConfig{
		BasePath:         deeplink.DefaultBasePath,
		LineScrollOffset: DefaultLineScrollOffset,
		SwapFocusDelay:   DefaultSwapFocusDelay,
		LoadFocusDelay:   DefaultLoadFocusDelay,
	}
}

// NavigationDeps are the collaborators of the navigation controller.
// FileTree, Confirmer, Notifier, Renderer, Windows and Scheduler are optional.
type NavigationDeps struct {
	Panes       *PaneManager
	History     *HistoryStore
	Bridge      *BrowserStateBridge
	Resolver    *TargetResolver
	Breadcrumbs *BreadcrumbsUseCase

	Host      port.EditorHost
	Files     port.FileInfo
	Confirmer port.Confirmer
	Notifier  port.Notifier
	Renderer  port.NavigationRenderer
	FileTree  port.FileTree
	Windows   port.WindowOpener
	Scheduler port.Scheduler
}

// NavigateInput describes a navigation request.
type NavigateInput struct {
	FilePath         string
	Selection        *entity.Selection
	Target           entity.NavigationTarget
	SaveBrowserState bool
}

type navigateOptions struct {
	// skipConfirm bypasses the discard prompt; used when content is carried over.
	skipConfirm bool
}

// NavigationController moves the editor panes between files and keeps the
// recent-file history and the session history in step.
type NavigationController struct {
	NavigationDeps
	cfg NavigationConfig

	mainLoadFailed atomic.Bool
}

// NewNavigationController creates the controller and registers it as the
// bridge's pop handler.
func NewNavigationController(deps NavigationDeps, cfg NavigationConfig) *NavigationController {
	if cfg.BasePath == "" {
		cfg.BasePath = deeplink.DefaultBasePath
	}
	if cfg.LineScrollOffset < 0 {
		cfg.LineScrollOffset = DefaultLineScrollOffset
	}
	if deps.Resolver == nil {
		deps.Resolver = NewTargetResolver()
	}

	c := &NavigationController{
		NavigationDeps: deps,
		cfg:            cfg,
	}
	if deps.Bridge != nil {
		deps.Bridge.SetSubNavigationGuard(c.SubNavigationDisabled)
		deps.Bridge.OnPop(c.onPop)
	}
	return c
}

// SubNavigationDisabled reports whether the last main-pane load failed.
func (c *NavigationController) SubNavigationDisabled() bool {
	return c.mainLoadFailed.Load()
}

// Navigate opens FilePath in the requested target. A nil error means the
// destination now shows the file.
func (c *NavigationController) Navigate(ctx context.Context, input NavigateInput) error {
	return c.navigate(ctx, input, navigateOptions{})
}

func (c *NavigationController) navigate(ctx context.Context, input NavigateInput, opts navigateOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if input.FilePath == "" {
		return ErrNothingToOpen
	}

	ctx = logging.WithFilePath(ctx, input.FilePath)
	log := logging.FromContext(ctx)
	log.Debug().
		Str("target", input.Target.String()).
		Bool("save_state", input.SaveBrowserState).
		Msg("navigating")

	sel := input.Selection
	if sel != nil && !sel.Valid() {
		log.Warn().Int("start", sel.Start).Int("end", sel.End).Msg("invalid selection range, ignoring")
		sel = nil
	}

	if err := c.checkText(ctx, input.FilePath); err != nil {
		return err
	}

	pane, ok := input.Target.Pane()
	if !ok {
		return c.openTab(ctx, input.FilePath, sel, input.SaveBrowserState)
	}
	ctx = logging.WithPaneID(ctx, string(pane))

	release, ok := c.Panes.TryAcquire(pane)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaneBusy, pane)
	}
	defer release()

	current := c.Panes.Get(pane)
	same := current.IsBound() && current.FilePath == input.FilePath

	if !same && !opts.skipConfirm {
		if err := c.confirmDiscard(ctx, pane, current); err != nil {
			return err
		}
	}

	c.recordCurrent(ctx, input.SaveBrowserState)

	editor := current.Editor
	constructed := false
	if !same {
		loaded, err := c.load(ctx, pane, input.FilePath)
		if err != nil {
			return err
		}
		editor = loaded
		constructed = true
	}

	if sel != nil {
		c.applySelection(editor, *sel)
	}

	switch pane {
	case entity.PaneMain:
		if c.FileTree != nil && c.FileTree.Ready() {
			c.FileTree.Highlight(ctx, input.FilePath)
		}
		if c.Renderer != nil && c.Breadcrumbs != nil {
			c.Renderer.RenderBreadcrumbs(ctx, c.Breadcrumbs.Build(ctx, input.FilePath, c.History.All(ctx)))
		}
		if input.SaveBrowserState && c.Bridge != nil {
			c.Bridge.Push(ctx, c.snapshot(editor))
		}
	case entity.PaneSecondary:
		if c.Renderer != nil {
			c.Renderer.RenderHistoryMenu(ctx, HistoryMenu(c.History.All(ctx)))
		}
	}

	c.focus(editor, constructed)

	log.Info().
		Str("target", input.Target.String()).
		Bool("reloaded", constructed).
		Msg("navigation complete")
	return nil
}

// checkText fails with ErrBinaryFile, after notifying, when filePath cannot
// be shown as text.
func (c *NavigationController) checkText(ctx context.Context, filePath string) error {
	binary, err := c.isBinary(ctx, filePath)
	if err != nil {
		return err
	}
	if binary {
		if c.Notifier != nil {
			c.Notifier.Notify(ctx, binaryFileMessage)
		}
		return fmt.Errorf("%w: %s", ErrBinaryFile, filePath)
	}
	return nil
}

func (c *NavigationController) isBinary(ctx context.Context, filePath string) (bool, error) {
	if c.Files == nil {
		return false, nil
	}
	binary, err := c.Files.IsBinary(ctx, filePath)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, err
		}
		// Unknown files are treated like binaries.
		logging.FromContext(ctx).Warn().Err(err).Msg("binary check failed")
		return true, nil
	}
	return binary, nil
}

func (c *NavigationController) openTab(ctx context.Context, filePath string, sel *entity.Selection, save bool) error {
	c.recordCurrent(ctx, save)

	if c.Windows == nil {
		return ErrNoWindowOpener
	}
	url := deeplink.Format(c.cfg.BasePath, filePath, sel)
	if err := c.Windows.OpenWindow(ctx, url); err != nil {
		return fmt.Errorf("failed to open new tab: %w", err)
	}
	logging.FromContext(ctx).Info().Str("url", url).Msg("opened new tab")
	return nil
}

func (c *NavigationController) confirmDiscard(ctx context.Context, pane entity.PaneID, current PaneState) error {
	if !current.Dirty() || c.Confirmer == nil {
		return nil
	}
	ok, err := c.Confirmer.ConfirmDiscard(ctx, pane, current.FilePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNavigationDeclined, err)
	}
	if !ok {
		logging.FromContext(ctx).Debug().Msg("discard declined")
		return ErrNavigationDeclined
	}
	return nil
}

// recordCurrent stores the bound panes in the recent-file history. With save
// set, the main pane's session-history entry is rewritten to its latest state.
func (c *NavigationController) recordCurrent(ctx context.Context, save bool) {
	if main := c.Panes.Get(entity.PaneMain); main.IsBound() {
		entry := c.snapshot(main.Editor)
		c.History.Record(ctx, entry)
		if save && c.Bridge != nil {
			c.Bridge.Replace(ctx, entry)
		}
	}
	if secondary := c.Panes.Get(entity.PaneSecondary); secondary.IsBound() {
		c.History.Record(ctx, c.snapshot(secondary.Editor))
	}
}

func (c *NavigationController) load(ctx context.Context, pane entity.PaneID, filePath string) (port.Editor, error) {
	log := logging.FromContext(ctx)

	if pane == entity.PaneMain {
		c.Panes.ShowMain()
	}
	if old := c.Panes.BeginLoad(ctx, pane, filePath); old != nil {
		old.Destroy()
	}

	editor, err := c.Host.CreateEditor(ctx, pane, filePath)
	if err == nil && editor == nil {
		err = errors.New("editor host returned no editor")
	}
	if err != nil {
		log.Error().Err(err).Msg("editor load failed")
		c.Panes.Unbind(ctx, pane)
		if pane == entity.PaneMain {
			c.mainLoadFailed.Store(true)
			c.Panes.HideMain()
			if c.Panes.IsOpen(entity.PaneSecondary) {
				if cerr := c.CloseSecondary(ctx); cerr != nil {
					log.Warn().Err(cerr).Msg("secondary pane left open after main load failure")
				}
			}
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrEditorLoad, filePath, err)
	}

	if pane == entity.PaneMain {
		c.mainLoadFailed.Store(false)
	}
	c.Panes.Bind(ctx, pane, editor, filePath)
	return editor, nil
}

func (c *NavigationController) applySelection(editor port.Editor, sel entity.Selection) {
	editor.SetSelection(sel)
	editor.SetTopLine(TopLineFor(editor.LineAtOffset(sel.Start), c.cfg.LineScrollOffset))
}

func (c *NavigationController) focus(editor port.Editor, deferred bool) {
	if deferred && c.Scheduler != nil {
		c.Scheduler.After(c.cfg.LoadFocusDelay, editor.Focus)
		return
	}
	editor.Focus()
}

// snapshot captures an editor's current location as a history entry.
func (c *NavigationController) snapshot(editor port.Editor) entity.HistoryEntry {
	sel := editor.Selection()
	loc := entity.Location{
		FilePath:       editor.FilePath(),
		Selection:      &sel,
		ScrollPosition: editor.ScrollTop(),
	}
	return entity.NewHistoryEntry(loc, deeplink.Format(c.cfg.BasePath, loc.FilePath, &sel))
}

func (c *NavigationController) onPop(ctx context.Context, record entity.BrowserHistoryRecord, target entity.NavigationTarget) {
	err := c.Navigate(ctx, NavigateInput{
		FilePath:  record.Entry.FilePath(),
		Selection: record.Entry.Location.Selection,
		Target:    target,
	})
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("file", record.Entry.FilePath()).Msg("pop navigation failed")
	}
}

// TopLineFor returns the first visible line that keeps offset lines above line.
func TopLineFor(line, offset int) int {
	if line < offset {
		return 0
	}
	return line - offset
}
