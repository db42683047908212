package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

type paneContent struct {
	filePath  string
	selection entity.Selection
	scrollTop int
	text      string
	dirty     bool
}

func capturePane(editor port.Editor) paneContent {
	return paneContent{
		filePath:  editor.FilePath(),
		selection: editor.Selection(),
		scrollTop: editor.ScrollTop(),
		text:      editor.Text(),
		dirty:     editor.IsDirty(),
	}
}

// SwapPanes exchanges the files shown in the main and secondary panes.
// Unsaved text travels with its file and no discard prompt is shown. Focus
// follows the content that had it, after the swap focus delay. Both
// replacement editors are built before either pane changes, so a failed
// swap leaves the panes as they were.
func (c *NavigationController) SwapPanes(ctx context.Context) error {
	log := logging.FromContext(ctx)

	secondaryEditor := c.Panes.Editor(entity.PaneSecondary)
	if secondaryEditor == nil {
		return ErrNoSecondary
	}
	mainEditor := c.Panes.Editor(entity.PaneMain)
	if mainEditor == nil {
		return fmt.Errorf("%w: main pane is empty", ErrNothingToOpen)
	}

	main := capturePane(mainEditor)
	secondary := capturePane(secondaryEditor)
	mainHadFocus := mainEditor.HasFocus()

	log.Debug().
		Str("main", main.filePath).
		Str("secondary", secondary.filePath).
		Msg("swapping panes")

	for _, filePath := range []string{main.filePath, secondary.filePath} {
		if err := c.checkText(ctx, filePath); err != nil {
			return err
		}
	}

	releaseMain, ok := c.Panes.TryAcquire(entity.PaneMain)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaneBusy, entity.PaneMain)
	}
	defer releaseMain()
	releaseSecondary, ok := c.Panes.TryAcquire(entity.PaneSecondary)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaneBusy, entity.PaneSecondary)
	}
	defer releaseSecondary()

	newMain, err := c.createEditor(ctx, entity.PaneMain, secondary.filePath)
	if err != nil {
		return fmt.Errorf("failed to move secondary file to main pane: %w", err)
	}
	newSecondary, err := c.createEditor(ctx, entity.PaneSecondary, main.filePath)
	if err != nil {
		newMain.Destroy()
		return fmt.Errorf("failed to move main file to secondary pane: %w", err)
	}

	c.recordCurrent(ctx, true)

	mainEditor.Destroy()
	secondaryEditor.Destroy()
	c.Panes.Bind(ctx, entity.PaneMain, newMain, secondary.filePath)
	c.Panes.Bind(ctx, entity.PaneSecondary, newSecondary, main.filePath)
	c.mainLoadFailed.Store(false)

	c.applySelection(newMain, secondary.selection)
	c.applySelection(newSecondary, main.selection)
	restorePane(newMain, secondary)
	restorePane(newSecondary, main)

	if c.FileTree != nil && c.FileTree.Ready() {
		c.FileTree.Highlight(ctx, secondary.filePath)
	}
	if c.Renderer != nil {
		entries := c.History.All(ctx)
		if c.Breadcrumbs != nil {
			c.Renderer.RenderBreadcrumbs(ctx, c.Breadcrumbs.Build(ctx, secondary.filePath, entries))
		}
		c.Renderer.RenderHistoryMenu(ctx, HistoryMenu(entries))
	}
	if c.Bridge != nil {
		c.Bridge.Push(ctx, c.snapshot(newMain))
	}

	focusPane := entity.PaneMain
	if mainHadFocus {
		focusPane = entity.PaneSecondary
	}
	c.focusLater(focusPane)

	log.Info().Msg("panes swapped")
	return nil
}

// createEditor builds an editor without touching the pane state.
func (c *NavigationController) createEditor(ctx context.Context, pane entity.PaneID, filePath string) (port.Editor, error) {
	editor, err := c.Host.CreateEditor(ctx, pane, filePath)
	if err == nil && editor == nil {
		err = errors.New("editor host returned no editor")
	}
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("pane", string(pane)).Msg("editor load failed")
		return nil, fmt.Errorf("%w: %s: %w", ErrEditorLoad, filePath, err)
	}
	return editor, nil
}

// restorePane puts carried-over content into a rebuilt editor.
func restorePane(editor port.Editor, content paneContent) {
	if content.dirty {
		editor.SetText(content.text)
		editor.SetSelection(content.selection)
	}
	editor.SetScrollTop(content.scrollTop)
}

// focusLater focuses whatever editor the pane holds once the swap delay
// elapsed. An emptied pane is skipped.
func (c *NavigationController) focusLater(pane entity.PaneID) {
	fn := func() {
		if ed := c.Panes.Editor(pane); ed != nil {
			ed.Focus()
		}
	}
	if c.Scheduler == nil {
		fn()
		return
	}
	c.Scheduler.After(c.cfg.SwapFocusDelay, fn)
}
