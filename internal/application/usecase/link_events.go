package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/crumbtrail/internal/domain/deeplink"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

// LinkEvent is a click on a file link, from the file tree, a breadcrumb menu,
// the history menu or a file picker.
type LinkEvent struct {
	Href      string
	Modifiers entity.Modifiers
	// Origin is the pane the link was clicked in, nil outside the editors.
	Origin *entity.PaneID
}

// Definition is a jump destination. Empty fields default to the origin editor.
type Definition struct {
	Path  string
	Range *entity.Selection
}

// DefinitionJump asks to open a definition. An explicit Target takes
// precedence over Modifiers.
type DefinitionJump struct {
	Definition Definition
	Target     *entity.NavigationTarget
	Modifiers  entity.Modifiers
	Origin     *entity.PaneID
}

// HandleLink navigates to the file a link points at, saving browser state.
// Without a usable range in the link, the stored range for the file is used.
func (c *NavigationController) HandleLink(ctx context.Context, ev LinkEvent) error {
	link, sel, err := c.resolveLink(ctx, ev.Href)
	if err != nil {
		return err
	}

	target := c.Resolver.Resolve(ev.Modifiers, ev.Origin, c.SubNavigationDisabled())
	return c.Navigate(ctx, NavigateInput{
		FilePath:         link.FilePath,
		Selection:        sel,
		Target:           target,
		SaveBrowserState: true,
	})
}

// OpenOnRange opens a definition, typically from a go-to-definition action.
func (c *NavigationController) OpenOnRange(ctx context.Context, jump DefinitionJump) error {
	def := jump.Definition
	if def.Path == "" && def.Range == nil {
		return ErrNothingToOpen
	}

	filePath := def.Path
	sel := def.Range
	if filePath == "" || sel == nil {
		var origin PaneState
		if jump.Origin != nil {
			origin = c.Panes.Get(*jump.Origin)
		}
		if !origin.IsBound() {
			return fmt.Errorf("%w: definition is incomplete and has no origin editor", ErrNothingToOpen)
		}
		if filePath == "" {
			filePath = origin.Editor.FilePath()
		}
		if sel == nil {
			current := origin.Editor.Selection()
			sel = &current
		}
	}

	var target entity.NavigationTarget
	if jump.Target != nil {
		target = c.Resolver.ForOrigin(*jump.Target, jump.Origin)
	} else {
		target = c.Resolver.Resolve(jump.Modifiers, jump.Origin, c.SubNavigationDisabled())
	}

	logging.FromContext(ctx).Debug().
		Str("file", filePath).
		Str("target", target.String()).
		Msg("opening definition")

	return c.Navigate(ctx, NavigateInput{
		FilePath:         filePath,
		Selection:        sel,
		Target:           target,
		SaveBrowserState: true,
	})
}

// Open performs the initial load of a deep link into the main pane and
// replaces the current session-history entry with it.
func (c *NavigationController) Open(ctx context.Context, rawLink string) error {
	link, sel, err := c.resolveLink(ctx, rawLink)
	if err != nil {
		return err
	}

	if err := c.Navigate(ctx, NavigateInput{
		FilePath:  link.FilePath,
		Selection: sel,
		Target:    entity.TargetMain,
	}); err != nil {
		return err
	}

	if ed := c.Panes.Editor(entity.PaneMain); ed != nil && c.Bridge != nil {
		c.Bridge.Replace(ctx, c.snapshot(ed))
	}
	return nil
}

// ToggleSidePanel closes the secondary pane when open. Otherwise it opens the
// main pane's file and selection in the secondary pane and focuses it.
func (c *NavigationController) ToggleSidePanel(ctx context.Context) error {
	if c.Panes.IsOpen(entity.PaneSecondary) {
		return c.CloseSecondary(ctx)
	}

	main := c.Panes.Editor(entity.PaneMain)
	if main == nil {
		return fmt.Errorf("%w: main pane is empty", ErrNothingToOpen)
	}
	sel := main.Selection()
	if err := c.Navigate(ctx, NavigateInput{
		FilePath:  main.FilePath(),
		Selection: &sel,
		Target:    entity.TargetSecondary,
	}); err != nil {
		return err
	}

	if ed := c.Panes.Editor(entity.PaneSecondary); ed != nil {
		ed.Focus()
	}
	return nil
}

// CloseSecondary destroys the secondary editor after confirming any unsaved
// changes, hides the side panel and returns focus to the main editor.
func (c *NavigationController) CloseSecondary(ctx context.Context) error {
	if !c.Panes.IsOpen(entity.PaneSecondary) {
		return ErrNoSecondary
	}
	ctx = logging.WithPaneID(ctx, string(entity.PaneSecondary))

	release, ok := c.Panes.TryAcquire(entity.PaneSecondary)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaneBusy, entity.PaneSecondary)
	}
	defer release()

	if err := c.confirmDiscard(ctx, entity.PaneSecondary, c.Panes.Get(entity.PaneSecondary)); err != nil {
		return err
	}

	if ed := c.Panes.Unbind(ctx, entity.PaneSecondary); ed != nil {
		ed.Destroy()
	}
	if main := c.Panes.Editor(entity.PaneMain); main != nil {
		main.Focus()
	}

	logging.FromContext(ctx).Info().Msg("secondary pane closed")
	return nil
}

// resolveLink parses a deep link and picks its selection, falling back to the
// stored range of the file when the link has none or an unreadable one.
func (c *NavigationController) resolveLink(ctx context.Context, raw string) (deeplink.Link, *entity.Selection, error) {
	log := logging.FromContext(ctx)

	link, err := deeplink.Parse(raw)
	switch {
	case errors.Is(err, deeplink.ErrEmptyPath):
		return link, nil, fmt.Errorf("%w: %w", ErrNothingToOpen, err)
	case errors.Is(err, deeplink.ErrMalformedFragment):
		log.Warn().Err(err).Str("href", raw).Msg("invalid hash in link")
	case err != nil:
		return link, nil, fmt.Errorf("failed to parse link: %w", err)
	}

	sel := link.Selection
	if sel == nil {
		if entry, ok := c.History.Lookup(ctx, link.FilePath); ok {
			sel = entry.Location.Selection
		}
	}
	return link, sel, nil
}
