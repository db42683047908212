package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/bootstrap"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

var (
	// ErrUsage is wrapped when a command has the wrong arguments.
	ErrUsage = errors.New("bad command usage")
	// ErrUnknownCommand is wrapped for names the runner does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNoFocus is returned by editing commands when no editor has focus.
	ErrNoFocus = errors.New("no focused editor")
)

// Runner executes commands against a workspace.
type Runner struct {
	ws     *bootstrap.Workspace
	out    io.Writer
	render func(State) string
	strict bool

	failures int
}

// Option configures a Runner.
type Option func(*Runner)

// WithRenderer replaces the plain-text state renderer.
func WithRenderer(render func(State) string) Option {
	return func(r *Runner) { r.render = render }
}

// WithStrict stops at the first failing command.
func WithStrict(strict bool) Option {
	return func(r *Runner) { r.strict = strict }
}

// NewRunner creates a runner writing command output to out.
func NewRunner(ws *bootstrap.Workspace, out io.Writer, opts ...Option) *Runner {
	r := &Runner{ws: ws, out: out, render: RenderPlain}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Failures counts commands that returned an error.
func (r *Runner) Failures() int { return r.failures }

// Run executes cmds in order, settling deferred work after each one.
// Navigation failures are reported and skipped unless the runner is strict;
// usage errors always stop the run.
func (r *Runner) Run(ctx context.Context, cmds []Command) error {
	log := logging.FromContext(ctx)
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := r.exec(ctx, cmd)
		r.ws.Settle()
		if err == nil {
			continue
		}

		r.failures++
		if errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCommand) {
			return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd.Name, err)
		}
		log.Debug().Err(err).Int("line", cmd.Line).Str("command", cmd.Name).Msg("command failed")
		fmt.Fprintf(r.out, "line %d: %s: %v\n", cmd.Line, cmd.Name, err)
		if r.strict {
			return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd.Name, err)
		}
	}
	return nil
}

func (r *Runner) exec(ctx context.Context, cmd Command) error {
	c := r.ws.Controller
	switch cmd.Name {
	case "open":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("%w: open <link>", ErrUsage)
		}
		return c.Open(ctx, cmd.Args[0])
	case "link":
		return r.link(ctx, cmd)
	case "jump":
		return r.jump(ctx, cmd)
	case "back", "forward":
		return r.move(ctx, cmd)
	case "swap":
		return c.SwapPanes(ctx)
	case "toggle":
		return c.ToggleSidePanel(ctx)
	case "close":
		return c.CloseSecondary(ctx)
	case "type", "select", "save":
		return r.edit(cmd)
	case "confirm":
		if len(cmd.Args) != 1 || (cmd.Args[0] != "yes" && cmd.Args[0] != "no") {
			return fmt.Errorf("%w: confirm yes|no", ErrUsage)
		}
		r.ws.Confirmer.SetAccept(cmd.Args[0] == "yes")
		return nil
	case "state":
		_, err := io.WriteString(r.out, r.render(Snapshot(ctx, r.ws)))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}
}

func (r *Runner) link(ctx context.Context, cmd Command) error {
	if len(cmd.Args) != 1 {
		return fmt.Errorf("%w: link [--shift] [--ctrl] [--from pane] <href>", ErrUsage)
	}
	origin, err := originFlag(cmd)
	if err != nil {
		return err
	}
	return r.ws.Controller.HandleLink(ctx, usecase.LinkEvent{
		Href:      cmd.Args[0],
		Modifiers: modifiers(cmd),
		Origin:    origin,
	})
}

func (r *Runner) jump(ctx context.Context, cmd Command) error {
	const usage = "jump [--to target] [--from pane] [path] [start end]"

	// Without --from the focused editor is the origin.

	jump := usecase.DefinitionJump{Modifiers: modifiers(cmd)}
	origin, err := originFlag(cmd)
	if err != nil {
		return err
	}
	if origin == nil {
		if ed, ok := r.ws.Host.Focused(); ok {
			pane := ed.Pane()
			origin = &pane
		}
	}
	jump.Origin = origin

	if to, ok := cmd.Flags["to"]; ok {
		target, err := parseTarget(to)
		if err != nil {
			return err
		}
		jump.Target = &target
	}

	args := cmd.Args
	if len(args)%2 == 1 {
		jump.Definition.Path, args = args[0], args[1:]
	}
	switch len(args) {
	case 0:
	case 2:
		sel, err := parseSelection(args[0], args[1])
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrUsage, usage, err)
		}
		jump.Definition.Range = &sel
	default:
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return r.ws.Controller.OpenOnRange(ctx, jump)
}

func (r *Runner) move(ctx context.Context, cmd Command) error {
	mods := modifiers(cmd)
	var moved bool
	if cmd.Name == "back" {
		moved = r.ws.Session.Back(ctx, mods)
	} else {
		moved = r.ws.Session.Forward(ctx, mods)
	}
	if !moved {
		fmt.Fprintf(r.out, "line %d: %s: no session entry\n", cmd.Line, cmd.Name)
	}
	return nil
}

func (r *Runner) edit(cmd Command) error {
	ed, ok := r.ws.Host.Focused()
	if !ok {
		return ErrNoFocus
	}
	switch cmd.Name {
	case "type":
		if len(cmd.Args) != 1 {
			return fmt.Errorf("%w: type <text>", ErrUsage)
		}
		ed.Insert(cmd.Args[0])
	case "select":
		if len(cmd.Args) != 2 {
			return fmt.Errorf("%w: select <start> <end>", ErrUsage)
		}
		sel, err := parseSelection(cmd.Args[0], cmd.Args[1])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		ed.SetSelection(sel)
	case "save":
		ed.Save()
	}
	return nil
}

func modifiers(cmd Command) entity.Modifiers {
	return entity.Modifiers{CtrlOrMeta: cmd.Flag("ctrl"), Shift: cmd.Flag("shift")}
}

func originFlag(cmd Command) (*entity.PaneID, error) {
	from, ok := cmd.Flags["from"]
	if !ok {
		return nil, nil
	}
	pane := entity.PaneID(from)
	if !pane.Valid() {
		return nil, fmt.Errorf("%w: --from must be main or secondary, got %q", ErrUsage, from)
	}
	return &pane, nil
}

func parseTarget(s string) (entity.NavigationTarget, error) {
	switch s {
	case "main":
		return entity.TargetMain, nil
	case "secondary":
		return entity.TargetSecondary, nil
	case "tab":
		return entity.TargetNewTab, nil
	default:
		return 0, fmt.Errorf("%w: --to must be main, secondary or tab, got %q", ErrUsage, s)
	}
}

func parseSelection(start, end string) (entity.Selection, error) {
	s, err := strconv.Atoi(start)
	if err != nil {
		return entity.Selection{}, fmt.Errorf("start: %w", err)
	}
	e, err := strconv.Atoi(end)
	if err != nil {
		return entity.Selection{}, fmt.Errorf("end: %w", err)
	}
	return entity.Selection{Start: s, End: e}, nil
}
