package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/bnema/crumbtrail/internal/cli"
	"github.com/bnema/crumbtrail/internal/cli/styles"
	"github.com/bnema/crumbtrail/internal/infrastructure/config"
	"github.com/bnema/crumbtrail/internal/logging"
	"github.com/bnema/crumbtrail/internal/replay"
)

var (
	replayStrict  bool
	replayStyled  bool
	replayDiscard bool
	replaySource  string
	replayRoot    string
)

var replayCmd = &cobra.Command{
	Use:   "replay <script|->",
	Short: "Replay a navigation script against a headless editor host",
	Long: `Run a navigation script, one command per line. Lines starting with # are
comments.

  open <link>                        initial load into the main pane
  link [--shift] [--ctrl] [--from pane] <link>
  jump [--to main|secondary|tab] [--from pane] [path] [start end]
  back | forward [--shift] [--ctrl]  session history navigation
  swap | toggle | close              pane layout
  type <text> | select <start> <end> | save
  confirm yes|no                     answer to discard prompts
  state                              print panes, history and session

Files are read from disk. Binary checks and directory listings go to the
configured file server unless --source local is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVar(&replayStrict, "strict", false, "stop at the first failing command")
	replayCmd.Flags().BoolVar(&replayStyled, "styled", false, "render state with colors and borders")
	replayCmd.Flags().BoolVar(&replayDiscard, "discard", false, "accept discard prompts until a confirm command says otherwise")
	replayCmd.Flags().StringVar(&replaySource, "source", "", "file info source: http or local (default from config)")
	replayCmd.Flags().StringVar(&replayRoot, "root", "", "confine local file access to this directory")
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	in := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
	defer stop()

	return replayScript(ctx, app, in, cmd.OutOrStdout())
}

func replayScript(ctx context.Context, app *cli.App, in io.Reader, out io.Writer) error {
	cmds, err := replay.Parse(in)
	if err != nil {
		return err
	}

	ws, err := app.Workspace(cli.WorkspaceOptions{
		Root:           replayRoot,
		Source:         config.FileServerSource(replaySource),
		DiscardUnsaved: replayDiscard,
	})
	if err != nil {
		return err
	}

	opts := []replay.Option{replay.WithStrict(replayStrict)}
	if replayStyled {
		opts = append(opts, replay.WithRenderer(styles.NewReplayRenderer(app.Theme).RenderState))
	}
	runner := replay.NewRunner(ws, out, opts...)

	logging.FromContext(ctx).Debug().Int("commands", len(cmds)).Msg("replaying script")
	if err := runner.Run(ctx, cmds); err != nil {
		return err
	}
	if n := runner.Failures(); n > 0 {
		return fmt.Errorf("%d of %d commands failed", n, len(cmds))
	}
	return nil
}
