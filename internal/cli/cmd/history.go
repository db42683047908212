package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/crumbtrail/internal/application/usecase"
	"github.com/bnema/crumbtrail/internal/cli"
	"github.com/bnema/crumbtrail/internal/cli/model"
	"github.com/bnema/crumbtrail/internal/cli/styles"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

var (
	historyJSON   bool
	historyPlain  bool
	historyList   bool
	historyFilter string
	historyMax    int
	clearYes      bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recent files",
	Long: `List the persisted recent-file history, newest first.

On a terminal an interactive browser opens with fuzzy filtering; enter prints
the selected deep link. Use --list for a styled listing, --plain or --json
for scripting.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recent-file history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().BoolVar(&historyPlain, "plain", false, "print tab-separated path and link lines")
	historyCmd.Flags().BoolVar(&historyList, "list", false, "print a styled list instead of the interactive browser")
	historyCmd.Flags().StringVarP(&historyFilter, "filter", "f", "", "fuzzy filter on file paths")
	historyCmd.Flags().IntVar(&historyMax, "max", 0, "maximum entries to show (0 for all)")

	historyClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation prompt")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	out := cmd.OutOrStdout()

	if historyJSON {
		return writeHistoryJSON(app, out, historyFilter, historyMax)
	}
	if historyPlain || historyList || !isTerminal(out) {
		return writeHistoryList(app, out, historyFilter, historyMax, !historyList)
	}
	return runHistoryTUI(app, out)
}

// runHistoryTUI runs the interactive history browser and prints the chosen link.
func runHistoryTUI(app *cli.App, out io.Writer) error {
	app.WatchConfig()
	m := model.NewHistoryModel(app.Ctx(), app.Theme, app.SearchHistoryUC, historyFilter)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run history browser: %w", err)
	}

	hm, ok := final.(model.HistoryModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if hm.Err() != nil {
		return hm.Err()
	}
	if link := hm.Selected(); link != "" {
		fmt.Fprintln(out, link)
	}
	return nil
}

func searchEntries(app *cli.App, query string, limit int) []entity.HistoryEntry {
	res := app.SearchHistoryUC.Search(app.Ctx(), usecase.SearchInput{Query: query, Limit: limit})
	entries := make([]entity.HistoryEntry, len(res.Matches))
	for i, m := range res.Matches {
		entries[i] = m.Entry
	}
	return entries
}

// writeHistoryJSON writes matching entries in their stored wire shape.
func writeHistoryJSON(app *cli.App, out io.Writer, query string, limit int) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(searchEntries(app, query, limit))
}

// writeHistoryList writes matching entries, tab-separated when plain is set.
func writeHistoryList(app *cli.App, out io.Writer, query string, limit int, plain bool) error {
	entries := searchEntries(app, query, limit)
	if plain {
		_, err := io.WriteString(out, styles.PlainEntries(entries))
		return err
	}
	_, err := io.WriteString(out, styles.NewHistoryRenderer(app.Theme).RenderEntries(entries))
	return err
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return clearHistory(app, cmd.InOrStdin(), cmd.OutOrStdout(), clearYes)
}

// clearHistory asks for confirmation on in unless yes is set.
func clearHistory(app *cli.App, in io.Reader, out io.Writer, yes bool) error {
	count := len(app.History.All(app.Ctx()))

	if !yes {
		fmt.Fprintf(out, "This will forget %d recent files. Continue? [y/N]: ", count)
		var response string
		_, _ = fmt.Fscanln(in, &response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Operation cancelled.")
			return nil
		}
	}

	if err := app.SearchHistoryUC.Clear(app.Ctx()); err != nil {
		return err
	}
	_, err := io.WriteString(out, styles.NewHistoryRenderer(app.Theme).RenderCleared(count))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
