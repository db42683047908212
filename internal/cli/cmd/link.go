package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/crumbtrail/internal/cli/styles"
	"github.com/bnema/crumbtrail/internal/domain/deeplink"
	"github.com/bnema/crumbtrail/internal/domain/entity"
)

var linkBase string

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Encode and decode deep links",
	Long:  `Deep links have the shape <base>?<path>#<start>,<end>; the fragment is optional.`,
}

var linkParseCmd = &cobra.Command{
	Use:   "parse <link>",
	Short: "Decode a deep link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		return parseLink(cmd.OutOrStdout(), styles.NewLinkRenderer(app.Theme), args[0])
	},
}

var linkFormatCmd = &cobra.Command{
	Use:   "format <path> [start end]",
	Short: "Build a deep link",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 3 {
			return fmt.Errorf("accepts a path and an optional start end pair, received %d args", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		base := linkBase
		if !cmd.Flags().Changed("base") {
			if app := GetApp(); app != nil {
				base = app.Config.Navigation.BasePath
			}
		}
		return formatLink(cmd.OutOrStdout(), base, args)
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
	linkCmd.AddCommand(linkParseCmd)
	linkCmd.AddCommand(linkFormatCmd)

	linkFormatCmd.Flags().StringVar(&linkBase, "base", deeplink.DefaultBasePath, "base path placed before the '?'")
}

// parseLink renders a decoded link. A malformed fragment is shown as a
// warning; a link without a path is an error.
func parseLink(out io.Writer, r *styles.LinkRenderer, raw string) error {
	link, err := deeplink.Parse(raw)
	var warn error
	switch {
	case errors.Is(err, deeplink.ErrMalformedFragment):
		warn = err
	case err != nil:
		return err
	}
	_, err = io.WriteString(out, r.RenderLink(link, warn))
	return err
}

func formatLink(out io.Writer, base string, args []string) error {
	var sel *entity.Selection
	if len(args) == 3 {
		start, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid start %q: %w", args[1], err)
		}
		end, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid end %q: %w", args[2], err)
		}
		sel = entity.NewSelection(start, end)
		if !sel.Valid() {
			return fmt.Errorf("invalid range %d,%d", start, end)
		}
	}
	_, err := fmt.Fprintln(out, deeplink.Format(base, args[0], sel))
	return err
}
