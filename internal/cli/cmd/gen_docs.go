package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	xdg "github.com/bnema/crumbtrail/internal/config"
)

const docsDirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

By default, man pages are installed to $XDG_DATA_HOME/man/man1 so they are
available via 'man crumbtrail'. Run 'mandb' if the index is stale.

Examples:
  crumbtrail gen-docs                      # Install man pages
  crumbtrail gen-docs --format markdown    # Generate markdown into ./docs
  crumbtrail gen-docs --output ./man       # Generate to local directory`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := xdg.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}
	return generateDocs(cmd.OutOrStdout(), genDocsFormat, outputDir)
}

func generateDocs(out io.Writer, format, outputDir string) error {
	// Reproducible output.
	rootCmd.DisableAutoGenTag = true

	var ext string
	switch format {
	case "man":
		ext = ".1"
		if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		header := &doc.GenManHeader{
			Title:   "CRUMBTRAIL",
			Section: "1",
			Source:  "crumbtrail " + buildInfo.Version,
			Manual:  "Crumbtrail Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
	case "markdown":
		ext = ".md"
		if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}

	fmt.Fprintf(out, "Generated docs in %s\n", outputDir)

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}
