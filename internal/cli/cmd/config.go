package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/crumbtrail/internal/cli/styles"
	xdg "github.com/bnema/crumbtrail/internal/config"
	"github.com/bnema/crumbtrail/internal/infrastructure/config"
)

var (
	schemaOutput  string
	schemaInstall bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		if app.ConfigFile == "" {
			return fmt.Errorf("config file location unknown")
		}
		_, err := io.WriteString(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderConfigPath(app.ConfigFile))
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		path := schemaOutput
		if schemaInstall && path == "" {
			var err error
			if path, err = xdg.GetSchemaFile(); err != nil {
				return err
			}
		}
		return writeSchema(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme), path)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)

	configSchemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to a file instead of stdout")
	configSchemaCmd.Flags().BoolVar(&schemaInstall, "install", false, "write the schema next to the config file")
}

func writeSchema(out io.Writer, r *styles.ConfigRenderer, path string) error {
	if path != "" {
		if err := config.WriteSchemaFile(path); err != nil {
			return err
		}
		_, err := io.WriteString(out, r.RenderSchemaWritten(path))
		return err
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
