package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/csv2html-cli/internal/config"
	"github.com/salmonumbrella/csv2html-cli/internal/errors"
	"github.com/salmonumbrella/csv2html-cli/internal/iocontext"
	"github.com/salmonumbrella/csv2html-cli/internal/logging"
	"github.com/salmonumbrella/csv2html-cli/internal/output"
	"github.com/salmonumbrella/csv2html-cli/internal/ui"
)

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		debugMode    bool
		outputFlag   string
		queryFlag    string
		jsonPathFlag string
		colorFlag    string
		configPath   string
		quietFlag    bool
	)

	rootCmd := &cobra.Command{
		Use:   "c2h",
		Short: "Convert CSV tables into grouped HTML reports",
		Long: `c2h converts a CSV (or XLSX) table into a styled, self-contained HTML
report. Rows are grouped into sections by a column such as "Task", link
columns are rendered as short anchor labels, and an optional meta table
is joined in by model name.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Cobra must not emit its own error/usage text; errors are
			// printed centrally with hints.
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true

			logging.Setup(debugMode, app.Stderr)

			// Load the config file (skip for config commands to avoid
			// acting on the file being edited)
			var cfg *config.Config
			if !isConfigCommand(cmd) {
				loaded, err := loadConfig(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loaded
			} else {
				cfg = &config.Config{}
			}

			formatRaw := outputFlag
			if !cmd.Flags().Changed("output") && cfg.Output != "" {
				formatRaw = cfg.Output
			}
			format, err := output.ParseFormat(formatRaw)
			if err != nil {
				return errors.NewUserError(err.Error(), "Example: -o json")
			}

			colorRaw := colorFlag
			if !cmd.Flags().Changed("color") && cfg.Color != "" {
				colorRaw = cfg.Color
			}
			mode, err := ui.ParseColorMode(colorRaw)
			if err != nil {
				return errors.NewUserError(err.Error(), "Use --color auto|always|never")
			}
			u := ui.NewWithWriter(app.Stderr, mode)
			u.SetQuiet(quietFlag)

			ctx := cmd.Context()
			ctx = iocontext.WithIO(ctx, app.Stdout, app.Stderr)
			ctx = output.WithFormat(ctx, format)
			ctx = output.WithQuery(ctx, queryFlag)
			ctx = output.WithJSONPath(ctx, jsonPathFlag)
			ctx = output.WithQuiet(ctx, quietFlag)
			ctx = ui.WithUI(ctx, u)
			ctx = WithConfig(ctx, cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Set version info
	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("c2h %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Output format for inspect: text|json|ndjson|jsonl|table|yaml")
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter JSON output")
	// --jq reads more naturally in scripts
	flagAlias(rootCmd.PersistentFlags(), "query", "jq")
	rootCmd.PersistentFlags().StringVar(&jsonPathFlag, "jsonpath", "", "JSONPath expression to extract from output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color mode: auto|always|never")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/csv2html/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress status messages")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// isConfigCommand reports whether cmd is `config` or one of its children.
func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

// loadConfig loads the config from an explicit path or the default one.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
