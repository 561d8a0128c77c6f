package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/csv2html-cli/internal/config"
	"github.com/salmonumbrella/csv2html-cli/internal/output"
	"github.com/salmonumbrella/csv2html-cli/internal/ui"
	"github.com/salmonumbrella/csv2html-cli/internal/validate"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage CLI configuration",
		Long:    `Manage the csv2html configuration file at ~/.config/csv2html/config.yaml`,
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current configuration from ~/.config/csv2html/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Marshal to YAML for display
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to format config: %w", err)
			}

			// If config is empty, show a helpful message
			if len(data) == 0 || string(data) == "{}\n" {
				path, _ := config.DefaultConfigPath()
				_, _ = fmt.Fprintf(out, "No configuration file found at %s\n", path)
				_, _ = fmt.Fprintln(out, "\nTo create a config file, use:")
				_, _ = fmt.Fprintln(out, "  c2h config set csv_path data.csv")
				return nil
			}

			_, _ = fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.config/csv2html/config.yaml

Supported keys:
  csv_path     - Default input CSV/XLSX file
  meta_path    - Default meta table joined in by model name
  out_path     - Default output HTML path
  delimiter    - CSV field delimiter (single character)
  group_by     - Column that partitions rows into sections
  join_column  - Column matched against the meta table
  title        - Report heading
  link_columns - Comma-separated columns rendered as anchors
  hide_columns - Comma-separated columns omitted from the report
  output       - Default output format (text, json, ndjson/jsonl, table, yaml)
  color        - Default color mode (auto, always, never)

Examples:
  c2h config set csv_path zoo.csv
  c2h config set group_by Category
  c2h config set link_columns Source,Compiled`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			key := args[0]
			value := args[1]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Set the value based on key
			switch key {
			case "csv_path":
				cfg.CSVPath = value
			case "meta_path":
				cfg.MetaPath = value
			case "out_path":
				if err := validate.HTMLPath("out_path", value); err != nil {
					return err
				}
				cfg.OutPath = value
			case "delimiter":
				if err := validate.Delimiter("delimiter", value); err != nil {
					return err
				}
				cfg.Delimiter = value
			case "group_by":
				cfg.GroupBy = value
			case "join_column":
				cfg.JoinColumn = value
			case "title":
				cfg.Title = value
			case "link_columns":
				if err := validate.Columns("link_columns", value); err != nil {
					return err
				}
				cfg.LinkColumns = parseColumnList(value)
			case "hide_columns":
				if err := validate.Columns("hide_columns", value); err != nil {
					return err
				}
				cfg.HideColumns = parseColumnList(value)
			case "output":
				format, err := output.ParseFormat(value)
				if err != nil {
					validFormats := []string{"text", "json", "ndjson", "jsonl", "table", "yaml"}
					return fmt.Errorf("invalid output format %q, must be one of: %s", value, strings.Join(validFormats, ", "))
				}
				cfg.Output = string(format)
				value = cfg.Output
			case "color":
				if _, err := ui.ParseColorMode(value); err != nil {
					return fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", value)
				}
				cfg.Color = value
			default:
				return fmt.Errorf("unknown config key %q\n\nSupported keys: csv_path, meta_path, out_path, delimiter, group_by, join_column, title, link_columns, hide_columns, output, color", key)
			}

			// Save the config
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := config.DefaultConfigPath()
			_, _ = fmt.Fprintf(out, "Set %s = %s in %s\n", key, value, path)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Long:  `Display the path to the configuration file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			path, err := config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("failed to determine config path: %w", err)
			}

			_, _ = fmt.Fprintln(out, path)

			// Show if file exists
			if _, err := os.Stat(path); err == nil {
				_, _ = fmt.Fprintln(out, "(file exists)")
			} else if os.IsNotExist(err) {
				_, _ = fmt.Fprintln(out, "(file does not exist)")
			}

			return nil
		},
	}
}
