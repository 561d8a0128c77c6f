package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/csv2html-cli/internal/output"
	"github.com/salmonumbrella/csv2html-cli/internal/report"
)

// groupSummary is one report section in the inspect output.
type groupSummary struct {
	Key  string `json:"key" yaml:"key"`
	Rows int    `json:"rows" yaml:"rows"`
}

// inspectSummary describes how a table would be split into report
// sections, without rendering anything.
type inspectSummary struct {
	Path       string         `json:"path" yaml:"path"`
	Columns    []string       `json:"columns" yaml:"columns"`
	GroupBy    string         `json:"group_by" yaml:"group_by"`
	TotalRows  int            `json:"total_rows" yaml:"total_rows"`
	MetaJoined bool           `json:"meta_joined" yaml:"meta_joined"`
	Groups     []groupSummary `json:"groups" yaml:"groups"`
}

// Table lays the summary out for the table and text formatters.
func (s inspectSummary) Table() output.Table {
	rows := make([][]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		rows = append(rows, []string{g.Key, strconv.Itoa(g.Rows)})
	}
	return output.Table{Headers: []string{"GROUP", "ROWS"}, Rows: rows}
}

func newInspectCmd() *cobra.Command {
	var (
		csvPath    string
		metaPath   string
		delimiter  string
		groupBy    string
		joinColumn string
		noMeta     bool
	)

	cmd := &cobra.Command{
		Use:     "inspect",
		Aliases: []string{"i"},
		Short:   "Show how a CSV table would be grouped, without rendering",
		Long: `Load a CSV (or XLSX) table, apply the meta join, and print the
resulting group layout. Useful for checking the grouping column and the
meta match rate before rendering.

Examples:
  c2h inspect --csv zoo.csv
  c2h inspect --csv zoo.csv -o json --jq '.groups[].key'
  c2h inspect --csv zoo.csv -o table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := ConfigFromContext(ctx)

			csv := firstNonEmpty(csvPath, cfg.CSVPath)
			if err := requireCSVPath(csv); err != nil {
				return err
			}

			meta := firstNonEmpty(metaPath, cfg.MetaPath)
			if noMeta {
				meta = ""
			}

			delim, err := resolveDelimiter(firstNonEmpty(delimiter, cfg.GetDelimiter()))
			if err != nil {
				return err
			}

			group := firstNonEmpty(groupBy, cfg.GetGroupBy())

			result, err := loadPipeline(pipelineParams{
				csvPath:    csv,
				metaPath:   meta,
				delimiter:  delim,
				groupBy:    group,
				joinColumn: firstNonEmpty(joinColumn, cfg.GetJoinColumn()),
			})
			if err != nil {
				return err
			}

			groups, err := report.GroupBy(result.table, group)
			if err != nil {
				return err
			}

			summary := inspectSummary{
				Path:       csv,
				Columns:    result.table.Columns,
				GroupBy:    group,
				TotalRows:  len(result.table.Rows),
				MetaJoined: result.joined,
			}
			for _, g := range groups {
				summary.Groups = append(summary.Groups, groupSummary{Key: g.Key, Rows: len(g.Rows)})
			}

			return printerForContext(ctx).Print(ctx, summary)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Primary CSV/XLSX file to inspect")
	cmd.Flags().StringVar(&metaPath, "meta", "", "Meta table joined in by model name")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV field delimiter (default ,)")
	cmd.Flags().StringVar(&groupBy, "group-by", "", `Column that partitions rows into sections (default "Task")`)
	cmd.Flags().StringVar(&joinColumn, "join-column", "", `Column matched against the meta table (default "Name")`)
	cmd.Flags().BoolVar(&noMeta, "no-meta", false, "Skip the meta join even when meta_path is configured")
	flagAlias(cmd.Flags(), "group-by", "group")

	return cmd
}
