package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
	"github.com/salmonumbrella/csv2html-cli/internal/render"
	"github.com/salmonumbrella/csv2html-cli/internal/report"
	"github.com/salmonumbrella/csv2html-cli/internal/ui"
	"github.com/salmonumbrella/csv2html-cli/internal/validate"
)

func newRenderCmd() *cobra.Command {
	var (
		csvPath     string
		metaPath    string
		outPath     string
		delimiter   string
		groupBy     string
		joinColumn  string
		title       string
		linkColumns string
		hideColumns string
		noMeta      bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:     "render",
		Aliases: []string{"r"},
		Short:   "Render a CSV table as a grouped HTML report",
		Long: `Render a CSV (or XLSX) table as a self-contained HTML report.

Rows are grouped into sections by the grouping column (default "Task").
Link columns (default Source, Compiled, onnx, json) are rendered as
short anchor labels pointing at the cell's URL. When a meta table is
configured, its fields are joined in by normalized model name before
rendering.

Flags fall back to the config file, so a fully configured setup runs as
just "c2h render".

Examples:
  c2h render --csv zoo.csv --out zoo.html
  c2h render --csv zoo.csv --meta models_meta.csv --out zoo.html
  c2h render --csv zoo.csv --group-by Category --hide-columns License
  c2h render --csv zoo.csv --dry-run`,
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

			out := firstNonEmpty(outPath, cfg.GetOutPath())
			if err := validate.HTMLPath("out", out); err != nil {
				return clierrors.NewUserError(err.Error(), "Point --out at an .html file")
			}

			delim, err := resolveDelimiter(firstNonEmpty(delimiter, cfg.GetDelimiter()))
			if err != nil {
				return err
			}

			for _, flag := range []struct{ name, value string }{
				{"link-columns", linkColumns},
				{"hide-columns", hideColumns},
			} {
				if err := validate.Columns(flag.name, flag.value); err != nil {
					return clierrors.NewUserError(err.Error(), "Use a comma-separated column list")
				}
			}

			group := firstNonEmpty(groupBy, cfg.GetGroupBy())
			join := firstNonEmpty(joinColumn, cfg.GetJoinColumn())

			result, err := loadPipeline(pipelineParams{
				csvPath:    csv,
				metaPath:   meta,
				delimiter:  delim,
				groupBy:    group,
				joinColumn: join,
			})
			if err != nil {
				return err
			}

			// The grouping column is checked before anything touches the
			// output path, so a failed run never clobbers a previous report.
			groups, err := report.GroupBy(result.table, group)
			if err != nil {
				return err
			}

			links := parseColumnList(linkColumns)
			if links == nil {
				links = cfg.GetLinkColumns()
			}
			hidden := parseColumnList(hideColumns)
			if hidden == nil {
				hidden = cfg.HideColumns
			}

			opts := render.Options{
				Title:       firstNonEmpty(title, cfg.GetTitle()),
				GroupColumn: group,
				HideColumns: hidden,
				Links:       report.NewLinkSet(links),
			}

			u := ui.FromContext(ctx)
			if result.joined && result.matched < len(result.table.Rows) {
				u.Warning("%d of %d rows have no meta match", len(result.table.Rows)-result.matched, len(result.table.Rows))
			}

			if dryRun {
				printRenderDryRun(ctx, csv, meta, out, opts, groups, result)
				return nil
			}

			if err := render.WriteFile(out, groups, result.table.Columns, opts); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			slog.Debug("wrote report", "path", out, "groups", len(groups), "rows", len(result.table.Rows))
			u.Success("wrote %s (%d groups, %d rows)", out, len(groups), len(result.table.Rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Primary CSV/XLSX file to convert")
	cmd.Flags().StringVar(&metaPath, "meta", "", "Meta table joined in by model name")
	cmd.Flags().StringVar(&outPath, "out", "", "Output HTML path (default report.html)")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV field delimiter (default ,)")
	cmd.Flags().StringVar(&groupBy, "group-by", "", `Column that partitions rows into sections (default "Task")`)
	cmd.Flags().StringVar(&joinColumn, "join-column", "", `Column matched against the meta table (default "Name")`)
	cmd.Flags().StringVar(&title, "title", "", `Report title (default "Model Zoo")`)
	cmd.Flags().StringVar(&linkColumns, "link-columns", "", "Columns rendered as anchor labels (default Source,Compiled,onnx,json)")
	cmd.Flags().StringVar(&hideColumns, "hide-columns", "", "Columns omitted from the report")
	cmd.Flags().BoolVar(&noMeta, "no-meta", false, "Skip the meta join even when meta_path is configured")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the conversion without writing the report")
	flagAlias(cmd.Flags(), "group-by", "group")
	flagAlias(cmd.Flags(), "link-columns", "links")
	flagAlias(cmd.Flags(), "hide-columns", "hide")

	return cmd
}
