package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/collegelist/internal/cli/pagination"
	"github.com/rshade/collegelist/internal/college"
	"github.com/rshade/collegelist/internal/config"
	"github.com/rshade/collegelist/internal/listing"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// Name column limits for terminal output.
const (
	minNameWidth = 16
	// fixedColumnsWidth approximates the width of every column but the name.
	fixedColumnsWidth = 80
)

// listOutput is the structured form of the list command's output.
type listOutput struct {
	Meta     pagination.RevealMeta `json:"meta"     yaml:"meta"`
	Colleges []college.Record      `json:"colleges" yaml:"colleges"`
}

// NewListCmd creates the non-interactive list command. It replays the
// requested sort, reveals and filter on a fresh listing and prints the rows
// that would be visible.
func NewListCmd() *cobra.Command {
	params := pagination.NewListParams()
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the visible college rows",
		Long: `Prints the rows a user would see after sorting, scrolling and searching.

The first batch is always revealed; --reveal N requests N more batches and
--all reveals everything. The filter only narrows revealed rows, so combine
--filter with --all to search the whole dataset.`,
		Example: `  # First batch in dataset order
  collegelist list

  # Sort by placement, best first, and reveal one more batch
  collegelist list --sort placement:desc --reveal 1

  # All colleges whose name contains "institute", as YAML
  collegelist list --all --filter institute --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if !cmd.Flags().Changed("output") {
				outputFormat = cfg.Output.DefaultFormat
			}
			return executeList(cmd, cfg, *params, outputFormat)
		},
	}

	params.AddFlags(cmd)
	cmd.Flags().StringVar(&outputFormat, "output", config.DefaultOutputFormat, "output format: table, json, yaml")

	return cmd
}

func executeList(cmd *cobra.Command, cfg *config.Config, params pagination.ListParams, outputFormat string) error {
	if !isValidOutputFormat(outputFormat) {
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	p, err := loadPipeline(ctx, cfg)
	if err != nil {
		return err
	}

	revealed, err := pagination.Apply(p, params)
	if err != nil {
		return err
	}
	rows := p.Visible()
	meta := pagination.NewRevealMeta(p, len(rows))

	logger.Debug().Ctx(ctx).
		Int("reveal_requests", revealed).
		Int("visible", meta.Visible).
		Bool("exhausted", meta.Exhausted).
		Msg("list prepared")

	out := cmd.OutOrStdout()
	switch outputFormat {
	case config.OutputJSON:
		return renderListJSON(out, listOutput{Meta: meta, Colleges: rows})
	case config.OutputYAML:
		return renderListYAML(out, listOutput{Meta: meta, Colleges: rows})
	default:
		return renderListTable(out, rows, meta, nameWidth(out))
	}
}

func isValidOutputFormat(format string) bool {
	switch format {
	case config.OutputTable, config.OutputJSON, config.OutputYAML:
		return true
	default:
		return false
	}
}

// nameWidth returns the name column width for w, or 0 for no limit when w is
// not a terminal.
func nameWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(f) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return max(width-fixedColumnsWidth, minNameWidth)
}

func renderListJSON(w io.Writer, output listOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func renderListYAML(w io.Writer, output listOutput) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}

// renderListTable writes rows as an aligned table followed by a summary
// footer. maxName limits the name column; 0 means unlimited.
func renderListTable(w io.Writer, rows []college.Record, meta pagination.RevealMeta, maxName int) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "%s\tCOLLEGE\t%s\t%s\t%s\t%s\n",
		headerLabel("CD RANK", listing.FieldRank, meta),
		headerLabel("COURSE FEES", listing.FieldFees, meta),
		headerLabel("PLACEMENT", listing.FieldPlacement, meta),
		headerLabel("USER REVIEWS", listing.FieldUserReviews, meta),
		headerLabel("RANKING", listing.FieldRanking, meta),
	); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t-------\t-----------\t---------\t------------\t-------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, rec := range rows {
		name := rec.Name
		if rec.Featured {
			name += " [Featured]"
		}
		if _, err := fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\t%.1f/10\t%s\n",
			rec.Rank, truncateName(name, maxName), rec.Fees, rec.Placement, rec.UserReviews, rec.Ranking,
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "\n"+listFooter(meta))
	return err
}

// headerLabel appends a sort arrow to the active column.
func headerLabel(label string, field listing.Field, meta pagination.RevealMeta) string {
	if meta.SortField != field.String() {
		return label
	}
	if meta.SortOrder == pagination.SortOrderDesc {
		return label + " ▼"
	}
	return label + " ▲"
}

// listFooter summarizes the pagination state, e.g.
// "Showing 10 of 10 revealed (25 total) · more available".
func listFooter(meta pagination.RevealMeta) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	b.WriteString(p.Sprintf("Showing %d of %d revealed (%d total)", meta.Visible, meta.Revealed, meta.Total))
	if meta.Filter != "" {
		fmt.Fprintf(&b, " · filter %q", meta.Filter)
	}
	if meta.HasMore() {
		b.WriteString(" · more available")
	} else {
		b.WriteString(" · No more data")
	}
	return b.String()
}

func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if maxLen <= 0 || len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-3]) + "..."
}
