package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/lead-hunter/internal/model"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List enrichment run history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		runs, err := st.ListRuns(ctx, limit)
		if err != nil {
			return eris.Wrap(err, "list runs")
		}

		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs found.")
			return nil
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}

		formatRunsList(os.Stdout, runs)
		return nil
	},
}

func init() {
	runsCmd.Flags().Int("limit", 20, "max number of runs to display")
	runsCmd.Flags().Bool("json", false, "output runs as JSON")
	rootCmd.AddCommand(runsCmd)
}

// formatRunsList writes a tabular list of runs to w.
func formatRunsList(out io.Writer, runs []model.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tCOMPANIES\tSAVED\tAPPENDED\tCREATED\tDURATION")
	_, _ = fmt.Fprintln(w, "--\t------\t---------\t-----\t--------\t-------\t--------")

	for _, r := range runs {
		companies, saved, appended := "-", "-", "-"
		dur := r.UpdatedAt.Sub(r.CreatedAt).Round(time.Second).String()
		if r.Summary != nil {
			companies = fmt.Sprintf("%d", r.Summary.Companies)
			saved = fmt.Sprintf("%d", r.Summary.Saved)
			appended = fmt.Sprintf("%d", r.Summary.RowsAppended)
			if r.Summary.Duration > 0 {
				dur = r.Summary.Duration.Round(time.Second).String()
			}
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			truncateID(r.ID),
			r.Status,
			companies,
			saved,
			appended,
			r.CreatedAt.Format("2006-01-02 15:04"),
			dur,
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
