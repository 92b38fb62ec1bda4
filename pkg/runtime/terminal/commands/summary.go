package commands

import (
	"os"

	"github.com/edu-tools/mentor-dashboard/pkg/export/terminal"
	"github.com/edu-tools/mentor-dashboard/pkg/services/ingest"
	"github.com/edu-tools/mentor-dashboard/pkg/services/report"
	"github.com/spf13/cobra"
)

type SummaryCmd struct {
	expectedHours float64
	rosterPath    string
	verbose       bool
}

// NewSummaryCmd renders the weekly reports as plain text without producing
// a PDF, for quick terminal inspection of a tracking export.
func NewSummaryCmd() *cobra.Command {
	sc := &SummaryCmd{}
	cmd := &cobra.Command{
		Use:   "summary <csv-file>",
		Short: "Print weekly report summaries to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().Float64Var(&sc.expectedHours, "expected-hours", 0, "Expected number of hours per student per week")
	cmd.Flags().StringVar(&sc.rosterPath, "roster", "", "Path to roster.csv for name resolution")
	cmd.Flags().BoolVar(&sc.verbose, "verbose", false, "Enable verbose output")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, args []string) error {
	logger := newLogger(sc.verbose)

	resolver := loadResolver(sc.rosterPath, logger)
	entries, err := ingest.ParseCSV(args[0], resolver, logger)
	if err != nil {
		return err
	}

	reports := report.BuildReports(entries)
	return terminal.NewReporter(os.Stdout, sc.expectedHours).Handle(reports, entries)
}
