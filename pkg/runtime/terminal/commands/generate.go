package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/edu-tools/mentor-dashboard/pkg/charts"
	"github.com/edu-tools/mentor-dashboard/pkg/export/pdf"
	"github.com/edu-tools/mentor-dashboard/pkg/export/terminal"
	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/edu-tools/mentor-dashboard/pkg/services/config"
	"github.com/edu-tools/mentor-dashboard/pkg/services/ingest"
	"github.com/edu-tools/mentor-dashboard/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const defaultOutput = "mentor_dashboard_report.pdf"

type GenerateCmd struct {
	output        string
	verbose       bool
	splitByTeam   bool
	expectedHours float64
	rosterPath    string
	configPath    string
	out           *os.File
}

func NewGenerateCmd() *cobra.Command {
	gc := &GenerateCmd{out: os.Stdout}
	cmd := &cobra.Command{
		Use:   "generate <csv-file>",
		Short: "Generate the weekly PDF dashboard from a time tracking export",
		Args:  cobra.ExactArgs(1),
		RunE:  gc.run,
	}

	cmd.Flags().StringVarP(&gc.output, "output", "o", defaultOutput, "Output PDF file path")
	cmd.Flags().BoolVar(&gc.verbose, "verbose", false, "Enable verbose output")
	cmd.Flags().BoolVar(&gc.splitByTeam, "split-by-team", false, "Create a separate PDF file for each team")
	cmd.Flags().Float64Var(&gc.expectedHours, "expected-hours", 0, "Expected number of hours per student per week")
	cmd.Flags().StringVar(&gc.rosterPath, "roster", "", "Path to roster.csv for name resolution")
	cmd.Flags().StringVar(&gc.configPath, "config", "", "Path to a YAML settings file; flags override it")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	if err := gc.applySettings(cmd); err != nil {
		return err
	}
	if !cmd.Flags().Changed("expected-hours") && gc.expectedHours == 0 {
		return fmt.Errorf("--expected-hours is required")
	}

	logger := newLogger(gc.verbose)
	csvPath := args[0]

	if _, err := os.Stat(csvPath); err != nil {
		return fmt.Errorf("CSV file %q not found", csvPath)
	}
	if dir := filepath.Dir(gc.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	resolver := loadResolver(gc.rosterPath, logger)
	entries, err := ingest.ParseCSV(csvPath, resolver, logger)
	if err != nil {
		return err
	}

	if gc.verbose {
		gc.printBatchStats(entries)
		reports := report.BuildReports(entries)
		if err := terminal.NewReporter(gc.out, gc.expectedHours).Handle(reports, entries); err != nil {
			logger.Warn().Err(err).Msg("could not render terminal summary")
		}
	}

	gen := &pdf.Generator{
		ExpectedHours: gc.expectedHours,
		Registry:      charts.NewColorRegistry(),
		Logger:        logger,
	}

	if gc.splitByTeam {
		outputs, err := gen.GenerateSplitByTeam(entries, gc.output)
		if err != nil {
			return fmt.Errorf("failed to generate team reports: %w", err)
		}
		fmt.Fprintln(gc.out, "Team reports successfully generated:")
		teams := lo.Keys(outputs)
		sort.Strings(teams)
		for _, team := range teams {
			fmt.Fprintf(gc.out, "  %s: %s\n", team, outputs[team])
		}
		return nil
	}

	if err := gen.Generate(entries, gc.output); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	fmt.Fprintf(gc.out, "Report successfully generated: %s\n", gc.output)
	return nil
}

// applySettings merges the optional settings file underneath explicit flags.
func (gc *GenerateCmd) applySettings(cmd *cobra.Command) error {
	if gc.configPath == "" {
		return nil
	}

	settings, err := config.LoadSettings(gc.configPath)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("expected-hours") && settings.ExpectedHours > 0 {
		gc.expectedHours = settings.ExpectedHours
	}
	if !cmd.Flags().Changed("output") && settings.Output != "" {
		gc.output = settings.Output
	}
	if !cmd.Flags().Changed("roster") && settings.Roster != "" {
		gc.rosterPath = settings.Roster
	}
	if !cmd.Flags().Changed("split-by-team") {
		gc.splitByTeam = gc.splitByTeam || settings.SplitByTeam
	}
	return nil
}

func (gc *GenerateCmd) printBatchStats(entries []domain.TimeEntry) {
	teams := lo.Uniq(lo.Map(entries, func(e domain.TimeEntry, _ int) string { return e.Group }))
	sort.Strings(teams)
	users := lo.Uniq(lo.Map(entries, func(e domain.TimeEntry, _ int) string { return e.User }))
	total := lo.SumBy(entries, func(e domain.TimeEntry) float64 { return e.DurationHours })

	fmt.Fprintf(gc.out, "Parsed %d time entries\n", len(entries))
	fmt.Fprintf(gc.out, "Teams: %v\n", teams)
	fmt.Fprintf(gc.out, "Users: %d\n", len(users))
	fmt.Fprintf(gc.out, "Total hours logged: %.1f\n\n", total)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// loadResolver builds the roster name resolver. A missing or malformed
// roster degrades to raw identifiers with a warning, never a fatal error.
func loadResolver(rosterPath string, logger zerolog.Logger) *ingest.NameResolver {
	if rosterPath == "" {
		return nil
	}

	resolver, err := ingest.NewNameResolver(rosterPath, logger)
	if err != nil {
		logger.Warn().Err(err).Str("roster", rosterPath).Msg("could not load roster; names will not be resolved")
		return nil
	}

	names, rosterEntries := resolver.Stats()
	logger.Info().Int("names", names).Int("roster_entries", rosterEntries).Msg("name resolver loaded")
	return resolver
}
