package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/server"
	"github.com/edu-tools/mentor-dashboard/pkg/services/ingest"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	csvPath       string
	rosterPath    string
	expectedHours float64
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve the mentor dashboard as a read-only JSON API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&csvPath, "input", "i", "", "Path to the time tracking CSV export")
	rootCmd.Flags().StringVar(&rosterPath, "roster", "", "Path to roster.csv for name resolution")
	rootCmd.Flags().Float64Var(&expectedHours, "expected-hours", 0, "Expected number of hours per student per week")
	_ = rootCmd.MarkFlagRequired("input")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	var resolver *ingest.NameResolver
	if rosterPath != "" {
		var err error
		resolver, err = ingest.NewNameResolver(rosterPath, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("could not load roster; names will not be resolved")
			resolver = nil
		}
	}

	entries, err := ingest.ParseCSV(csvPath, resolver, logger)
	if err != nil {
		return fmt.Errorf("failed to parse time tracking data: %w", err)
	}
	logger.Info().Int("entries", len(entries)).Str("input", csvPath).Msg("batch loaded")

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Entries:         entries,
	})

	return api.Start()
}
