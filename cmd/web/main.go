package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/delivery-atlas/pkg/server"
	"github.com/de-tools/delivery-atlas/pkg/services/analytics"
	"github.com/de-tools/delivery-atlas/pkg/services/charts"
	"github.com/de-tools/delivery-atlas/pkg/services/config"
	"github.com/de-tools/delivery-atlas/pkg/services/report"
	"github.com/de-tools/delivery-atlas/pkg/store/csvfile"
)

var (
	cfgPath  string
	dataPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the delivery analytics dashboard server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file")
	rootCmd.Flags().StringVarP(&dataPath, "file", "f", "",
		"Path to the delivery orders CSV file (overrides DATASET_PATH)")

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

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if dataPath == "" {
		dataPath = os.Getenv("DATASET_PATH")
	}
	if dataPath == "" {
		logger.Error().Msg("no dataset supplied: pass --file or set DATASET_PATH")
		os.Exit(1)
	}

	ds, err := csvfile.LoadDataset(dataPath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Info().
		Str("source", ds.Source).
		Int("orders", ds.Len()).
		Msg("dataset loaded")

	analyzer := analytics.NewAnalyzer(ds)
	renderer := charts.NewRenderer(ds)
	assembler := report.NewAssembler(
		renderer,
		analyzer.Summary(),
		analyzer.PlatformPerformance(),
		cfg.ReportSettings(),
	)

	host := cfg.Server.Host
	port := cfg.Server.Port
	if env := os.Getenv("SERVER_HOST"); env != "" {
		host = env
	}
	if env := os.Getenv("SERVER_PORT"); env != "" {
		port = env
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Analyzer:  analyzer,
			Renderer:  renderer,
			Assembler: assembler,
			Logger:    logger,
		},
	})

	return api.Start()
}
