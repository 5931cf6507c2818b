package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-tools/delivery-atlas/pkg/models/domain"
	"github.com/de-tools/delivery-atlas/pkg/services/analytics"
	"github.com/de-tools/delivery-atlas/pkg/services/charts"
	"github.com/de-tools/delivery-atlas/pkg/services/config"
	"github.com/de-tools/delivery-atlas/pkg/services/report"
	"github.com/de-tools/delivery-atlas/pkg/store/csvfile"
)

type ReportCmd struct {
	filePath   string
	configPath string
	format     string
	chartList  string
	output     io.Writer
}

func NewReportCmd(output io.Writer) *cobra.Command {
	rc := &ReportCmd{output: output}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a PDF and/or Word analytics report",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.filePath, "file", "", "Path to the delivery orders CSV file")
	cmd.Flags().StringVar(&rc.configPath, "config", "", "Path to the configuration file")
	cmd.Flags().StringVar(&rc.format, "format", "both", "Report format: pdf, word or both")
	cmd.Flags().StringVar(&rc.chartList, "charts", "", "Comma-separated chart kinds to embed (default: all)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	formats, err := rc.formats()
	if err != nil {
		return err
	}

	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return err
	}

	ds, err := csvfile.LoadDataset(rc.filePath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	analyzer := analytics.NewAnalyzer(ds)
	renderer := charts.NewRenderer(ds)

	artifacts, err := rc.renderCharts(renderer)
	if err != nil {
		return err
	}

	assembler := report.NewAssembler(
		renderer,
		analyzer.Summary(),
		analyzer.PlatformPerformance(),
		cfg.ReportSettings(),
	)

	for _, format := range formats {
		path, err := assembler.Generate(cmd.Context(), format, artifacts)
		if err != nil {
			return fmt.Errorf("failed to generate %s report: %w", format, err)
		}
		fmt.Fprintf(rc.output, "Report written to %s\n", path)
	}
	return nil
}

func (rc *ReportCmd) formats() ([]domain.ReportFormat, error) {
	if rc.format == "both" {
		return []domain.ReportFormat{domain.FormatPDF, domain.FormatWord}, nil
	}
	format, err := domain.ParseReportFormat(rc.format)
	if err != nil {
		return nil, err
	}
	return []domain.ReportFormat{format}, nil
}

func (rc *ReportCmd) renderCharts(renderer *charts.Renderer) ([]domain.ChartArtifact, error) {
	if rc.chartList == "" {
		return renderer.RenderAll()
	}

	var artifacts []domain.ChartArtifact
	for _, kind := range strings.Split(rc.chartList, ",") {
		a, err := renderer.Render(domain.ChartKind(strings.TrimSpace(kind)))
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}
