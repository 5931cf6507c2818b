package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/delivery-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/delivery-atlas/pkg/services/analytics"
	"github.com/de-tools/delivery-atlas/pkg/store/csvfile"
)

type AnalyzeCmd struct {
	filePath string
	reporter *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print summary statistics for a delivery orders CSV",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.filePath, "file", "", "Path to the delivery orders CSV file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ds, err := csvfile.LoadDataset(ac.filePath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	analyzer := analytics.NewAnalyzer(ds)
	return ac.reporter.Handle(analyzer.ConsoleSummary())
}
