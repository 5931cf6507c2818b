package domain

import "fmt"

// ReportFormat selects the output document type.
type ReportFormat string

const (
	FormatPDF  ReportFormat = "pdf"
	FormatWord ReportFormat = "word"
)

// Ext returns the file extension for the format, including the dot.
func (f ReportFormat) Ext() string {
	if f == FormatWord {
		return ".docx"
	}
	return ".pdf"
}

func ParseReportFormat(s string) (ReportFormat, error) {
	switch s {
	case "pdf":
		return FormatPDF, nil
	case "word", "docx":
		return FormatWord, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// AnalysisSummary is the console-report view of a single dataset run.
type AnalysisSummary struct {
	Source          string
	Overview        Overview
	AvgOrderValue   float64
	AvgDeliveryTime float64
	AvgRating       float64
	Platforms       *StatsTable
}
