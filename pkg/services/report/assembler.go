package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/delivery-atlas/pkg/models/domain"
)

// ChartExporter serializes a chart artifact to a raster image file.
// Implemented by the charts renderer.
type ChartExporter interface {
	Export(artifact domain.ChartArtifact, path string) error
}

// Settings configure where and under what titles reports are written.
type Settings struct {
	ReportsDir string
	TempDir    string
	Title      string
	Author     string

	// CleanupTempImages removes the per-chart PNG files after a report has
	// been published. Off by default: the images double as debug output.
	CleanupTempImages bool
}

const (
	DefaultTitle  = "E-commerce Delivery Analytics Report"
	DefaultAuthor = "Generated by delivery-atlas"

	baseName = "ecommerce_analysis_report"
)

// Assembler turns an overview, a platform stats table and a set of chart
// artifacts into a persisted PDF or Word document. One assembler may serve
// concurrent Generate calls: all per-call state is kept on the stack.
type Assembler struct {
	exporter ChartExporter
	overview domain.Overview
	stats    *domain.StatsTable
	settings Settings

	now func() time.Time
}

func NewAssembler(exporter ChartExporter, overview domain.Overview, stats *domain.StatsTable, settings Settings) *Assembler {
	if settings.ReportsDir == "" {
		settings.ReportsDir = filepath.Join("output", "reports")
	}
	if settings.TempDir == "" {
		settings.TempDir = filepath.Join("output", "temp")
	}
	if settings.Title == "" {
		settings.Title = DefaultTitle
	}
	if settings.Author == "" {
		settings.Author = DefaultAuthor
	}
	return &Assembler{
		exporter: exporter,
		overview: overview,
		stats:    stats,
		settings: settings,
		now:      time.Now,
	}
}

// Generate writes one report document and returns its path. The returned
// path always names an existing file: the document is written to a
// temporary path first and renamed into place on success, so a failed call
// never leaves a partial document visible.
func (a *Assembler) Generate(ctx context.Context, format domain.ReportFormat, charts []domain.ChartArtifact) (string, error) {
	logger := zerolog.Ctx(ctx)

	var write func(*document, string) error
	switch format {
	case domain.FormatPDF:
		write = writePDF
	case domain.FormatWord:
		write = writeWord
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}

	for _, dir := range []string{a.settings.ReportsDir, a.settings.TempDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", &WriteError{Path: dir, Err: err}
		}
	}

	images, err := a.exportCharts(charts)
	if err != nil {
		return "", err
	}

	doc := buildDocument(a.settings.Title, a.settings.Author, a.overview, a.stats, images)

	path, err := a.reservePath(format)
	if err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(a.settings.ReportsDir, filepath.Base(path)+".*.tmp")
	if err != nil {
		os.Remove(path)
		return "", &WriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := write(doc, tmpPath); err != nil {
		os.Remove(tmpPath)
		os.Remove(path)
		return "", &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		os.Remove(path)
		return "", &WriteError{Path: path, Err: err}
	}

	if a.settings.CleanupTempImages {
		for _, img := range images {
			if err := os.Remove(img.Path); err != nil {
				logger.Warn().Err(err).Str("image", img.Path).Msg("failed to remove temp image")
			}
		}
	}

	logger.Info().
		Str("path", path).
		Str("format", string(format)).
		Int("charts", len(images)).
		Msg("report generated")
	return path, nil
}

// exportCharts serializes every artifact sequentially, in input order,
// before any document assembly starts. The image list is call-scoped so
// concurrent Generate calls never share it.
func (a *Assembler) exportCharts(charts []domain.ChartArtifact) ([]image, error) {
	var images []image
	for _, artifact := range charts {
		path := filepath.Join(a.settings.TempDir, artifact.Name+".png")
		if err := a.exporter.Export(artifact, path); err != nil {
			return nil, &RenderError{Chart: artifact.Name, Err: err}
		}
		images = append(images, image{Title: artifact.Title, Path: path})
	}
	return images, nil
}

// reservePath claims a timestamped file name by creating it exclusively,
// appending a numeric suffix when two generations land within the same
// second. Claiming the name up front means concurrent Generate calls can
// never pick the same path, and an existing report is never overwritten.
func (a *Assembler) reservePath(format domain.ReportFormat) (string, error) {
	stamp := a.now().Format("20060102_150405")
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s_%s", baseName, stamp)
		if i > 0 {
			name = fmt.Sprintf("%s_%d", name, i)
		}
		path := filepath.Join(a.settings.ReportsDir, name+format.Ext())
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			f.Close()
			return path, nil
		}
		if !os.IsExist(err) {
			return "", &WriteError{Path: path, Err: err}
		}
	}
}
