package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/delivery-atlas/pkg/models/domain"
	"github.com/de-tools/delivery-atlas/pkg/services/analytics"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Chart raster dimensions. 576x384 px is 6x4 inches at 96 DPI, so Word
// embeds the images at their natural 6-inch width.
const (
	chartWidth  = 576
	chartHeight = 384
)

// figure is the subset of go-chart's chart types the renderer produces.
// Both chart.Chart and chart.BarChart satisfy it.
type figure interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Renderer builds chart artifacts from a dataset and serializes them to
// PNG files.
type Renderer struct {
	ds *domain.Dataset
	an *analytics.Analyzer
}

func NewRenderer(ds *domain.Dataset) *Renderer {
	return &Renderer{ds: ds, an: analytics.NewAnalyzer(ds)}
}

// Render produces the artifact for one chart kind. An empty dataset has
// nothing to plot and is rejected before any figure is built.
func (r *Renderer) Render(kind domain.ChartKind) (domain.ChartArtifact, error) {
	if r.ds.Len() == 0 {
		return domain.ChartArtifact{}, fmt.Errorf("cannot render chart %q: dataset has no records", kind)
	}

	var (
		title string
		fig   figure
	)
	switch kind {
	case domain.ChartDeliveryHistogram:
		title = "Distribution of Delivery Times"
		fig = r.deliveryHistogram()
	case domain.ChartCorrelation:
		title = "Correlation Between Numeric Metrics"
		fig = r.correlationChart()
	case domain.ChartValueScatter:
		title = "Delivery Time vs Order Value by Platform"
		fig = r.valueScatter()
	case domain.ChartRatingBox:
		title = "Service Rating Distribution by Platform"
		fig = r.boxChart(r.an.RatingQuartiles(), "Service Rating")
	case domain.ChartCategoryBar:
		title = "Avg Delivery Time by Product Category"
		fig = r.categoryBar()
	case domain.ChartPlatformBox:
		title = "Delivery Time Distribution by Platform"
		fig = r.boxChart(r.an.DeliveryQuartiles(), "Delivery Time (Minutes)")
	default:
		return domain.ChartArtifact{}, fmt.Errorf("unsupported chart kind %q", kind)
	}

	return domain.ChartArtifact{
		Name:   string(kind),
		Title:  title,
		Kind:   kind,
		Figure: fig,
	}, nil
}

// RenderAll produces the full default chart set in report embedding order.
func (r *Renderer) RenderAll() ([]domain.ChartArtifact, error) {
	var artifacts []domain.ChartArtifact
	for _, kind := range domain.ChartKinds() {
		a, err := r.Render(kind)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// Export flattens an artifact into a PNG file at path.
func (r *Renderer) Export(artifact domain.ChartArtifact, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := r.ExportTo(artifact, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// ExportTo streams the artifact's PNG bytes to w. Used by the dashboard
// to serve charts without touching disk.
func (r *Renderer) ExportTo(artifact domain.ChartArtifact, w io.Writer) error {
	fig, ok := artifact.Figure.(figure)
	if !ok || fig == nil {
		return fmt.Errorf("chart %q carries no renderable figure", artifact.Name)
	}
	if err := fig.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart %q: %w", artifact.Name, err)
	}
	return nil
}
