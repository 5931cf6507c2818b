package domain

// ChartKind identifies one of the fixed chart types the renderer supports.
type ChartKind string

const (
	ChartDeliveryHistogram ChartKind = "delivery_distribution"
	ChartCorrelation       ChartKind = "correlation_matrix"
	ChartValueScatter      ChartKind = "value_vs_delivery"
	ChartRatingBox         ChartKind = "rating_box"
	ChartCategoryBar       ChartKind = "category_bar"
	ChartPlatformBox       ChartKind = "platform_delivery_box"
)

// ChartKinds lists every supported kind in the order reports embed them.
func ChartKinds() []ChartKind {
	return []ChartKind{
		ChartDeliveryHistogram,
		ChartCorrelation,
		ChartValueScatter,
		ChartRatingBox,
		ChartCategoryBar,
		ChartPlatformBox,
	}
}

// ChartArtifact is an in-memory chart plus its title and kind, prior to
// being flattened into a raster image. Figure holds the renderer-specific
// chart object; only the renderer that produced the artifact knows how to
// serialize it.
type ChartArtifact struct {
	Name   string
	Title  string
	Kind   ChartKind
	Figure any
}
