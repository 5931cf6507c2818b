package report

import "github.com/de-tools/delivery-atlas/pkg/models/domain"

// Section titles shared by both output formats. Content parity between the
// PDF and Word forms is a hard requirement: both are built from the same
// document value.
const (
	sectionOverview       = "Dataset Overview"
	sectionPlatform       = "Platform Performance Metrics"
	sectionVisualizations = "Visualizations"
)

// document is the format-independent report: every section, row and cell
// already ordered and formatted. The PDF and Word writers only lay it out.
type document struct {
	Title    string
	Author   string
	Overview [][2]string
	Platform table
	Images   []image
}

type table struct {
	Header []string
	Rows   [][]string
}

type image struct {
	Title string
	Path  string
}

// buildDocument performs the shared statistics-to-rows transformation.
// Platform rows follow the stats table's key order exactly.
func buildDocument(title, author string, overview domain.Overview, stats *domain.StatsTable, images []image) *document {
	doc := &document{
		Title:  title,
		Author: author,
		Overview: [][2]string{
			{"Total Orders", FormatCount(overview.TotalOrders)},
			{"Number of Platforms", FormatCount(overview.Platforms)},
			{"Number of Product Categories", FormatCount(overview.Categories)},
		},
		Images: images,
	}

	doc.Platform.Header = append(doc.Platform.Header, stats.GroupColumn)
	for _, col := range stats.Columns {
		doc.Platform.Header = append(doc.Platform.Header, col.Name)
	}
	for _, key := range stats.Keys() {
		row := []string{key}
		for _, col := range stats.Columns {
			row = append(row, FormatValue(stats.Value(key, col.Name), col.Kind))
		}
		doc.Platform.Rows = append(doc.Platform.Rows, row)
	}

	return doc
}
