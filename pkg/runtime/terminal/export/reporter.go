package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/delivery-atlas/pkg/models/domain"
	"github.com/de-tools/delivery-atlas/pkg/services/report"
)

type TableConfig struct {
	KeyWidth    int
	ColumnWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		KeyWidth:    24,
		ColumnWidth: 18,
	}
}

// Reporter prints an analysis summary to the console as formatted text.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type summaryView struct {
	Source          string
	TotalOrders     string
	Platforms       string
	Categories      string
	AvgOrderValue   string
	AvgDeliveryTime string
	AvgRating       string
	Header          []string
	Rows            [][]string
}

func (c *Reporter) Handle(summary *domain.AnalysisSummary) error {
	view := summaryView{
		Source:          summary.Source,
		TotalOrders:     report.FormatCount(summary.Overview.TotalOrders),
		Platforms:       report.FormatCount(summary.Overview.Platforms),
		Categories:      report.FormatCount(summary.Overview.Categories),
		AvgOrderValue:   report.FormatValue(summary.AvgOrderValue, domain.ColumnCurrency),
		AvgDeliveryTime: report.FormatValue(summary.AvgDeliveryTime, domain.ColumnDuration),
		AvgRating:       report.FormatValue(summary.AvgRating, domain.ColumnRating),
	}

	stats := summary.Platforms
	view.Header = append(view.Header, stats.GroupColumn)
	for _, col := range stats.Columns {
		view.Header = append(view.Header, col.Name)
	}
	for _, key := range stats.Keys() {
		row := []string{key}
		for _, col := range stats.Columns {
			row = append(row, report.FormatValue(stats.Value(key, col.Name), col.Kind))
		}
		view.Rows = append(view.Rows, row)
	}

	funcMap := template.FuncMap{
		"formatRow": func(cells []string) string {
			parts := make([]string, len(cells))
			for i, cell := range cells {
				width := c.config.ColumnWidth
				if i == 0 {
					width = c.config.KeyWidth
				}
				parts[i] = fmt.Sprintf(" %-*s ", width, cell)
			}
			return "|" + strings.Join(parts, "|") + "|"
		},
		"separator": func() string {
			parts := make([]string, len(view.Header))
			for i := range view.Header {
				width := c.config.ColumnWidth
				if i == 0 {
					width = c.config.KeyWidth
				}
				parts[i] = strings.Repeat("-", width+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl := `
E-commerce Delivery Analytics ({{.Source}})

Total Orders: {{.TotalOrders}}
Platforms: {{.Platforms}}
Product Categories: {{.Categories}}
Avg Order Value: INR {{.AvgOrderValue}}
Avg Delivery Time: {{.AvgDeliveryTime}} min
Avg Service Rating: {{.AvgRating}}

{{separator}}
{{formatRow .Header}}
{{separator}}
{{range .Rows}}{{formatRow .}}
{{end}}{{separator}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}
