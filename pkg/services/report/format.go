package report

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/de-tools/delivery-atlas/pkg/models/domain"
)

// FormatValue renders a metric cell. Currency and duration values get two
// decimals with thousands separators (1234.5 -> "1,234.50"), counts are
// whole numbers ("1,235"), ratings two plain decimals. Output is
// locale-independent.
func FormatValue(v float64, kind domain.ColumnKind) string {
	switch kind {
	case domain.ColumnCount:
		return humanize.Comma(int64(math.Round(v)))
	case domain.ColumnRating:
		return humanize.FormatFloat("###.##", v)
	default:
		return humanize.FormatFloat("#,###.##", v)
	}
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
