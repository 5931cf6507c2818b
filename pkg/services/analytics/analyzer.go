package analytics

import (
	"sort"

	"github.com/de-tools/delivery-atlas/pkg/models/domain"
	"gonum.org/v1/gonum/stat"
)

// Metric column names shared by the aggregate tables. The report and the
// dashboard render these verbatim.
const (
	MetricAvgOrderValue   = "Avg Order Value"
	MetricAvgDeliveryTime = "Avg Delivery Time"
	MetricAvgRating       = "Avg Rating"
	MetricTotalOrders     = "Total Orders"
	MetricMinDeliveryTime = "Min Delivery Time"
	MetricMaxDeliveryTime = "Max Delivery Time"
	MetricOrderValueStd   = "Order Value Std"
)

// Correlation metric labels, in matrix order.
var correlationMetrics = []string{"Order Value", "Delivery Time", "Service Rating"}

// Analyzer computes descriptive statistics over a loaded dataset.
// The dataset is treated as read-only; one analyzer serves any number of
// concurrent readers.
type Analyzer struct {
	ds *domain.Dataset
}

func NewAnalyzer(ds *domain.Dataset) *Analyzer {
	return &Analyzer{ds: ds}
}

// Summary reports the dataset-level counts. These are taken from the raw
// records, never summed from an aggregate table.
func (a *Analyzer) Summary() domain.Overview {
	return domain.Overview{
		TotalOrders: a.ds.Len(),
		Platforms:   len(a.ds.Platforms()),
		Categories:  len(a.ds.Categories()),
	}
}

// ConsoleSummary assembles the view the terminal reporter prints.
func (a *Analyzer) ConsoleSummary() *domain.AnalysisSummary {
	values, deliveries, ratings := a.metricColumns()
	return &domain.AnalysisSummary{
		Source:          a.ds.Source,
		Overview:        a.Summary(),
		AvgOrderValue:   stat.Mean(values, nil),
		AvgDeliveryTime: stat.Mean(deliveries, nil),
		AvgRating:       stat.Mean(ratings, nil),
		Platforms:       a.PlatformPerformance(),
	}
}

// PlatformPerformance aggregates per platform, rows in first-seen order.
func (a *Analyzer) PlatformPerformance() *domain.StatsTable {
	table := domain.NewStatsTable("Platform",
		domain.Column{Name: MetricAvgOrderValue, Kind: domain.ColumnCurrency},
		domain.Column{Name: MetricAvgDeliveryTime, Kind: domain.ColumnDuration},
		domain.Column{Name: MetricAvgRating, Kind: domain.ColumnRating},
		domain.Column{Name: MetricTotalOrders, Kind: domain.ColumnCount},
	)
	for _, g := range a.groupBy(byPlatform) {
		table.AddRow(g.key, map[string]float64{
			MetricAvgOrderValue:   stat.Mean(g.values, nil),
			MetricAvgDeliveryTime: stat.Mean(g.deliveries, nil),
			MetricAvgRating:       stat.Mean(g.ratings, nil),
			MetricTotalOrders:     float64(len(g.values)),
		})
	}
	return table
}

// PlatformDetail extends the performance table with min/max delivery time
// and value dispersion. Served by the dashboard's detail view.
func (a *Analyzer) PlatformDetail() *domain.StatsTable {
	table := domain.NewStatsTable("Platform",
		domain.Column{Name: MetricAvgOrderValue, Kind: domain.ColumnCurrency},
		domain.Column{Name: MetricOrderValueStd, Kind: domain.ColumnCurrency},
		domain.Column{Name: MetricAvgDeliveryTime, Kind: domain.ColumnDuration},
		domain.Column{Name: MetricMinDeliveryTime, Kind: domain.ColumnDuration},
		domain.Column{Name: MetricMaxDeliveryTime, Kind: domain.ColumnDuration},
		domain.Column{Name: MetricTotalOrders, Kind: domain.ColumnCount},
	)
	for _, g := range a.groupBy(byPlatform) {
		min, max := bounds(g.deliveries)
		table.AddRow(g.key, map[string]float64{
			MetricAvgOrderValue:   stat.Mean(g.values, nil),
			MetricOrderValueStd:   stat.StdDev(g.values, nil),
			MetricAvgDeliveryTime: stat.Mean(g.deliveries, nil),
			MetricMinDeliveryTime: min,
			MetricMaxDeliveryTime: max,
			MetricTotalOrders:     float64(len(g.values)),
		})
	}
	return table
}

// CategoryInsights aggregates per product category, rows in first-seen order.
func (a *Analyzer) CategoryInsights() *domain.StatsTable {
	table := domain.NewStatsTable("Product Category",
		domain.Column{Name: MetricAvgDeliveryTime, Kind: domain.ColumnDuration},
		domain.Column{Name: MetricAvgOrderValue, Kind: domain.ColumnCurrency},
		domain.Column{Name: MetricTotalOrders, Kind: domain.ColumnCount},
	)
	for _, g := range a.groupBy(byCategory) {
		table.AddRow(g.key, map[string]float64{
			MetricAvgDeliveryTime: stat.Mean(g.deliveries, nil),
			MetricAvgOrderValue:   stat.Mean(g.values, nil),
			MetricTotalOrders:     float64(len(g.values)),
		})
	}
	return table
}

// TimeSeries aggregates per calendar date, rows in chronological order.
// Records without a timestamp are skipped, so the table is empty when the
// dataset carries no timestamp column.
func (a *Analyzer) TimeSeries() *domain.StatsTable {
	table := domain.NewStatsTable("Date",
		domain.Column{Name: MetricAvgOrderValue, Kind: domain.ColumnCurrency},
		domain.Column{Name: MetricAvgDeliveryTime, Kind: domain.ColumnDuration},
		domain.Column{Name: MetricAvgRating, Kind: domain.ColumnRating},
		domain.Column{Name: MetricTotalOrders, Kind: domain.ColumnCount},
	)

	byDate := make(map[string]*group)
	for _, r := range a.ds.Records {
		if r.Timestamp.IsZero() {
			continue
		}
		day := r.Timestamp.Format("2006-01-02")
		g, ok := byDate[day]
		if !ok {
			g = &group{key: day}
			byDate[day] = g
		}
		g.values = append(g.values, r.OrderValue)
		g.deliveries = append(g.deliveries, r.DeliveryTime)
		g.ratings = append(g.ratings, r.Rating)
	}

	days := make([]string, 0, len(byDate))
	for day := range byDate {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		g := byDate[day]
		table.AddRow(day, map[string]float64{
			MetricAvgOrderValue:   stat.Mean(g.values, nil),
			MetricAvgDeliveryTime: stat.Mean(g.deliveries, nil),
			MetricAvgRating:       stat.Mean(g.ratings, nil),
			MetricTotalOrders:     float64(len(g.values)),
		})
	}
	return table
}

// Correlation computes the pairwise correlation matrix over order value,
// delivery time and service rating.
func (a *Analyzer) Correlation() domain.CorrelationMatrix {
	values, deliveries, ratings := a.metricColumns()
	cols := [][]float64{values, deliveries, ratings}

	m := domain.CorrelationMatrix{Metrics: correlationMetrics}
	for i := range cols {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = stat.Correlation(cols[i], cols[j], nil)
		}
		m.Values = append(m.Values, row)
	}
	return m
}

// Quartiles is a five-number summary for one group.
type Quartiles struct {
	Group                    string
	Min, Q1, Median, Q3, Max float64
}

// DeliveryQuartiles summarizes delivery time per platform, in first-seen
// platform order. Feeds the platform box chart.
func (a *Analyzer) DeliveryQuartiles() []Quartiles {
	return a.quartiles(func(g group) []float64 { return g.deliveries })
}

// RatingQuartiles summarizes service rating per platform.
func (a *Analyzer) RatingQuartiles() []Quartiles {
	return a.quartiles(func(g group) []float64 { return g.ratings })
}

func (a *Analyzer) quartiles(pick func(group) []float64) []Quartiles {
	var out []Quartiles
	for _, g := range a.groupBy(byPlatform) {
		xs := append([]float64(nil), pick(g)...)
		sort.Float64s(xs)
		out = append(out, Quartiles{
			Group:  g.key,
			Min:    xs[0],
			Q1:     stat.Quantile(0.25, stat.Empirical, xs, nil),
			Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
			Q3:     stat.Quantile(0.75, stat.Empirical, xs, nil),
			Max:    xs[len(xs)-1],
		})
	}
	return out
}

// NormalizedOrderValues returns z-scores of the order values, in record
// order.
func (a *Analyzer) NormalizedOrderValues() []float64 {
	values, _, _ := a.metricColumns()
	mean, std := stat.MeanStdDev(values, nil)
	out := make([]float64, len(values))
	if std == 0 {
		return out
	}
	for i, v := range values {
		out[i] = (v - mean) / std
	}
	return out
}

// Orders pairs every record with its order-value z-score, in record
// order. Feeds the dashboard's raw order listing.
func (a *Analyzer) Orders() []domain.ScoredOrder {
	zs := a.NormalizedOrderValues()
	out := make([]domain.ScoredOrder, len(zs))
	for i, r := range a.ds.Records {
		out[i] = domain.ScoredOrder{OrderRecord: r, ValueZScore: zs[i]}
	}
	return out
}

type group struct {
	key        string
	values     []float64
	deliveries []float64
	ratings    []float64
}

func byPlatform(r domain.OrderRecord) string { return r.Platform }
func byCategory(r domain.OrderRecord) string { return r.Category }

// groupBy buckets records by key, preserving first-seen key order.
func (a *Analyzer) groupBy(key func(domain.OrderRecord) string) []group {
	index := make(map[string]int)
	var groups []group
	for _, r := range a.ds.Records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].values = append(groups[i].values, r.OrderValue)
		groups[i].deliveries = append(groups[i].deliveries, r.DeliveryTime)
		groups[i].ratings = append(groups[i].ratings, r.Rating)
	}
	return groups
}

func (a *Analyzer) metricColumns() (values, deliveries, ratings []float64) {
	for _, r := range a.ds.Records {
		values = append(values, r.OrderValue)
		deliveries = append(deliveries, r.DeliveryTime)
		ratings = append(ratings, r.Rating)
	}
	return values, deliveries, ratings
}

func bounds(xs []float64) (min, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}
