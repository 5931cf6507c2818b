package charts

import (
	"fmt"
	"math"

	"github.com/de-tools/delivery-atlas/pkg/services/analytics"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const histogramBins = 20

func (r *Renderer) deliveryHistogram() figure {
	var xs []float64
	for _, rec := range r.ds.Records {
		xs = append(xs, rec.DeliveryTime)
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	width := (hi - lo) / histogramBins
	if width == 0 {
		width = 1
	}

	counts := make([]int, histogramBins)
	for _, x := range xs {
		bin := int((x - lo) / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		counts[bin]++
	}

	bars := make([]chart.Value, histogramBins)
	for i, c := range counts {
		label := ""
		if i%4 == 0 {
			label = fmt.Sprintf("%.0f", lo+float64(i)*width)
		}
		bars[i] = chart.Value{Value: float64(c), Label: label}
	}

	return &chart.BarChart{
		Title:    "Delivery Time (Minutes)",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 18,
		Bars:     bars,
	}
}

func (r *Renderer) categoryBar() figure {
	table := r.an.CategoryInsights()

	var bars []chart.Value
	for _, key := range table.Keys() {
		bars = append(bars, chart.Value{
			Label: key,
			Value: table.Value(key, analytics.MetricAvgDeliveryTime),
		})
	}

	return &chart.BarChart{
		Title:    "Avg Delivery Time by Category",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		Bars:     bars,
	}
}

// correlationChart draws one bar per metric pair. A heatmap carries the
// same three coefficients, so a bar encoding loses nothing at this scale.
func (r *Renderer) correlationChart() figure {
	m := r.an.Correlation()

	var bars []chart.Value
	for i := 0; i < len(m.Metrics); i++ {
		for j := i + 1; j < len(m.Metrics); j++ {
			bars = append(bars, chart.Value{
				Label: fmt.Sprintf("%s / %s", m.Metrics[i], m.Metrics[j]),
				Value: m.Values[i][j],
			})
		}
	}

	return &chart.BarChart{
		Title:    "Pairwise Correlation",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		Bars:     bars,
	}
}

func (r *Renderer) valueScatter() figure {
	platforms := r.ds.Platforms()

	var series []chart.Series
	for i, platform := range platforms {
		var xs, ys []float64
		for _, rec := range r.ds.Records {
			if rec.Platform != platform {
				continue
			}
			xs = append(xs, rec.OrderValue)
			ys = append(ys, rec.DeliveryTime)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    platform,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    3,
				DotColor:    chart.GetDefaultColor(i),
			},
		})
	}

	return &chart.Chart{
		Title:  "Delivery Time vs Order Value",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: "Order Value (INR)"},
		YAxis:  chart.YAxis{Name: "Delivery Time (Minutes)"},
		Series: series,
	}
}

// boxChart draws a five-number summary per group: a thin whisker from min
// to max, a thick box from Q1 to Q3, and a median dot.
func (r *Renderer) boxChart(groups []analytics.Quartiles, yName string) figure {
	var (
		series []chart.Series
		ticks  []chart.Tick
	)
	for i, q := range groups {
		x := float64(i)
		ticks = append(ticks, chart.Tick{Value: x, Label: q.Group})
		color := chart.GetDefaultColor(i)

		series = append(series,
			chart.ContinuousSeries{
				XValues: []float64{x, x},
				YValues: []float64{q.Min, q.Max},
				Style:   chart.Style{StrokeWidth: 1, StrokeColor: color},
			},
			chart.ContinuousSeries{
				XValues: []float64{x, x},
				YValues: []float64{q.Q1, q.Q3},
				Style:   chart.Style{StrokeWidth: 14, StrokeColor: color.WithAlpha(120)},
			},
			chart.ContinuousSeries{
				XValues: []float64{x},
				YValues: []float64{q.Median},
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
					DotColor:    drawing.ColorBlack,
				},
			},
		)
	}

	return &chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(groups)) - 0.5},
		},
		YAxis:  chart.YAxis{Name: yName},
		Series: series,
	}
}
