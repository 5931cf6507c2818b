package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/delivery-atlas/pkg/models/api"
	"github.com/de-tools/delivery-atlas/pkg/models/domain"
	"github.com/de-tools/delivery-atlas/pkg/services/analytics"
	"github.com/de-tools/delivery-atlas/pkg/services/charts"
	"github.com/de-tools/delivery-atlas/pkg/services/report"
)

func testDataset() *domain.Dataset {
	day := func(d int) time.Time {
		return time.Date(2025, 1, d, 12, 0, 0, 0, time.UTC)
	}
	return &domain.Dataset{
		Source: "test.csv",
		Records: []domain.OrderRecord{
			{OrderID: "1", Platform: "Zepto", Category: "Grocery", OrderValue: 100, DeliveryTime: 10, Rating: 4.5, Timestamp: day(16)},
			{OrderID: "2", Platform: "Swiggy", Category: "Snacks", OrderValue: 220, DeliveryTime: 25, Rating: 3.9, Timestamp: day(15)},
			{OrderID: "3", Platform: "Zepto", Category: "Dairy", OrderValue: 150, DeliveryTime: 14, Rating: 4.1, Timestamp: day(16)},
			{OrderID: "4", Platform: "Swiggy", Category: "Grocery", OrderValue: 310, DeliveryTime: 32, Rating: 3.5, Timestamp: day(15)},
		},
	}
}

func testServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	ds := testDataset()
	analyzer := analytics.NewAnalyzer(ds)
	renderer := charts.NewRenderer(ds)

	base := t.TempDir()
	reportsDir := filepath.Join(base, "reports")
	assembler := report.NewAssembler(
		renderer,
		analyzer.Summary(),
		analyzer.PlatformPerformance(),
		report.Settings{
			ReportsDir: reportsDir,
			TempDir:    filepath.Join(base, "temp"),
		},
	)

	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Analyzer:  analyzer,
			Renderer:  renderer,
			Assembler: assembler,
			Logger:    zerolog.Nop(),
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, reportsDir
}

func TestGetOverview(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/overview")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var overview api.Overview
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&overview))
	assert.Equal(t, api.Overview{TotalOrders: 4, Platforms: 2, Categories: 3}, overview)
}

func TestGetPlatforms(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/platforms")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var table api.StatsTable
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&table))

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Zepto", table.Rows[0].Key)
	assert.Equal(t, "Swiggy", table.Rows[1].Key)
	assert.Equal(t, 2.0, table.Rows[0].Values[analytics.MetricTotalOrders])
}

func TestGetPlatforms_Detail(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/platforms?detail=true")
	require.NoError(t, err)
	defer resp.Body.Close()

	var table api.StatsTable
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&table))
	assert.Contains(t, table.Columns, analytics.MetricMinDeliveryTime)
	assert.Contains(t, table.Columns, analytics.MetricMaxDeliveryTime)
}

func TestGetTrends(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/trends")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var table api.StatsTable
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&table))
	assert.Equal(t, "Date", table.GroupColumn)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "2025-01-15", table.Rows[0].Key)
	assert.Equal(t, "2025-01-16", table.Rows[1].Key)
	assert.Equal(t, 2.0, table.Rows[0].Values[analytics.MetricTotalOrders])
}

func TestGetOrders(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/orders")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var points []api.OrderPoint
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&points))
	require.Len(t, points, 4)
	assert.Equal(t, "1", points[0].OrderID)
	assert.Equal(t, "Zepto", points[0].Platform)

	var sum float64
	for _, p := range points {
		sum += p.ValueZScore
	}
	assert.InDelta(t, 0.0, sum, 1e-9)
}

func TestGetCorrelation(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/correlation")
	require.NoError(t, err)
	defer resp.Body.Close()

	var m api.Correlation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	assert.Equal(t, []string{"Order Value", "Delivery Time", "Service Rating"}, m.Metrics)
	require.Len(t, m.Values, 3)
	assert.InDelta(t, 1.0, m.Values[0][0], 1e-9)
}

func TestGetChart(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/charts/delivery_distribution")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte{0x89, 'P', 'N', 'G'}))
}

func TestGetChart_UnknownKind(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/charts/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGenerateReport_BadFormat(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/reports?format=odt", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateReport_PDF(t *testing.T) {
	srv, reportsDir := testServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/reports?format=pdf", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result api.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.FileExists(t, result.Path)
	assert.Equal(t, reportsDir, filepath.Dir(result.Path))

	entries, err := os.ReadDir(reportsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
