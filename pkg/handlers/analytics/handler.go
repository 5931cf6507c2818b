package analytics

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/delivery-atlas/pkg/models/api"
	"github.com/de-tools/delivery-atlas/pkg/models/domain"
	"github.com/de-tools/delivery-atlas/pkg/services/analytics"
	"github.com/de-tools/delivery-atlas/pkg/services/charts"
	"github.com/de-tools/delivery-atlas/pkg/services/report"
)

type Handler struct {
	analyzer  *analytics.Analyzer
	renderer  *charts.Renderer
	assembler *report.Assembler
}

func NewHandler(analyzer *analytics.Analyzer, renderer *charts.Renderer, assembler *report.Assembler) *Handler {
	return &Handler{
		analyzer:  analyzer,
		renderer:  renderer,
		assembler: assembler,
	}
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	o := h.analyzer.Summary()
	writeJSON(r, w, api.Overview{
		TotalOrders: o.TotalOrders,
		Platforms:   o.Platforms,
		Categories:  o.Categories,
	})
}

func (h *Handler) GetPlatforms(w http.ResponseWriter, r *http.Request) {
	table := h.analyzer.PlatformPerformance()
	if r.URL.Query().Get("detail") == "true" {
		table = h.analyzer.PlatformDetail()
	}
	writeJSON(r, w, toAPITable(table))
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(r, w, toAPITable(h.analyzer.CategoryInsights()))
}

func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	writeJSON(r, w, toAPITable(h.analyzer.TimeSeries()))
}

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.analyzer.Orders()
	out := make([]api.OrderPoint, 0, len(orders))
	for _, o := range orders {
		out = append(out, api.OrderPoint{
			OrderID:      o.OrderID,
			Platform:     o.Platform,
			Category:     o.Category,
			OrderValue:   o.OrderValue,
			DeliveryTime: o.DeliveryTime,
			Rating:       o.Rating,
			ValueZScore:  o.ValueZScore,
		})
	}
	writeJSON(r, w, out)
}

func (h *Handler) GetCorrelation(w http.ResponseWriter, r *http.Request) {
	m := h.analyzer.Correlation()
	writeJSON(r, w, api.Correlation{Metrics: m.Metrics, Values: m.Values})
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	kind := domain.ChartKind(chi.URLParam(r, "kind"))

	artifact, err := h.renderer.Render(kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := h.renderer.ExportTo(artifact, w); err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to stream chart")
	}
}

func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = "pdf"
	}
	format, err := domain.ParseReportFormat(formatParam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	artifacts, err := h.renderer.RenderAll()
	if err != nil {
		logger.Error().Err(err).Msg("failed to render charts")
		http.Error(w, "failed to render charts", http.StatusInternalServerError)
		return
	}

	path, err := h.assembler.Generate(ctx, format, artifacts)
	if err != nil {
		logger.Error().Err(err).Str("format", string(format)).Msg("failed to generate report")
		var renderErr *report.RenderError
		if errors.As(err, &renderErr) {
			http.Error(w, renderErr.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	writeJSON(r, w, api.Report{Path: path})
}

func toAPITable(t *domain.StatsTable) api.StatsTable {
	out := api.StatsTable{GroupColumn: t.GroupColumn}
	for _, col := range t.Columns {
		out.Columns = append(out.Columns, col.Name)
	}
	for _, key := range t.Keys() {
		row := api.StatsRow{Key: key, Values: make(map[string]float64, len(t.Columns))}
		for _, col := range t.Columns {
			row.Values[col.Name] = t.Value(key, col.Name)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func writeJSON(r *http.Request, w http.ResponseWriter, v any) {
	logger := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to encode response")
	}
}
