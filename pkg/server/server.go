package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/de-tools/delivery-atlas/pkg/handlers/analytics"
	deliveryatlasmiddleware "github.com/de-tools/delivery-atlas/pkg/server/middleware"
	"github.com/de-tools/delivery-atlas/pkg/services/analytics"
	"github.com/de-tools/delivery-atlas/pkg/services/charts"
	"github.com/de-tools/delivery-atlas/pkg/services/report"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Analyzer  *analytics.Analyzer
	Renderer  *charts.Renderer
	Assembler *report.Assembler
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	handler := handlers.NewHandler(deps.Analyzer, deps.Renderer, deps.Assembler)

	router := chi.NewRouter()
	router.Use(deliveryatlasmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/overview", handler.GetOverview)
		r.Get("/platforms", handler.GetPlatforms)
		r.Get("/categories", handler.GetCategories)
		r.Get("/trends", handler.GetTrends)
		r.Get("/orders", handler.GetOrders)
		r.Get("/correlation", handler.GetCorrelation)
		r.Get("/charts/{kind}", handler.GetChart)
		r.Post("/reports", handler.GenerateReport)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	return &WebAPI{
		router: router,
		logger: &config.Dependencies.Logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
