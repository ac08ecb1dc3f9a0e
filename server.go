package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/siamlex/gazette-search-service/common/config"
	trg "github.com/siamlex/gazette-search-service/crawlers/thai-royal-gazette"
	"github.com/siamlex/gazette-search-service/handler"
	"github.com/siamlex/gazette-search-service/middlewares"
)

type AppHttpServer struct {
	router *chi.Mux
	cfg    config.Config
	server *http.Server
}

func NewAppHttpServer(cfg config.Config) (*AppHttpServer, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	server := &AppHttpServer{
		router: r,
		cfg:    cfg,
	}
	return server, nil
}

func (s *AppHttpServer) setupRoute() {
	r := s.router

	// Public health endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"gazette-search-service"}`))
	})

	searchService := trg.NewService(s.cfg.Gazette, trg.NewRodSessionFactory(s.cfg.Gazette))
	searchHandler := handler.NewSearchHandler(searchService)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.BearerToken(s.cfg.Security.ApiToken))
		r.Mount("/", searchHandler.Router())
	})
}

func (s *AppHttpServer) start() error {
	r := s.router
	cfg := s.cfg
	log.Info().Msg("Starting up server...")

	// A crawl holds its handler for as long as the traversal runs, so no
	// write timeout is applied to the server.
	s.server = &http.Server{
		Addr:        cfg.Listen.Addr(),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// stop gracefully shuts down the server
func (s *AppHttpServer) stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
