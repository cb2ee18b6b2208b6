package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"appraisalgen/internal/platform/config"
	"appraisalgen/internal/render"
	renderhandler "appraisalgen/internal/transport/http/handlers/render"
	"appraisalgen/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Router http.Handler
}

func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	renderer, err := render.New(cfg)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.JWTSecret))
		renderhandler.NewHandler(renderer).RegisterRoutes(r)
	})

	return &App{Config: cfg, Router: router}, nil
}
