package routes

import (
	"net/http"

	"github.com/rs/cors"

	"go-emotive/config"
)

// NewServer wraps the router with CORS and the configured timeouts.
func NewServer(cfg config.Config, router http.Handler) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CorsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	})

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      c.Handler(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
