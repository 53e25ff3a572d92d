package rest

import (
	"log/slog"
	"net/http"

	"github.com/cours-de-latin/ithkuil"
	"github.com/cours-de-latin/ithkuil/internal/config"
	"github.com/cours-de-latin/ithkuil/internal/transport/middleware"
)

// NewRouter wires the API endpoints behind the middleware stack.
func NewRouter(g *ithkuil.Glosser, defaults ithkuil.Options, cfg *config.Config, logger *slog.Logger, version string) http.Handler {
	gloss := NewGlossHandler(g, defaults, cfg.Server.MaxBodyBytes)
	health := NewHealthHandler(g.Store(), version)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/gloss/sentence", gloss.Sentence)
	mux.HandleFunc("/api/gloss", gloss.Word)
	mux.HandleFunc("/api/dictionary", gloss.Dictionary)
	mux.HandleFunc("/api/health", health.Health)
	mux.HandleFunc("/api/live", health.Live)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
