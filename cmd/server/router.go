package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brandforge/brandforge-api/internal/api"
	"github.com/brandforge/brandforge-api/internal/api/middleware"
)

// buildRouter assembles the chi router with the middleware stack and every
// route the service exposes.
func (app *application) buildRouter(
	studio *api.StudioHandler,
	savedItems *api.SavedItemHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.MetricsMiddleware)
	r.Use(chimiddleware.Recoverer)

	// Operational endpoints.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Generated logos are plain files on disk.
	fileServer := http.FileServer(http.Dir(app.config.Image.OutputDir))
	r.Handle("/static/generated_logos/*",
		http.StripPrefix("/static/generated_logos/", fileServer))

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-brand", studio.GenerateBrand)
		r.Post("/generate-tagline", studio.GenerateTagline)
		r.Post("/generate-content", studio.GenerateContent)
		r.Post("/generate-desc", studio.GenerateProductDescription)
		r.Post("/analyze-sentiment", studio.AnalyzeSentiment)
		r.Post("/analyze-tagline", studio.AnalyzeTagline)
		r.Post("/get-colors", studio.GetColors)
		r.Post("/chat", studio.Chat)
		r.Post("/generate-logo", studio.GenerateLogo)
		r.Post("/transcribe-voice", studio.TranscribeVoice)

		r.Post("/save-item", savedItems.Create)
		r.Get("/saved-items", savedItems.List)
		r.Get("/saved-items/{id}", savedItems.GetByID)
		r.Delete("/saved-items/{id}", savedItems.Delete)
	})

	return r
}
