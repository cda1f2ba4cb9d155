package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"auditly-backend/internal/handlers"
	"auditly-backend/internal/middleware"
)

// New wires the HTTP surface. jwtAuth may be nil; the API is then open,
// which is how local development runs.
func New(
	chatHandler *handlers.ChatHandler,
	reportHandler *handlers.ReportHandler,
	jwtAuth *middleware.JWTAuth,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Model calls are the expensive path.
	chatLimiter := middleware.NewRateLimiter(20, time.Minute)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		if jwtAuth != nil {
			r.Use(jwtAuth.Middleware)
		}

		r.With(chatLimiter.Middleware).Post("/chat", chatHandler.Ask)
		r.Get("/reports/{id}", reportHandler.Get)
	})

	return r
}
