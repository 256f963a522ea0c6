package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the base router with the standard middleware stack and
// health check. uploadDir, when non-empty, is served under /uploads/ so
// stored image refs resolve.
func NewRouter(uploadDir string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	if uploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
		r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
			fs.ServeHTTP(w, r)
		})
	}
	return r
}
