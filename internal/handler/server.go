// Package handler implements the HTTP handlers for the spot map.
// All handlers are methods on Server. Methods are split into files by
// concern (location.go, page.go, health.go) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leggiero/spotmap/internal/domain"
	"github.com/leggiero/spotmap/internal/page"
	"github.com/leggiero/spotmap/spec"
	"github.com/leggiero/spotmap/web"
)

// LocationServicer defines the business operations the location handlers
// depend on. Defining the interface here (in the consumer package) lets
// handler tests inject a mock without touching the database or service layer.
type LocationServicer interface {
	Create(ctx context.Context, in domain.LocationInput) (domain.Location, error)
	GetByID(ctx context.Context, id int64) (domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
}

// PageLoader produces the data rendered by the map page.
type PageLoader interface {
	Load(ctx context.Context) (page.Data, error)
}

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	locations LocationServicer
	pages     PageLoader
	db        Pinger
	logger    *slog.Logger
	index     *template.Template
}

// NewServer constructs the Server with all its dependencies.
func NewServer(locations LocationServicer, pages PageLoader, db Pinger, logger *slog.Logger) *Server {
	return &Server{
		locations: locations,
		pages:     pages,
		db:        db,
		logger:    logger,
		index:     template.Must(template.ParseFS(web.Templates, "index.html")),
	}
}

// Register adds every endpoint the server exposes to r. Cross-cutting
// middleware is applied by the caller on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.GetIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.Static)))

	r.Get("/api/locations", s.GetLocation)
	r.Post("/api/locations", s.CreateLocation)

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
}

// GetOpenAPI serves the embedded OpenAPI document.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
