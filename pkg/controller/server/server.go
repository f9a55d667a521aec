package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/interfaces"
)

type Server struct {
	mux *chi.Mux
}

type config struct {
	identity       interfaces.IdentityClient
	allowedOrigins []string
}

type Option func(*config)

func WithIdentity(client interfaces.IdentityClient) Option {
	return func(cfg *config) {
		cfg.identity = client
	}
}

// WithAllowedOrigins enables CORS for the browser UI. Without it the API
// only serves same-origin requests.
func WithAllowedOrigins(origins []string) Option {
	return func(cfg *config) {
		cfg.allowedOrigins = origins
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		if len(cfg.allowedOrigins) > 0 {
			r.Use(cors.New(cors.Options{
				AllowedOrigins:   cfg.allowedOrigins,
				AllowedMethods:   []string{http.MethodGet, http.MethodPost},
				AllowedHeaders:   []string{"Authorization", "Content-Type"},
				AllowCredentials: true,
			}).Handler)
		}
		r.Use(authenticate(cfg.identity))

		r.Get("/github/repos", handleListRepos(uc))
		r.Route("/ghcr", func(r chi.Router) {
			r.Get("/packages", handleListPackages(uc))
			r.Get("/tags", handleListTags(uc))
		})
		r.Post("/deploy", handleDeploy(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
