package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/utils/logging"
)

const DefaultBasePath = "/gitminer"

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded JSON, not raw user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	basePath    string
	maxBodySize int64
}

type Option func(*config)

// WithBasePath changes the prefix of the catalog API routes.
func WithBasePath(path string) Option {
	return func(cfg *config) {
		cfg.basePath = path
	}
}

// WithMaxBodySize limits the size of a project document accepted by POST.
func WithMaxBodySize(size int64) Option {
	return func(cfg *config) {
		cfg.maxBodySize = size
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		basePath:    DefaultBasePath,
		maxBodySize: 32 << 20,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route(cfg.basePath, func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", listProjects(uc))
			r.Post("/", createProject(uc, cfg.maxBodySize))
			r.Get("/{id}", getProject(uc))
		})
		r.Route("/commits", func(r chi.Router) {
			r.Get("/", listCommits(uc))
			r.Get("/{id}", getCommit(uc))
		})
		r.Route("/issues", func(r chi.Router) {
			r.Get("/", listIssues(uc))
			r.Get("/{id}", getIssue(uc))
			r.Get("/{id}/comments", listIssueComments(uc))
		})
		r.Route("/comments", func(r chi.Router) {
			r.Get("/", listComments(uc))
			r.Get("/{id}", getComment(uc))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
