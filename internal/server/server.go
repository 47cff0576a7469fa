// Package server provides the meraki-rm HTTP API and the MCP transports.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/config"
	"github.com/ansible-network/meraki-rm-sub001/internal/facts"
	"github.com/ansible-network/meraki-rm-sub001/internal/httputil"
	"github.com/ansible-network/meraki-rm-sub001/internal/metrics"
	"github.com/ansible-network/meraki-rm-sub001/internal/policy"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/runner"
)

const maxBodyBytes = 1 << 20

var errDashboardUnavailable = errors.New("dashboard client is not configured; set MERAKI_API_KEY")

// Executor runs reconciles for the HTTP API.
type Executor interface {
	Execute(ctx context.Context, req runner.Request) (*reconcile.Result, error)
}

// Server wraps HTTP routes and dependencies.
type Server struct {
	cfg         config.Config
	catalog     *catalog.Catalog
	executor    Executor
	facts       facts.Client
	policy      policy.Policy
	authn       *TokenAuthenticator
	metrics     *metrics.Metrics
	mcp         MCP
	version     string
	commit      string
	buildDate   string
	openapiSpec []byte
	contract    []byte
	logger      zerolog.Logger
	router      chi.Router
}

// Option configures server construction.
type Option func(*Server)

// WithOpenAPISpec sets the embedded OpenAPI bytes.
func WithOpenAPISpec(spec []byte) Option {
	return func(s *Server) {
		s.openapiSpec = spec
	}
}

// WithToolContract sets the static MCP tool contract served at /api/tools.yaml.
func WithToolContract(contract []byte) Option {
	return func(s *Server) {
		s.contract = contract
	}
}

// WithExecutor enables reconcile endpoints.
func WithExecutor(executor Executor) Option {
	return func(s *Server) {
		s.executor = executor
	}
}

// WithFacts enables the facts endpoint.
func WithFacts(client facts.Client) Option {
	return func(s *Server) {
		s.facts = client
	}
}

// WithPolicy sets the reconcile policy gates.
func WithPolicy(p policy.Policy) Option {
	return func(s *Server) {
		s.policy = p
	}
}

// WithMetrics exposes /metrics and instruments every route.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithMCP mounts the MCP JSON-RPC endpoint.
func WithMCP(mcp MCP) Option {
	return func(s *Server) {
		s.mcp = mcp
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New constructs the API server.
func New(cfg config.Config, cat *catalog.Catalog, version, commit, buildDate string, opts ...Option) *Server {
	if cat == nil {
		cat = catalog.Default()
	}
	s := &Server{
		cfg:       cfg,
		catalog:   cat,
		authn:     NewTokenAuthenticator(cfg.APIToken),
		version:   version,
		commit:    commit,
		buildDate: buildDate,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}

	r.Group(func(r chi.Router) {
		r.Method(http.MethodGet, "/health", httputil.HealthHandler())
		r.Method(http.MethodGet, "/readiness", httputil.ReadinessHandler(func() error {
			if s.executor == nil {
				return errDashboardUnavailable
			}
			return nil
		}))
		r.Method(http.MethodGet, "/version", httputil.VersionHandler(s.version, s.commit, s.buildDate))
		if s.cfg.MetricsEnabled && s.metrics != nil {
			r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
		}
		r.Get("/api/openapi.yaml", yamlHandler(s.openapiSpec))
		r.Get("/api/tools.yaml", yamlHandler(s.contract))
	})

	r.Group(func(r chi.Router) {
		r.Use(s.authn.Middleware)

		r.Route("/v1", func(r chi.Router) {
			r.Get("/resources", s.handleListResources)
			r.Get("/resources/{name}", s.handleGetResource)
			r.Post("/resources/{name}/reconcile", s.handleReconcile)
			r.Post("/facts", s.handleFacts)
		})
		if s.mcp.Registry != nil {
			r.Post("/mcp", s.handleMCP)
		}
	})

	return r
}

func yamlHandler(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(body) == 0 {
			httputil.RespondProblem(w, r, http.StatusNotFound, "document is not available")
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
