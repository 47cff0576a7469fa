// Package mockapi is a stateful in-memory Dashboard API. Routes are derived
// from the resource catalog so every endpoint the reconciler can call is
// served: collections assign system keys on create, singletons accept PUT
// at any time and fixed populations come pre-seeded.
package mockapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/httputil"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

// APIPrefix is where the Dashboard routes are mounted.
const APIPrefix = "/api/v1"

// Request is one recorded Dashboard call.
type Request struct {
	Method string
	// Path is relative to APIPrefix.
	Path string
	Body transform.Record
}

// Server holds the mock state.
type Server struct {
	catalog  *catalog.Catalog
	fixtures Fixtures
	pageSize int
	logger   zerolog.Logger

	mu          sync.Mutex
	collections map[string][]transform.Record
	singletons  map[string]transform.Record
	requests    []Request
	throttle    int

	router chi.Router
}

// Option configures server construction.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithFixtures replaces the default organizations, networks and devices.
func WithFixtures(f Fixtures) Option {
	return func(s *Server) {
		s.fixtures = f
	}
}

// WithPageSize paginates list responses that do not ask for a page size.
func WithPageSize(n int) Option {
	return func(s *Server) {
		s.pageSize = n
	}
}

// New builds a mock serving every endpoint of cat. A nil catalog selects
// the built-in one.
func New(cat *catalog.Catalog, opts ...Option) *Server {
	if cat == nil {
		cat = catalog.Default()
	}
	s := &Server{
		catalog:     cat,
		fixtures:    DefaultFixtures(),
		logger:      zerolog.Nop(),
		collections: make(map[string][]transform.Record),
		singletons:  make(map[string]transform.Record),
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

	r.Method(http.MethodGet, "/health", httputil.HealthHandler())
	r.Post("/_state/reset", func(w http.ResponseWriter, _ *http.Request) {
		s.Reset()
		httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	})
	r.Get("/_state/dump", func(w http.ResponseWriter, _ *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, s.Dump())
	})

	r.Route(APIPrefix, func(r chi.Router) {
		r.Use(s.recordAndThrottle)
		s.registerFacts(r)
		for _, d := range s.catalog.All() {
			for kind, op := range d.Operations {
				r.Method(op.Method, op.Path, s.handler(d, kind, op))
			}
		}
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			httputil.RespondProblem(w, r, http.StatusNotFound, "Resource not found")
		})
	})
	return r
}

// InjectRateLimit makes the next n Dashboard calls fail with 429.
func (s *Server) InjectRateLimit(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.throttle = n
}

// Requests returns the recorded Dashboard calls in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Mutations returns the recorded non-GET calls.
func (s *Server) Mutations() []Request {
	var out []Request
	for _, req := range s.Requests() {
		if req.Method != http.MethodGet {
			out = append(out, req)
		}
	}
	return out
}

// ResetRequests clears the request log and keeps the state.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// Reset clears all state and the request log.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = make(map[string][]transform.Record)
	s.singletons = make(map[string]transform.Record)
	s.requests = nil
	s.throttle = 0
}

// Seed stores records under an expanded collection path such as
// /networks/N_1/appliance/vlans, replacing what was there.
func (s *Server) Seed(path string, records ...map[string]any) error {
	seeded := make([]transform.Record, 0, len(records))
	for _, rec := range records {
		normalized, err := transform.Normalize(rec)
		if err != nil {
			return err
		}
		seeded = append(seeded, normalized)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[path] = seeded
	return nil
}

// SeedSingleton stores the object served at an expanded singleton path.
func (s *Server) SeedSingleton(path string, record map[string]any) error {
	normalized, err := transform.Normalize(record)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.singletons[path] = normalized
	return nil
}

// Records returns a copy of the collection stored at an expanded path.
func (s *Server) Records(path string) []transform.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, _ := transform.CloneAll(s.collections[path])
	return out
}

// Dump returns a copy of the whole state keyed by expanded path.
func (s *Server) Dump() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any, len(s.collections)+len(s.singletons))
	for path, records := range s.collections {
		out[path], _ = transform.CloneAll(records)
	}
	for path, record := range s.singletons {
		out[path], _ = transform.Clone(record)
	}
	return out
}

func (s *Server) recordAndThrottle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body transform.Record
		if r.Body != nil && r.Method != http.MethodGet {
			raw, err := io.ReadAll(r.Body)
			if err != nil {
				httputil.RespondProblem(w, r, http.StatusBadRequest, "unreadable body")
				return
			}
			if len(strings.TrimSpace(string(raw))) > 0 {
				if err := json.Unmarshal(raw, &body); err != nil {
					httputil.RespondProblem(w, r, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
					return
				}
			}
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: relPath(r), Body: body})
		throttled := s.throttle > 0
		if throttled {
			s.throttle--
		}
		s.mu.Unlock()

		if throttled {
			w.Header().Set("Retry-After", "0")
			httputil.RespondProblem(w, r, http.StatusTooManyRequests, "API rate limit exceeded for organization")
			return
		}
		next.ServeHTTP(w, r.WithContext(withBody(r.Context(), body)))
	})
}

func (s *Server) handler(d *catalog.Descriptor, kind catalog.OpKind, op catalog.Operation) http.HandlerFunc {
	keyParam := ""
	if strings.HasSuffix(op.Path, "}") {
		keyParam = op.Path[strings.LastIndex(op.Path, "{")+1 : len(op.Path)-1]
	}
	keyWire := ""
	if key := d.KeyField(); key != "" {
		keyWire, _ = d.Transformer().WireName(key)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		path := relPath(r)
		if d.Shape == catalog.Singleton {
			s.serveSingleton(w, r, path)
			return
		}

		switch kind {
		case catalog.OpFindAll:
			s.serveList(w, r, d, path, keyWire)
		case catalog.OpCreate:
			s.serveCreate(w, r, d, path, keyWire)
		default:
			if keyParam == "" {
				httputil.RespondProblem(w, r, http.StatusMethodNotAllowed, "no item key in route")
				return
			}
			item := itemRef{
				collection: parentPath(path),
				keyWire:    keyWire,
				key:        chi.URLParam(r, keyParam),
			}
			s.serveItem(w, r, d, kind, item)
		}
	}
}

type itemRef struct {
	collection string
	keyWire    string
	key        string
}

func (s *Server) serveSingleton(w http.ResponseWriter, r *http.Request, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.singletons[path]
	if current == nil {
		current = transform.Record{}
	}
	if r.Method == http.MethodPut {
		current = transform.Overlay(current, bodyFrom(r.Context()))
		s.singletons[path] = current
	}
	out, _ := transform.Clone(current)
	httputil.RespondJSON(w, http.StatusOK, out)
}

func (s *Server) serveList(w http.ResponseWriter, r *http.Request, d *catalog.Descriptor, path, keyWire string) {
	s.mu.Lock()
	items, _ := transform.CloneAll(s.collection(d, path))
	s.mu.Unlock()

	page, next := s.paginate(r, items, keyWire)
	if next != "" {
		w.Header().Set("Link", fmt.Sprintf("<%s>; rel=next", next))
	}
	httputil.RespondJSON(w, http.StatusOK, page)
}

func (s *Server) serveCreate(w http.ResponseWriter, r *http.Request, d *catalog.Descriptor, path, keyWire string) {
	created := transform.Overlay(transform.Record{}, bodyFrom(r.Context()))

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collection(d, path)
	if keyWire != "" {
		if v, ok := created[keyWire]; ok && v != nil {
			if find(items, keyWire, transform.KeyString(v)) >= 0 {
				httputil.RespondProblem(w, r, http.StatusBadRequest, fmt.Sprintf("%s %v already exists", keyWire, v))
				return
			}
		} else {
			created[keyWire] = uuid.NewString()
		}
	}
	s.collections[path] = append(items, created)

	out, _ := transform.Clone(created)
	httputil.RespondJSON(w, http.StatusCreated, out)
}

func (s *Server) serveItem(w http.ResponseWriter, r *http.Request, d *catalog.Descriptor, kind catalog.OpKind, item itemRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collection(d, item.collection)
	index := find(items, item.keyWire, item.key)

	switch kind {
	case catalog.OpFind:
		if index < 0 {
			httputil.RespondProblem(w, r, http.StatusNotFound, "Resource not found")
			return
		}
		out, _ := transform.Clone(items[index])
		httputil.RespondJSON(w, http.StatusOK, out)

	case catalog.OpUpdate:
		body := bodyFrom(r.Context())
		if index < 0 {
			if d.Shape != catalog.FixedPopulation {
				httputil.RespondProblem(w, r, http.StatusNotFound, "Resource not found")
				return
			}
			items = append(items, transform.Record{item.keyWire: keyValue(item.key)})
			index = len(items) - 1
		}
		items[index] = transform.Overlay(items[index], body)
		s.collections[item.collection] = items
		out, _ := transform.Clone(items[index])
		httputil.RespondJSON(w, http.StatusOK, out)

	case catalog.OpDelete:
		if index < 0 {
			httputil.RespondProblem(w, r, http.StatusNotFound, "Resource not found")
			return
		}
		s.collections[item.collection] = append(items[:index:index], items[index+1:]...)
		w.WriteHeader(http.StatusNoContent)

	default:
		httputil.RespondProblem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("%s is not served on item routes", kind))
	}
}

// collection returns the stored records at path, seeding fixed
// populations on first access. Callers hold s.mu.
func (s *Server) collection(d *catalog.Descriptor, path string) []transform.Record {
	items, ok := s.collections[path]
	if ok {
		return items
	}
	items = population(d.Name)
	s.collections[path] = items
	return items
}

// paginate honours perPage and startingAfter and returns the next link.
func (s *Server) paginate(r *http.Request, items []transform.Record, keyWire string) ([]transform.Record, string) {
	query := r.URL.Query()
	perPage := s.pageSize
	if raw := query.Get("perPage"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			perPage = n
		}
	}

	start := 0
	if after := query.Get("startingAfter"); after != "" && keyWire != "" {
		if i := find(items, keyWire, after); i >= 0 {
			start = i + 1
		}
	}
	if perPage <= 0 || keyWire == "" {
		return items[start:], ""
	}

	end := start + perPage
	if end >= len(items) {
		return items[start:], ""
	}
	next := *r.URL
	q := next.Query()
	q.Set("perPage", strconv.Itoa(perPage))
	q.Set("startingAfter", transform.KeyString(items[end-1][keyWire]))
	next.RawQuery = q.Encode()
	return items[start:end], next.RequestURI()
}

func find(items []transform.Record, keyWire, key string) int {
	if keyWire == "" {
		return -1
	}
	for i, item := range items {
		if transform.KeyString(item[keyWire]) == key {
			return i
		}
	}
	return -1
}

// keyValue stores numeric path keys as JSON numbers.
func keyValue(key string) any {
	if n, err := strconv.ParseFloat(key, 64); err == nil {
		return n
	}
	return key
}

func relPath(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, APIPrefix)
}

func parentPath(path string) string {
	if i := strings.LastIndex(path, "/"); i > 0 {
		return path[:i]
	}
	return path
}
