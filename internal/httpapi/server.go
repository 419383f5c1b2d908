package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"alcocalc/internal/domain"
)

const maxBodyBytes = 1 << 16

// Server serves a domain.Calculator as JSON over HTTP.
type Server struct {
	calc    domain.Calculator
	log     *slog.Logger
	metrics *Metrics
	limiter *Limiter
}

// Option customises a Server.
type Option func(*Server)

// WithMetrics records request counts and latencies in m.
func WithMetrics(m *Metrics) Option { return func(s *Server) { s.metrics = m } }

// WithLimiter rejects requests over l's rate with 429.
func WithLimiter(l *Limiter) Option { return func(s *Server) { s.limiter = l } }

// NewServer returns a Server for calc.
func NewServer(calc domain.Calculator, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{calc: calc, log: logger}
	for _, o := range opts {
		o(s)
	}
	return s
}

type route struct {
	method  string
	path    string
	handler http.HandlerFunc
}

func (s *Server) routes() []route {
	return []route{
		{http.MethodGet, "/healthz", s.handleHealth},
		{http.MethodGet, "/v1/density", s.handleDensity},
		{http.MethodGet, "/v1/convert/abv", s.handleAbvToMassFraction},
		{http.MethodGet, "/v1/convert/mass-fraction", s.handleMassFractionToAbv},
		{http.MethodGet, "/v1/volume", s.handleVolume},
		{http.MethodGet, "/v1/mass", s.handleMass},
		{http.MethodGet, "/v1/ethanol", s.handleEthanol},
		{http.MethodPost, "/v1/dilute", s.handleDilute},
		{http.MethodGet, "/v1/hydrometer", s.handleHydrometer},
		{http.MethodGet, "/v1/temperature", s.handleTemperature},
		{http.MethodGet, "/v1/tables", s.handleTables},
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
// Unrouted paths and methods get JSON 404 and 405 answers.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	allowed := make(map[string][]string)
	var paths []string
	for _, rt := range s.routes() {
		mux.HandleFunc(rt.method+" "+rt.path, rt.handler)
		if _, ok := allowed[rt.path]; !ok {
			paths = append(paths, rt.path)
		}
		allowed[rt.path] = append(allowed[rt.path], rt.method)
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if methods, ok := allowed[r.URL.Path]; ok {
			w.Header().Set("Allow", strings.Join(methods, ", "))
			writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
			return
		}
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	})

	var h http.Handler = mux
	if s.limiter != nil {
		h = s.limiter.Middleware(s.metrics, h)
	}
	if s.metrics != nil {
		h = s.metrics.Middleware(paths, h)
	}
	h = WithLogging(s.log, h)
	return WithRequestID(h)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDensity(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	abv, t := q.float("abv"), q.float("t")
	if q.err != nil {
		s.fail(w, r, q.err)
		return
	}
	res, err := s.calc.Density(r.Context(), abv, t)
	s.respond(w, r, res, err)
}

func (s *Server) handleAbvToMassFraction(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	abv := q.float("abv")
	if q.err != nil {
		s.fail(w, r, q.err)
		return
	}
	res, err := s.calc.AbvToMassFraction(r.Context(), abv)
	s.respond(w, r, res, err)
}

func (s *Server) handleMassFractionToAbv(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	p := q.float("p")
	if q.err != nil {
		s.fail(w, r, q.err)
		return
	}
	res, err := s.calc.MassFractionToAbv(r.Context(), domain.MassFraction(p))
	s.respond(w, r, res, err)
}

func (s *Server) handleVolume(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	mass, abv, t := q.float("mass"), q.float("abv"), q.float("t")
	if q.err != nil {
		s.fail(w, r, q.err)
		return
	}
	res, err := s.calc.VolumeFromMass(r.Context(), mass, abv, t)
	s.respond(w, r, res, err)
}

func (s *Server) handleMass(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	volume, abv, t := q.float("volume"), q.float("abv"), q.float("t")
	if q.err != nil {
		s.fail(w, r, q.err)
		return
	}
	res, err := s.calc.MassFromVolume(r.Context(), volume, abv, t)
	s.respond(w, r, res, err)
}

func (s *Server) handleEthanol(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	volume, abv, t := q.float("volume"), q.float("abv"), q.float("t")
	if q.err != nil {
		s.fail(w, r, q.err)
		return
	}
	res, err := s.calc.EthanolMass(r.Context(), volume, abv, t)
	s.respond(w, r, res, err)
}

func (s *Server) handleDilute(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req domain.DilutionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.fail(w, r, &badRequestError{fmt.Errorf("decode body: %w", err)})
		return
	}
	res, err := s.calc.Dilute(r.Context(), req)
	s.respond(w, r, res, err)
}

func (s *Server) handleHydrometer(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	reading, t := q.float("reading"), q.float("t")
	if q.err != nil {
		s.fail(w, r, q.err)
		return
	}
	res, err := s.calc.CorrectHydrometer(r.Context(), reading, t)
	s.respond(w, r, res, err)
}

func (s *Server) handleTemperature(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	t := q.float("t")
	if q.err != nil {
		s.fail(w, r, q.err)
		return
	}
	res, err := s.calc.CheckTemperature(r.Context(), t)
	s.respond(w, r, res, err)
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	res, err := s.calc.Tables(r.Context())
	s.respond(w, r, res, err)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

type errorBody struct {
	Error string `json:"error"`
}

type badRequestError struct{ err error }

func (e *badRequestError) Error() string { return e.err.Error() }
func (e *badRequestError) Unwrap() error { return e.err }

func statusFor(err error) int {
	var (
		bad     *badRequestError
		tooLong *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLong):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &bad),
		errors.Is(err, domain.ErrInvalidABV),
		errors.Is(err, domain.ErrInvalidMassFraction),
		errors.Is(err, domain.ErrInvalidTemperature),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNotDiluting):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// queryParser reads float query parameters, keeping the first error.
type queryParser struct {
	r   *http.Request
	err error
}

func (q *queryParser) float(name string) float64 {
	if q.err != nil {
		return 0
	}
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		q.err = &badRequestError{fmt.Errorf("missing query parameter %q", name)}
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.err = &badRequestError{fmt.Errorf("query parameter %q: invalid number %q", name, raw)}
		return 0
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
