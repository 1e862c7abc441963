// Package server serves URL verdicts over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/jongio/urljudge/logutil"
	"github.com/jongio/urljudge/metrics"
	"github.com/jongio/urljudge/urljudge"
)

const (
	// MaxBatch is the largest number of URLs accepted by one POST /judge.
	MaxBatch = 1000

	defaultShutdownTimeout = 10 * time.Second
	maxBodyBytes           = 1 << 20
)

// Config configures a Server.
type Config struct {
	Port    int
	Options urljudge.Options
	// MetricsPort, when positive, also serves /metrics and /health on a
	// separate port.
	MetricsPort int
	// RateLimit is requests per second across all clients. Zero disables
	// limiting.
	RateLimit int
	Burst     int
	// ShutdownTimeout bounds graceful shutdown. Zero means 10s.
	ShutdownTimeout time.Duration
}

// Server judges URLs submitted over HTTP.
type Server struct {
	cfg       Config
	validator *urljudge.Validator
	limiter   *rate.Limiter
	log       *logutil.ComponentLogger
}

// BatchRequest is the body of POST /judge.
type BatchRequest struct {
	URLs []string `json:"urls"`
}

// BatchResponse is the reply to POST /judge.
type BatchResponse struct {
	Verdicts []urljudge.Verdict `json:"verdicts"`
	Valid    int                `json:"valid"`
	Invalid  int                `json:"invalid"`
}

// New creates a Server.
func New(cfg Config) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = cfg.RateLimit
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Server{
		cfg:       cfg,
		validator: urljudge.New(cfg.Options),
		limiter:   limiter,
		log:       logutil.NewLogger("server"),
	}
}

// Handler returns the routed handler with logging and rate limiting applied.
// /health and /metrics are not rate limited.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/judge", s.rateLimit(http.HandlerFunc(s.judge)))
	mux.HandleFunc("/health", s.health)
	mux.Handle("/metrics", metrics.Handler())
	return s.logging(mux)
}

// Run listens on the configured port until ctx is cancelled, then shuts down
// gracefully. When MetricsPort is set, a metrics server runs alongside on
// that port and stops with it.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.cfg.Port, err)
	}
	if s.cfg.MetricsPort <= 0 {
		return s.Serve(ctx, ln)
	}

	mln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.MetricsPort))
	if err != nil {
		_ = ln.Close()
		return fmt.Errorf("listen on metrics port %d: %w", s.cfg.MetricsPort, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Serve(gctx, ln) })
	g.Go(func() error { return s.ServeMetrics(gctx, mln) })
	return g.Wait()
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s.serve(ctx, "judge", srv, ln)
}

// ServeMetrics serves the standalone metrics server on ln until ctx is
// cancelled.
func (s *Server) ServeMetrics(ctx context.Context, ln net.Listener) error {
	return s.serve(ctx, "metrics", metrics.CreateMetricsServer(s.cfg.MetricsPort), ln)
}

func (s *Server) serve(ctx context.Context, name string, srv *http.Server, ln net.Listener) error {
	log := s.log.WithFields("listener", name)

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", name, err)
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown %s: %w", name, err)
	}
	return nil
}

func (s *Server) judge(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if !r.URL.Query().Has("url") {
			writeError(w, http.StatusBadRequest, "missing url parameter")
			return
		}
		writeJSON(w, http.StatusOK, s.explain(r.URL.Query().Get("url")))
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.URLs) == 0 || len(req.URLs) > MaxBatch {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("urls must hold between 1 and %d entries", MaxBatch))
			return
		}
		resp := BatchResponse{Verdicts: make([]urljudge.Verdict, 0, len(req.URLs))}
		for _, u := range req.URLs {
			v := s.explain(u)
			if v.Valid {
				resp.Valid++
			} else {
				resp.Invalid++
			}
			resp.Verdicts = append(resp.Verdicts, v)
		}
		writeJSON(w, http.StatusOK, resp)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) explain(raw string) urljudge.Verdict {
	start := time.Now()
	v := s.validator.Explain(raw)
	metrics.RecordVerdict("judge", v.Valid, time.Since(start))
	return v
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(lw, r)

		metrics.RecordRequest(routeLabel(r.URL.Path), lw.status)
		s.log.Debug("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", lw.status,
			"latency_ms", time.Since(start).Milliseconds(),
		)
	})
}

// routeLabel maps a request path to a bounded metric label.
func routeLabel(path string) string {
	switch path {
	case "/judge", "/health", "/metrics":
		return path
	default:
		return "other"
	}
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
