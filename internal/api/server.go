package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/jung/hannum/internal/health"
)

// Options configures the router
type Options struct {
	MaxInputLength int
	RequestTimeout time.Duration
	Logger         *logharbour.Logger
	Checker        *health.Checker
	Metrics        *Metrics
}

// NewRouter builds the gin engine serving the conversion API, health
// endpoints and metrics.
func NewRouter(opts Options) *gin.Engine {
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LogRequest(NewLogHarbourAdapter(opts.Logger)))
	r.Use(opts.Metrics.Middleware())

	h := &handler{
		maxInputLength: opts.MaxInputLength,
		metrics:        opts.Metrics,
		logger:         opts.Logger.WithModule("api"),
	}

	v1 := r.Group("/api/v1", Timeout(opts.RequestTimeout))
	v1.POST("/format", h.format)
	v1.POST("/parse", h.parse)
	v1.GET("/convert", h.convert)

	if opts.Checker != nil {
		opts.Checker.Register(r)
	}
	r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	return r
}

// Server manages the HTTP server
type Server struct {
	server *http.Server
	logger *logharbour.Logger
}

// NewServer creates a server for handler on addr
func NewServer(addr string, handler http.Handler, logger *logharbour.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger.WithModule("server"),
	}
}

// Start starts the server in the background
func (s *Server) Start() {
	go func() {
		s.logger.Info().LogActivity("HTTP server listening", map[string]any{"addr": s.server.Addr})
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			// Log only, the batch scheduler keeps running
			s.logger.Error(err).LogActivity("HTTP server error", nil)
		}
	}()
}

// Stop shuts the server down, waiting for in-flight requests until ctx ends
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
