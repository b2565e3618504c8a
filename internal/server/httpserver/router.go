// Package httpserver provides the HTTP/HTTPS server for Soul Forge.
package httpserver

import (
	"net/http"

	"github.com/twistedsoul/forge-go/internal/core/service"
	"github.com/twistedsoul/forge-go/internal/server/httpserver/handler"
	"github.com/twistedsoul/forge-go/internal/telemetry/logger"
	"github.com/twistedsoul/forge-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// MintService executes token launches.
	MintService *service.MintService

	// Logger for request logging.
	Logger logger.Logger

	// Metrics records HTTP and operation metrics; its Handler serves
	// the metrics endpoint.
	Metrics *metric.Registry

	// RateLimit is the per-IP sustained request rate for the mint API
	// (requests/second). Zero disables rate limiting.
	RateLimit float64

	// RateBurst is the per-IP burst allowance.
	RateBurst int
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	h := handler.New(cfg.MintService, log)

	// Probe endpoints skip rate limiting so orchestrators are never
	// throttled away from liveness checks.
	probeHandler := Chain(h,
		RequestID(),
		Recover(log),
	)

	// Order: Recover -> RequestID -> RateLimit -> RequestLog -> Handler
	apiMiddlewares := []Middleware{
		RequestID(),
		Recover(log),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		apiMiddlewares = append(apiMiddlewares, RateLimit(cfg.RateLimit, burst))
	}
	apiMiddlewares = append(apiMiddlewares, RequestLog(log, cfg.Metrics))
	apiHandler := Chain(h, apiMiddlewares...)

	mux := http.NewServeMux()

	mux.Handle("GET /health", probeHandler)
	mux.Handle("GET /ready", probeHandler)

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(
			cfg.Metrics.Handler(),
			RequestID(),
			Recover(log),
		))
	}

	mux.Handle("POST /api/mint", apiHandler)
	mux.Handle("GET /api/operations", apiHandler)
	mux.Handle("GET /api/operations/{id}", apiHandler)

	return mux
}
