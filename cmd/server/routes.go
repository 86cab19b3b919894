package main

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/middleware"
	"github.com/mmynk/groupledger/internal/service"
	"github.com/mmynk/groupledger/internal/storage"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

type deps struct {
	store      storage.Store
	publisher  events.Publisher
	jwtManager *auth.JWTManager
	registry   *prometheus.Registry
	retries    int
	logger     *slog.Logger
	// bcryptCost overrides the default bcrypt cost when non-zero.
	bcryptCost int
}

// newHandler mounts the Connect services, /metrics and /healthz.
func newHandler(d deps) http.Handler {
	authenticator := auth.NewPasswordAuthenticator(d.store)
	if d.bcryptCost != 0 {
		authenticator.WithCost(d.bcryptCost)
	}

	metrics := middleware.NewMetrics(d.registry)
	// Order matters: auth must run before logging so the actor is logged.
	interceptors := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.RequireAuth(d.jwtManager, service.PublicProcedures...),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()

	authPath, authHandler := protoconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, d.jwtManager, d.store, d.logger), interceptors)
	mux.Handle(authPath, authHandler)

	groupPath, groupHandler := protoconnect.NewGroupServiceHandler(
		service.NewGroupService(d.store, d.publisher, d.retries), interceptors)
	mux.Handle(groupPath, groupHandler)

	ledgerPath, ledgerHandler := protoconnect.NewLedgerServiceHandler(
		service.NewLedgerService(d.store, d.publisher), interceptors)
	mux.Handle(ledgerPath, ledgerHandler)

	mux.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return loggingMiddleware(corsMiddleware(mux))
}

// loggingMiddleware logs all incoming requests at debug level; RPC outcomes
// are logged by the Connect interceptor.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
