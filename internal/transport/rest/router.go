package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/topiclog/internal/config"
	"github.com/heartmarshall/topiclog/internal/transport/middleware"
)

// tokenValidator is satisfied by auth.JWTManager.
type tokenValidator interface {
	ValidateAccessToken(token string) (int64, error)
}

// RouterDeps holds everything NewRouter wires into the mux.
type RouterDeps struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Topics      *TopicHandler
	Tokens      tokenValidator
	RateLimiter *middleware.RateLimiter
	Gatherer    prometheus.Gatherer
	Server      config.ServerConfig
	CORS        config.CORSConfig
	Logger      *slog.Logger
}

// NewRouter builds the HTTP handler. The chain runs Recovery, RequestID,
// Logger, CORS and Auth in that order; topic and profile routes additionally
// require an authenticated user.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	mux.HandleFunc("POST /auth/register", d.Auth.Register)
	mux.HandleFunc("POST /auth/login", d.Auth.Login)
	mux.HandleFunc("POST /auth/oauth", d.Auth.OAuth)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	var limit middleware.Middleware
	if d.RateLimiter != nil {
		limit = d.RateLimiter.Limit(d.Server.AddTopicPerMinute)
	}
	limited := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(middleware.RequireAuth, limit)(h)
	}

	mux.Handle("GET /me", protected(d.Auth.Me))
	mux.Handle("GET /topics", protected(d.Topics.List))
	mux.Handle("POST /topics", limited(d.Topics.Add))
	mux.Handle("DELETE /topics", protected(d.Topics.Clear))
	mux.Handle("PATCH /topics/{id}", protected(d.Topics.Rename))
	mux.Handle("DELETE /topics/{id}", protected(d.Topics.Remove))

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
	)(mux)
}
