package wire

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dorm-rental/internal/adaptor"
	"dorm-rental/internal/data/repository"
	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/cache"
	"dorm-rental/pkg/metrics"
	"dorm-rental/pkg/middleware"
	"dorm-rental/pkg/storage"
	"dorm-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the router and the long-lived components the scheduler needs.
type App struct {
	Router  *chi.Mux
	Limiter *middleware.RateLimiter
}

// routeDeps is shared by every wireX function.
type routeDeps struct {
	repo    *repository.Repository
	config  *utils.Config
	limiter *middleware.RateLimiter
	log     *zap.Logger
}

// authenticated returns the middleware chain for a protected group. With no
// roles any signed-in user passes.
func (d routeDeps) authenticated(roles ...string) []func(http.Handler) http.Handler {
	chain := []func(http.Handler) http.Handler{
		middleware.AuthSession(d.repo.Session, d.repo.User, d.log),
		d.limiter.Handler,
	}
	if len(roles) > 0 {
		chain = append(chain, middleware.RequireRole(d.log, roles...))
	}
	return chain
}

func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	cache cache.Cache,
	store storage.FileStore,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, cache, store, logger)
	handler := adaptor.NewHandler(service, config, logger)

	deps := routeDeps{
		repo:    repo,
		config:  config,
		limiter: middleware.NewRateLimiter(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst, logger),
		log:     logger,
	}

	return &App{
		Router:  setupRouter(handler, deps),
		Limiter: deps.limiter,
	}
}

// clientIP rewrites RemoteAddr from proxy headers only when the proxy is
// trusted; otherwise anonymous rate limiting keys on the socket address.
func clientIP(trustProxy bool) func(http.Handler) http.Handler {
	if trustProxy {
		return chimw.RealIP
	}
	return func(next http.Handler) http.Handler { return next }
}

func setupRouter(handler *adaptor.Handler, deps routeDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(clientIP(deps.config.App.TrustProxy))
	r.Use(middleware.Logger(deps.log))
	r.Use(middleware.Recover(deps.log))
	r.Use(middleware.CORS())
	r.Use(metrics.Instrument)
	r.Use(middleware.MethodOverride(deps.config.Upload.MaxBytes))

	wireAuth(r, handler.Auth, deps)
	wireUser(r, handler.User, deps)
	wireProperty(r, handler.Property, handler.Room, deps)
	wireRoom(r, handler.Room, deps)
	wireBooking(r, handler.Booking, deps)
	wireTenant(r, handler.Tenant, deps)
	wireDashboard(r, handler.Dashboard, deps)
	wireVerification(r, handler.Verification, deps)
	wireReport(r, handler.Report, deps)
	wireReview(r, handler.Review, deps)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := deps.repo.DB.Ping(ctx); err != nil {
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "database unavailable", nil, nil)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(strings.TrimSuffix(deps.config.Upload.Dir, "/"))))
	r.Get("/uploads/*", uploads.ServeHTTP)

	return r
}
