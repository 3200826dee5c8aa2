// Package storefront assembles the whole service behind one handler:
// catalog, reviews, carts, the login gate and the AI assistant.
package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"GlowBeauty/internal/assistant"
	"GlowBeauty/internal/auth"
	"GlowBeauty/internal/cart"
	"GlowBeauty/internal/catalog"
	"GlowBeauty/internal/review"
	"GlowBeauty/internal/storage"
	"GlowBeauty/pkg/kit"
)

type Deps struct {
	Log     *zap.Logger
	Storage storage.Port

	Catalog *catalog.Store
	Reviews *review.Store
	Carts   *cart.Store

	Gate *auth.Gate
	JWT  *auth.TokenMaker
	AI   *assistant.Client
}

type HTTPDeps struct {
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

const (
	loginLimitPerMin     = 5
	assistantLimitPerMin = 10
	limitWindow          = time.Minute

	readyTimeout = 2 * time.Second
)

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	catalogSrv := &catalog.Server{Store: deps.Catalog, Log: deps.Log}
	reviewSrv := &review.Server{Store: deps.Reviews, Log: deps.Log}
	cartSrv := &cart.Server{Store: deps.Carts, Catalog: deps.Catalog, Log: deps.Log}
	authSrv := &auth.Server{Log: deps.Log, Gate: deps.Gate, JWT: deps.JWT}
	aiSrv := &assistant.Server{AI: deps.AI, Catalog: deps.Catalog, Log: deps.Log}

	requireUser := auth.RequireUser(deps.JWT)
	requireAdmin := auth.RequireAdmin(deps.JWT)

	r := chi.NewRouter()
	setupMiddleware(r, deps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(deps.Storage, deps.Log))

	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, limitWindow)
	r.Route("/auth", func(ar chi.Router) {
		ar.With(loginLimiter.Middleware).Post("/login", authSrv.LoginHandler())
		ar.Get("/whoami", authSrv.WhoAmIHandler())
	})

	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", catalogSrv.ListHandler())
		pr.Get("/categories", catalogSrv.CategoriesHandler())
		pr.Get("/suggest", catalogSrv.SuggestHandler())
		pr.With(requireAdmin).Post("/", catalogSrv.CreateHandler())

		pr.Route("/{id}", func(ir chi.Router) {
			ir.Get("/", catalogSrv.GetHandler())
			ir.With(requireAdmin).Delete("/", catalogSrv.DeleteHandler())
			ir.Get("/reviews", reviewSrv.ListHandler())
			ir.Post("/reviews", reviewSrv.CreateHandler())
		})
	})

	r.Route("/cart", func(cr chi.Router) {
		cr.Use(requireUser)
		cr.Get("/", cartSrv.ViewHandler())
		cr.Delete("/", cartSrv.ClearHandler())
		cr.Post("/items", cartSrv.AddItemHandler())
		cr.Put("/items/{id}", cartSrv.SetQuantityHandler())
		cr.Delete("/items/{id}", cartSrv.RemoveItemHandler())
		cr.Post("/checkout", cartSrv.CheckoutHandler())
	})

	aiLimiter := kit.NewIPRateLimiter(assistantLimitPerMin, limitWindow)
	r.Route("/assistant", func(ar chi.Router) {
		ar.Use(aiLimiter.Middleware)
		ar.Post("/chat", aiSrv.ChatHandler())
		ar.Post("/skin-analysis", aiSrv.SkinAnalysisHandler())
		ar.With(requireAdmin).Post("/image", aiSrv.GenerateImageHandler())
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps Deps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func readyz(port storage.Port, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := port.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
