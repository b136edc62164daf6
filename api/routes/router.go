package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lmedina-dev/tastebite-backend/api/controllers"
	"github.com/lmedina-dev/tastebite-backend/api/middleware"
	"github.com/lmedina-dev/tastebite-backend/api/responses"
	"github.com/lmedina-dev/tastebite-backend/internal/cart"
	"github.com/lmedina-dev/tastebite-backend/internal/foods"
	"github.com/lmedina-dev/tastebite-backend/pkg/config"
	"github.com/lmedina-dev/tastebite-backend/pkg/db"
	"github.com/lmedina-dev/tastebite-backend/pkg/logger"
	"github.com/lmedina-dev/tastebite-backend/pkg/metrics"
	"github.com/lmedina-dev/tastebite-backend/pkg/redis"
)

// NewRouter wires every HTTP surface onto a chi router. All collaborators are
// constructed by the caller and passed in explicitly.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	promRegistry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	foodService foods.Service,
	cartService cart.Service,
) http.Handler {
	r := chi.NewRouter()

	writer := responses.NewWriter(logg, !cfg.App.IsProd())

	r.Use(
		middleware.Recoverer(logg, writer),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", controllers.HealthLive(cfg, writer))
		r.Get("/ready", controllers.HealthReady(cfg, logg, writer, dbP, redisP))
	})

	if promRegistry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/foods", func(r chi.Router) {
		r.Get("/", controllers.ListFoods(foodService, writer))
		r.Post("/", controllers.CreateFood(foodService, writer))
		r.Get("/{foodId}", controllers.GetFood(foodService, writer))
		r.Put("/{foodId}", controllers.UpdateFood(foodService, writer))
		r.Delete("/{foodId}", controllers.DeleteFood(foodService, writer))
	})

	r.Route("/cart", func(r chi.Router) {
		r.Use(middleware.Session(logg))
		r.Get("/", controllers.CartFetch(cartService, writer))
		r.Delete("/", controllers.CartClear(cartService, writer))
		r.Post("/items", controllers.CartAddItem(cartService, writer))
		r.Patch("/items/{foodId}", controllers.CartUpdateItem(cartService, writer))
		r.Delete("/items/{foodId}", controllers.CartRemoveItem(cartService, writer))
	})

	return r
}
