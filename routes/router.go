package routes

import (
	"net/http"

	controllers "github.com/SouvikBuilds/Bengali-Food/controllers"
	middleware "github.com/SouvikBuilds/Bengali-Food/middlewares"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter builds the full handler: food routes, the welcome route and
// /metrics, wrapped in CORS, request metrics, request id and access logging.
func NewRouter(foods *controllers.FoodController, logger *zap.Logger, reg *prometheus.Registry) (http.Handler, error) {
	metrics := middleware.NewMetrics()
	if err := metrics.Register(reg); err != nil {
		return nil, err
	}

	router := mux.NewRouter()

	PublicRoutes(router)
	FoodRoutes(router, foods)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	var handler http.Handler = router
	handler = middleware.CORS(handler)
	handler = metrics.Middleware(router)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	return handler, nil
}
