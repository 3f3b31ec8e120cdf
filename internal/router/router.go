package router

import (
	"net/http"

	"food-admin/internal/config"
	"food-admin/internal/handler"
	"food-admin/internal/metrics"
	"food-admin/internal/middleware"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Handlers groups the resource handlers mounted under /api.
type Handlers struct {
	User      *handler.UserHandler
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, cfg *config.Config, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true,"msg":"Food Delivery Admin API"}`))
	})

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	if cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	mux.HandleFunc("GET /api/users", h.User.List)
	mux.HandleFunc("POST /api/users", h.User.Create)
	mux.HandleFunc("PUT /api/users/{id}", h.User.Update)
	mux.HandleFunc("DELETE /api/users/{id}", h.User.Delete)

	mux.HandleFunc("GET /api/categories", h.Category.List)
	mux.HandleFunc("POST /api/categories", h.Category.Create)
	mux.HandleFunc("PUT /api/categories/{id}", h.Category.Update)
	mux.HandleFunc("DELETE /api/categories/{id}", h.Category.Delete)

	mux.HandleFunc("GET /api/products", h.Product.List)
	mux.HandleFunc("POST /api/products", h.Product.Create)
	mux.HandleFunc("PUT /api/products/{id}", h.Product.Update)
	mux.HandleFunc("DELETE /api/products/{id}", h.Product.Delete)

	// Orders are append-only: no update or delete routes
	mux.HandleFunc("GET /api/orders", h.Order.List)
	mux.HandleFunc("POST /api/orders", h.Order.Create)

	mux.HandleFunc("GET /api/dashboard", h.Dashboard.Summary)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "X-User-Email"},
	})

	// Apply middleware in order: Logging -> Metrics -> Recovery -> CORS.
	// Recovery sits inside Logging so a panicking request still gets its 500 request line.
	var handler http.Handler = mux
	handler = corsHandler.Handler(handler)
	handler = middleware.Recovery(logger)(handler)
	if cfg.Metrics.Enabled {
		handler = metrics.InstrumentHandler(handler)
	}
	handler = middleware.Logging(logger)(handler)

	return handler
}
