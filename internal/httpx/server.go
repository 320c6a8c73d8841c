package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "store API is running",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"users":    "/api/users",
				"products": "/api/products",
				"orders":   "/api/orders",
			},
		})
	})
	r.Get("/api", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "store API - available endpoints",
			"version": "1.0.0",
			"endpoints": map[string]any{
				"users": map[string]string{
					"GET /api/users":         "list users (page, limit, search)",
					"GET /api/users/{id}":    "get user by id",
					"POST /api/users":        "create user",
					"PUT /api/users/{id}":    "update user",
					"DELETE /api/users/{id}": "delete user",
				},
				"products": map[string]string{
					"GET /api/products":         "list products (page, limit, category, search)",
					"GET /api/products/{id}":    "get product by id",
					"POST /api/products":        "create product",
					"PUT /api/products/{id}":    "update product",
					"DELETE /api/products/{id}": "delete product",
				},
				"orders": map[string]string{
					"GET /api/orders":         "list orders (status, user_id)",
					"GET /api/orders/{id}":    "get order by id (enriched)",
					"POST /api/orders":        "create order",
					"PUT /api/orders/{id}":    "update order status",
					"DELETE /api/orders/{id}": "cancel order",
				},
			},
		})
	})
	return r
}
