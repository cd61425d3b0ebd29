// Package merchant - Router setup
package merchant

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRouter creates and configures the HTTP router.
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()

	r.Use(h.RecoveryMiddleware)
	r.Use(CORSMiddleware)
	r.Use(h.LoggingMiddleware)

	r.HandleFunc("/", h.ServerInfo).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/return/{reference}", h.Return).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/orders", h.CreateOrder).Methods("POST")
	api.HandleFunc("/orders", h.ListOrders).Methods("GET")
	api.HandleFunc("/orders/{reference}", h.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{reference}/refund", h.RefundOrder).Methods("POST")

	r.NotFoundHandler = http.HandlerFunc(NotFoundHandler)

	return r
}

// NotFoundHandler handles 404 errors.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
}
