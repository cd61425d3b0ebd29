package merchant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/p2pcheckout/placetopay-go/internal/config"
	"github.com/p2pcheckout/placetopay-go/pkg/placetopay"
)

// Handler contains all HTTP handlers of the demo shop.
type Handler struct {
	checkout *placetopay.Checkout
	cfg      config.MerchantConfig
	store    *OrderStore
	logger   *zerolog.Logger
}

// New creates the API handler.
func New(checkout *placetopay.Checkout, cfg config.MerchantConfig, logger *zerolog.Logger) *Handler {
	return &Handler{
		checkout: checkout,
		cfg:      cfg,
		store:    NewOrderStore(),
		logger:   logger,
	}
}

// Response helpers

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondGatewayError maps client errors to API responses: caller mistakes
// become 400s, gateway rejections surface the gateway's envelope.
func (h *Handler) respondGatewayError(w http.ResponseWriter, err error) {
	var dataErr *placetopay.DataNotProvidedError
	if errors.As(err, &dataErr) {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", dataErr.Error())
		return
	}

	var gwErr *placetopay.GatewayError
	if errors.As(err, &gwErr) {
		var envelope struct {
			Status placetopay.Status `json:"status"`
		}
		if len(gwErr.Body) > 0 && json.Unmarshal(gwErr.Body, &envelope) == nil && envelope.Status.Status != "" {
			respondError(w, http.StatusBadGateway, "GATEWAY_REJECTED", envelope.Status.Message)
			return
		}
		respondError(w, http.StatusBadGateway, "GATEWAY_UNAVAILABLE", "Payment gateway request failed")
		return
	}

	h.logger.Error().Err(err).Msg("unexpected checkout error")
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// === Health & Info ===

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
	})
}

// ServerInfo handles GET /
func (h *Handler) ServerInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"name":        "merchant-demo",
		"version":     "1.0.0",
		"description": "Demo shop backed by the PlaceToPay checkout gateway",
	})
}

// === Orders ===

// CreateOrderRequest is the shop-facing order payload.
type CreateOrderRequest struct {
	Description string             `json:"description"`
	Amount      float64            `json:"amount"`
	Currency    string             `json:"currency"`
	Payer       *placetopay.Person `json:"payer,omitempty"`
}

// CreateOrder handles POST /api/v1/orders. It opens a checkout session and
// returns the URL the shopper must be redirected to.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be positive")
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = h.cfg.Currency
	}
	reference := uuid.New().String()

	session := placetopay.NewRedirectRequest(&placetopay.Payment{
		Reference:   reference,
		Description: req.Description,
		Amount:      placetopay.NewAmount(req.Amount, currency),
	}, h.cfg.ReturnURL, getClientIP(r), r.UserAgent())
	session.Locale = h.cfg.Locale
	session.Payer = req.Payer
	session.Expiration = time.Now().Add(24 * time.Hour).Format(time.RFC3339)

	resp, err := h.checkout.Request(r.Context(), session)
	if err != nil {
		h.respondGatewayError(w, err)
		return
	}

	order := &Order{
		Reference:   reference,
		RequestID:   resp.RequestID,
		ProcessURL:  resp.ProcessURL,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    currency,
		Status:      string(placetopay.StatusPending),
		CreatedAt:   time.Now(),
	}
	h.store.Put(order)

	h.logger.Info().
		Str("reference", reference).
		Str("requestId", resp.RequestID).
		Msg("checkout session created")

	respondJSON(w, http.StatusCreated, order)
}

// GetOrder handles GET /api/v1/orders/{reference}. It refreshes the order
// from the gateway's session state.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	order := h.store.Get(reference)
	if order == nil {
		respondError(w, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	info, err := h.checkout.Query(r.Context(), order.RequestID)
	if err != nil {
		h.respondGatewayError(w, err)
		return
	}

	if info.Status != nil {
		h.store.SetStatus(reference, string(info.Status.Status))
	}

	result := map[string]any{
		"order":   order,
		"session": info.ToMap(),
	}
	if tx := info.LastTransaction(false); tx != nil {
		result["lastTransaction"] = tx.ToMap()
	}
	respondJSON(w, http.StatusOK, result)
}

// Return handles GET /return/{reference}, the URL the gateway sends the
// shopper back to after the hosted session. It refreshes the order and shows
// the outcome.
func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	order := h.store.Get(reference)
	if order == nil {
		respondError(w, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	info, err := h.checkout.Query(r.Context(), order.RequestID)
	if err != nil {
		h.respondGatewayError(w, err)
		return
	}
	if info.Status != nil {
		h.store.SetStatus(reference, string(info.Status.Status))
	}

	h.logger.Info().
		Str("reference", reference).
		Str("requestId", order.RequestID).
		Msg("shopper returned from checkout")

	respondJSON(w, http.StatusOK, map[string]any{
		"order":    h.store.Get(reference),
		"approved": info.Status != nil && info.Status.IsApproved(),
	})
}

// ListOrders handles GET /api/v1/orders.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.List())
}

// RefundOrder handles POST /api/v1/orders/{reference}/refund. It reverses
// the order's most recent approved transaction.
func (h *Handler) RefundOrder(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	order := h.store.Get(reference)
	if order == nil {
		respondError(w, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	info, err := h.checkout.Query(r.Context(), order.RequestID)
	if err != nil {
		h.respondGatewayError(w, err)
		return
	}

	tx := info.LastApprovedTransaction()
	if tx == nil {
		respondError(w, http.StatusConflict, "NOTHING_TO_REFUND", "Order has no approved transaction")
		return
	}

	reversal, err := h.checkout.Reverse(r.Context(), tx.InternalReference)
	if err != nil {
		h.respondGatewayError(w, err)
		return
	}

	h.store.SetStatus(reference, string(placetopay.StatusRefunded))
	h.logger.Info().
		Str("reference", reference).
		Str("internalReference", tx.InternalReference).
		Msg("transaction reversed")

	respondJSON(w, http.StatusOK, reversal.ToMap())
}
