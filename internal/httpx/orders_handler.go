package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ariefcatur/go-store-api.git/internal/events"
	"github.com/ariefcatur/go-store-api.git/internal/redisx"
	"github.com/ariefcatur/go-store-api.git/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type OrdersHandler struct {
	Store    *store.Store
	Producer *events.Producer // nil = events off
	Redis    *redis.Client    // nil = cache off
	Service  string
}

type CreateOrderReq struct {
	UserID   int               `json:"user_id"`
	Products []store.OrderItem `json:"products"`
}

type UpdateOrderReq struct {
	Status store.Status `json:"status"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	out, err := h.Store.ListOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := out[:0]
		for _, o := range out {
			if o.Status == store.Status(status) {
				filtered = append(filtered, o)
			}
		}
		out = filtered
	}
	if uid := r.URL.Query().Get("user_id"); uid != "" {
		id, err := strconv.Atoi(uid)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user_id"})
			return
		}
		filtered := out[:0]
		for _, o := range out {
			if o.UserID == id {
				filtered = append(filtered, o)
			}
		}
		out = filtered
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": out})
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	// 1) coba cache
	key := fmt.Sprintf(redisx.KeyOrderView, id)
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			writeJSON(w, http.StatusOK, json.RawMessage(s))
			return
		}
	}

	// 2) fallback store
	detail, err := h.Store.GetOrder(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	b, _ := json.Marshal(detail)
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, key, b, redisx.TTLOrderView).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.Store.CreateOrder(ctx, req.UserID, req.Products)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Producer.Publish(events.TopicOrderCreated, events.PartitionKey(o.ID),
		events.NewEnvelope(events.EventOrderCreated, h.Service, r.Header.Get("X-Request-Id"), strconv.Itoa(o.ID),
			events.OrderCreatedPayload{OrderID: o.ID, UserID: o.UserID, Items: o.Items, Total: o.Total}))

	writeJSON(w, http.StatusCreated, map[string]any{"message": "order created", "order": o})
}

func (h *OrdersHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req UpdateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.Store.UpdateOrderStatus(ctx, id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(ctx, id)

	h.Producer.Publish(events.TopicOrderStatusUpdated, events.PartitionKey(o.ID),
		events.NewEnvelope(events.EventOrderStatusUpdated, h.Service, r.Header.Get("X-Request-Id"), strconv.Itoa(o.ID),
			events.OrderStatusUpdatedPayload{OrderID: o.ID, Status: o.Status}))

	writeJSON(w, http.StatusOK, map[string]any{"message": "order status updated", "order": o})
}

func (h *OrdersHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.Store.CancelOrder(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	h.invalidate(ctx, id)

	h.Producer.Publish(events.TopicOrderCancelled, events.PartitionKey(o.ID),
		events.NewEnvelope(events.EventOrderCancelled, h.Service, r.Header.Get("X-Request-Id"), strconv.Itoa(o.ID),
			events.OrderCancelledPayload{OrderID: o.ID, Status: o.Status, Restocked: o.Status == store.StatusPending}))

	writeJSON(w, http.StatusOK, map[string]any{"message": "order cancelled", "order": o})
}

func (h *OrdersHandler) invalidate(ctx context.Context, id int) {
	if h.Redis == nil {
		return
	}
	_ = h.Redis.Del(ctx, fmt.Sprintf(redisx.KeyOrderView, id)).Err()
}
