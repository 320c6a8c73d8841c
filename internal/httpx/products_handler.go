package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ariefcatur/go-store-api.git/internal/store"
	"github.com/go-chi/chi/v5"
)

type ProductsHandler struct {
	Store *store.Store
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filtered := products[:0]
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	if search := r.URL.Query().Get("search"); search != "" {
		q := strings.ToLower(search)
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	page, limit := pageParams(r)
	pageProducts, pg := paginate(products, page, limit)
	writeJSON(w, http.StatusOK, map[string]any{"products": pageProducts, "pagination": pg})
}

func (h *ProductsHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := h.Store.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	var in store.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	p, err := h.Store.CreateProduct(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "product created", "product": p})
}

func (h *ProductsHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var patch store.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	p, err := h.Store.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "product updated", "product": p})
}

func (h *ProductsHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := h.Store.DeleteProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "product deleted", "product": p})
}
