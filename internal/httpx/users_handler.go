package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ariefcatur/go-store-api.git/internal/store"
	"github.com/go-chi/chi/v5"
)

type UsersHandler struct {
	Store *store.Store
}

func (h *UsersHandler) Register(r *chi.Mux) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *UsersHandler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if search := r.URL.Query().Get("search"); search != "" {
		q := strings.ToLower(search)
		filtered := users[:0]
		for _, u := range users {
			if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	page, limit := pageParams(r)
	pageUsers, pg := paginate(users, page, limit)
	writeJSON(w, http.StatusOK, map[string]any{"users": pageUsers, "pagination": pg})
}

func (h *UsersHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) create(w http.ResponseWriter, r *http.Request) {
	var in store.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	u, err := h.Store.CreateUser(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "user created", "user": u})
}

func (h *UsersHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var patch store.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	u, err := h.Store.UpdateUser(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "user updated", "user": u})
}

func (h *UsersHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := h.Store.DeleteUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "user deleted", "user": u})
}
