package api

import (
	"errors"
	"net/http"

	"github.com/asilingas/fambudg/internal/domain"
)

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	user, err := h.auth.Register(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login. Failed credentials answer 401,
// not the 403 other access-denied errors map to.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		var denied *domain.AccessDeniedError
		if errors.As(err, &denied) {
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": denied.Message})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.GetUserByID(r.Context(), principal(r).ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
