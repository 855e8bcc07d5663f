package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wodboard/wodboard/internal/models"
)

// handleLeaderboard returns the standings for one division. The route is
// public; the pending preview (?include_pending=true) is gated to coach and
// above here because the gate depends on a query parameter.
func (h *Handlers) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	division := chi.URLParam(r, "division")
	includePending := r.URL.Query().Get("include_pending") == "true"

	if includePending {
		if sess, ok := h.Auth.SessionFromRequest(r); !ok || !sess.Role.AtLeast(models.RoleCoach) {
			respondError(w, Forbidden("Pending previews require coach or higher"))
			return
		}
	}

	board, err := h.Leaderboard.GetLeaderboard(r.Context(), division, includePending)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, board)
}

// handlePodium returns the division's top three for award certificates
func (h *Handlers) handlePodium(w http.ResponseWriter, r *http.Request) {
	division := chi.URLParam(r, "division")

	podium, err := h.Leaderboard.GetPodium(r.Context(), division)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, podium)
}
