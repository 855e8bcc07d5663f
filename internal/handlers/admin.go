package handlers

import (
	"net/http"
)

// handleGetStats returns competition-wide counters
func (h *Handlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Leaderboard.GetStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, stats)
}

// handleScoringStatus returns whether submission is open
func (h *Handlers) handleScoringStatus(w http.ResponseWriter, r *http.Request) {
	open, err := h.Settings.IsScoringOpen(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ScoringStatusResponse{Open: open})
}

// handleSetScoringStatus opens or closes score submission
func (h *Handlers) handleSetScoringStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	var req ScoringStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Settings.SetScoringOpen(r.Context(), req.Open, actor); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ScoringStatusResponse{Open: req.Open})
}

// handleSetSetting updates one arbitrary setting
func (h *Handlers) handleSetSetting(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	var req SettingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Key == "" {
		respondError(w, BadRequest("Setting key is required"))
		return
	}

	if err := h.Settings.SetSetting(r.Context(), req.Key, req.Value, actor); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Setting updated")
}
