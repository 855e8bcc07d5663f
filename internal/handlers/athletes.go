package handlers

import (
	"net/http"

	"github.com/wodboard/wodboard/internal/services"
)

// handleListAthletes returns the active roster, optionally filtered by division
func (h *Handlers) handleListAthletes(w http.ResponseWriter, r *http.Request) {
	division := r.URL.Query().Get("division")

	if division != "" {
		athletes, err := h.Athlete.ListAthletesByDivision(r.Context(), division)
		if err != nil {
			respondError(w, err)
			return
		}
		respondOK(w, athletes)
		return
	}

	athletes, err := h.Athlete.ListAthletes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, athletes)
}

// handleGetAthlete returns one athlete by ID
func (h *Handlers) handleGetAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	athlete, err := h.Athlete.GetAthlete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, athlete)
}

// handleRegisterAthlete registers a new athlete
func (h *Handlers) handleRegisterAthlete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	var req services.AthleteInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	athlete, err := h.Athlete.RegisterAthlete(r.Context(), req, actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, athlete)
}

// handleUpdateAthlete updates an athlete's contact fields
func (h *Handlers) handleUpdateAthlete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req services.AthleteInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Athlete.UpdateAthlete(r.Context(), id, req, actor); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Athlete updated")
}

// handleDeleteAthlete removes an athlete from the roster
func (h *Handlers) handleDeleteAthlete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Athlete.DeleteAthlete(r.Context(), id, actor); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleListDivisions returns the divisions with registered athletes
func (h *Handlers) handleListDivisions(w http.ResponseWriter, r *http.Request) {
	divisions, err := h.Athlete.ListDivisions(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, DivisionsResponse{Divisions: divisions})
}
