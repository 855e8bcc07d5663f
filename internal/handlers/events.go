package handlers

import (
	"net/http"

	"github.com/wodboard/wodboard/internal/services"
)

// handleListEvents returns the events; ?all=true includes inactive ones
func (h *Handlers) handleListEvents(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("all") == "true" {
		events, err := h.Event.ListEvents(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		respondOK(w, events)
		return
	}

	events, err := h.Event.ListActiveEvents(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, events)
}

// handleGetEvent returns one event by ID
func (h *Handlers) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	event, err := h.Event.GetEvent(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, event)
}

// handleCreateEvent creates a new event
func (h *Handlers) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	var req services.EventInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.Event.CreateEvent(r.Context(), req, actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, event)
}

// handleUpdateEvent updates an event
func (h *Handlers) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req services.EventInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Event.UpdateEvent(r.Context(), id, req, actor); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Event updated")
}

// handleDeleteEvent deactivates an event
func (h *Handlers) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Event.DeleteEvent(r.Context(), id, actor); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}
