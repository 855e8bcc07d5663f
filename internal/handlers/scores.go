package handlers

import (
	"net/http"
	"strconv"

	"github.com/wodboard/wodboard/internal/services"
)

// handleSubmitScore captures one judged result
func (h *Handlers) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	var req services.ScoreSubmission
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	score, err := h.Score.SubmitScore(r.Context(), req, actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, score)
}

// handleGetScore returns one score with its current status
func (h *Handlers) handleGetScore(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	score, err := h.Score.GetScore(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, score)
}

// handleConfirmScores confirms a batch of pending scores
func (h *Handlers) handleConfirmScores(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	var req ScoreConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	affected, err := h.Score.ConfirmScores(r.Context(), req.ScoreIDs, actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, BatchResponse{Affected: affected, Skipped: len(req.ScoreIDs) - len(affected)})
}

// handleRejectScores rejects a batch of pending scores with a reason
func (h *Handlers) handleRejectScores(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	var req ScoreRejectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	affected, err := h.Score.RejectScores(r.Context(), req.ScoreIDs, req.Reason, actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, BatchResponse{Affected: affected, Skipped: len(req.ScoreIDs) - len(affected)})
}

// handleDeleteScore removes a score outright
func (h *Handlers) handleDeleteScore(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actorFromRequest(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Score.DeleteScore(r.Context(), id, actor); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handlePendingScores returns the moderation queue
func (h *Handlers) handlePendingScores(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Score.ListPendingScores(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, pending)
}

// handleScoreAudits returns the audit trail for one score
func (h *Handlers) handleScoreAudits(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	audits, err := h.Score.AuditsForScore(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, audits)
}

// handleRecentAudits returns the most recent audit entries across all scores
func (h *Handlers) handleRecentAudits(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	audits, err := h.Score.RecentAudits(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, audits)
}
