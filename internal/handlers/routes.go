package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wodboard/wodboard/internal/models"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// WebSocket
	r.Get("/ws", h.Hub.ServeWs)

	// Auth (public)
	r.Post("/api/auth/login", h.handleLogin)
	r.Post("/api/auth/logout", h.handleLogout)
	r.Get("/api/auth/session", h.handleSession)

	// Spectator API (public)
	r.Get("/api/leaderboard/{division}", h.handleLeaderboard)
	r.Get("/api/leaderboard/{division}/podium", h.handlePodium)
	r.Get("/api/divisions", h.handleListDivisions)
	r.Get("/api/events", h.handleListEvents)
	r.Get("/api/events/{id}", h.handleGetEvent)
	r.Get("/api/scoring-status", h.handleScoringStatus)

	// Judge API
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireRole(models.RoleJudge))

		r.Get("/api/athletes", h.handleListAthletes)
		r.Get("/api/athletes/{id}", h.handleGetAthlete)
		r.Post("/api/scores", h.handleSubmitScore)
		r.Get("/api/scores/{id}", h.handleGetScore)
	})

	// Moderation API
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireRole(models.RoleCoach))

		r.Get("/api/scores/pending", h.handlePendingScores)
		r.Post("/api/scores/confirm", h.handleConfirmScores)
		r.Post("/api/scores/reject", h.handleRejectScores)
		r.Get("/api/scores/{id}/audits", h.handleScoreAudits)
		r.Get("/api/audits", h.handleRecentAudits)
	})

	// Admin API
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireRole(models.RoleAdmin))

		r.Post("/api/athletes", h.handleRegisterAthlete)
		r.Put("/api/athletes/{id}", h.handleUpdateAthlete)
		r.Delete("/api/athletes/{id}", h.handleDeleteAthlete)

		r.Post("/api/events", h.handleCreateEvent)
		r.Put("/api/events/{id}", h.handleUpdateEvent)
		r.Delete("/api/events/{id}", h.handleDeleteEvent)

		r.Delete("/api/scores/{id}", h.handleDeleteScore)

		r.Get("/api/admin/stats", h.handleGetStats)
		r.Post("/api/admin/scoring-control", h.handleSetScoringStatus)
		r.Post("/api/admin/settings", h.handleSetSetting)
	})

	return r
}
