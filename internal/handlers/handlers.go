package handlers

import (
	"net/http"

	"github.com/wodboard/wodboard/internal/auth"
	"github.com/wodboard/wodboard/internal/models"
	"github.com/wodboard/wodboard/internal/services"
	"github.com/wodboard/wodboard/internal/websocket"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Athlete     services.AthleteServicer
	Event       services.EventServicer
	Score       services.ScoreServicer
	Leaderboard services.LeaderboardServicer
	Settings    services.SettingsServicer
	Auth        *auth.Auth
	Hub         *websocket.Hub
	Log         HTTPLogger
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	athlete services.AthleteServicer,
	event services.EventServicer,
	score services.ScoreServicer,
	leaderboard services.LeaderboardServicer,
	settings services.SettingsServicer,
	sessionAuth *auth.Auth,
	hub *websocket.Hub,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Athlete:     athlete,
		Event:       event,
		Score:       score,
		Leaderboard: leaderboard,
		Settings:    settings,
		Auth:        sessionAuth,
		Hub:         hub,
		Log:         log,
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// actorFromRequest resolves the acting identity on a mutating request. The
// route middleware has already verified the session, so a miss here means the
// session expired between the gate and the handler.
func (h *Handlers) actorFromRequest(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := h.Auth.ActorFromRequest(r)
	if !ok {
		respondError(w, ErrUnauthorized)
		return models.Actor{}, false
	}
	return actor, true
}
