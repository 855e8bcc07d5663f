package handlers

import (
	"net/http"

	"github.com/wodboard/wodboard/internal/auth"
)

// handleLogin processes a JSON login and sets the session cookie
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	token, role, ok := h.Auth.Login(req.Name, req.Password)
	if !ok {
		respondError(w, Unauthorized("Invalid name or password"))
		return
	}

	auth.SetSessionCookie(w, token)
	respondOK(w, LoginResponse{Name: req.Name, Role: role.String()})
}

// handleLogout clears the session
func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Auth.Logout(cookie.Value)
	}

	auth.ClearSessionCookie(w)
	respondSuccess(w, "Logged out")
}

// handleSession reports the current session, if any
func (h *Handlers) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.Auth.SessionFromRequest(r)
	if !ok {
		respondOK(w, SessionResponse{Authenticated: false})
		return
	}
	respondOK(w, SessionResponse{
		Authenticated: true,
		Name:          sess.Name,
		Role:          sess.Role.String(),
	})
}
