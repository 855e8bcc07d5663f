package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/wodboard/wodboard/internal/models"
)

const (
	CookieName    = "wodboard_session"
	SessionExpiry = 24 * time.Hour
)

// Gym-themed words for password generation
var gymWords = []string{
	"barbell", "kettlebell", "burpee", "thruster", "snatch",
	"chalk", "rope", "box", "wallball", "rower",
	"amrap", "emom", "chipper", "metcon", "pistol",
	"muscle", "clean", "jerk", "squat",
}

// Session is one authenticated login
type Session struct {
	Name    string
	Role    models.Role
	Expires time.Time
}

// Auth maps per-role passwords to sessions. A login's password decides the
// role; the supplied display name travels into the audit trail as the actor.
type Auth struct {
	passwords map[models.Role]string
	sessions  map[string]Session
	mu        sync.RWMutex
}

// New creates a new Auth instance with one password per role
func New(passwords map[models.Role]string) *Auth {
	return &Auth{
		passwords: passwords,
		sessions:  make(map[string]Session),
	}
}

// GeneratePassword creates a random 3-word password
func GeneratePassword() string {
	words := make([]string, 3)
	for i := range words {
		idx := randomInt(len(gymWords))
		words[i] = gymWords[idx]
	}
	return strings.Join(words, "-")
}

// Login validates the password, resolves its role, and returns a session
// token. The name is what audit entries will record for this session.
func (a *Auth) Login(name, password string) (string, models.Role, bool) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return "", 0, false
	}

	var role models.Role
	for r, p := range a.passwords {
		if p != "" && p == password {
			role = r
			break
		}
	}
	if role == 0 {
		return "", 0, false
	}

	token := generateToken()
	a.mu.Lock()
	a.sessions[token] = Session{
		Name:    name,
		Role:    role,
		Expires: time.Now().Add(SessionExpiry),
	}
	a.mu.Unlock()

	return token, role, true
}

// Logout invalidates a session token
func (a *Auth) Logout(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}

// SessionFor returns the live session for a token, if any
func (a *Auth) SessionFor(token string) (Session, bool) {
	a.mu.RLock()
	sess, exists := a.sessions[token]
	a.mu.RUnlock()

	if !exists {
		return Session{}, false
	}
	if time.Now().After(sess.Expires) {
		a.mu.Lock()
		delete(a.sessions, token)
		a.mu.Unlock()
		return Session{}, false
	}
	return sess, true
}

// SessionFromRequest extracts and validates the session from a request
func (a *Auth) SessionFromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}
	return a.SessionFor(cookie.Value)
}

// ActorFromRequest resolves the acting identity for a request. The second
// return is false when the request carries no valid session.
func (a *Auth) ActorFromRequest(r *http.Request) (models.Actor, bool) {
	sess, ok := a.SessionFromRequest(r)
	if !ok {
		return models.Actor{}, false
	}
	return models.Actor{
		Name: sess.Name,
		Role: sess.Role,
	}, true
}

// RequireRole middleware gates API endpoints by minimum role: 401 with no
// session, 403 with an insufficient one.
func (a *Auth) RequireRole(min models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := a.SessionFromRequest(r)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - please log in"}`))
				return
			}
			if !sess.Role.AtLeast(min) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"code":"FORBIDDEN","error":"Forbidden - ` + min.String() + ` role required"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetSessionCookie sets the session cookie on the response
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionExpiry.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateToken creates a random session token
func generateToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// randomInt returns a random int in [0, max)
func randomInt(max int) int {
	bytes := make([]byte, 1)
	rand.Read(bytes)
	return int(bytes[0]) % max
}
