package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wodboard/wodboard/internal/models"
)

func newTestAuth() *Auth {
	return New(map[models.Role]string{
		models.RoleJudge: "judge-pass",
		models.RoleCoach: "coach-pass",
		models.RoleAdmin: "admin-pass",
		models.RoleOwner: "owner-pass",
	})
}

func TestLogin_ResolvesRoleFromPassword(t *testing.T) {
	a := newTestAuth()

	tests := []struct {
		password string
		want     models.Role
	}{
		{"judge-pass", models.RoleJudge},
		{"coach-pass", models.RoleCoach},
		{"admin-pass", models.RoleAdmin},
		{"owner-pass", models.RoleOwner},
	}
	for _, tt := range tests {
		token, role, ok := a.Login("Pat", tt.password)
		if !ok {
			t.Fatalf("Login with %q failed", tt.password)
		}
		if role != tt.want {
			t.Errorf("password %q: expected role %s, got %s", tt.password, tt.want, role)
		}
		if token == "" {
			t.Error("expected a session token")
		}
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	a := newTestAuth()

	if _, _, ok := a.Login("Pat", "wrong"); ok {
		t.Error("expected login failure for wrong password")
	}
	if _, _, ok := a.Login("", "judge-pass"); ok {
		t.Error("expected login failure for empty name")
	}
	if _, _, ok := a.Login("Pat", ""); ok {
		t.Error("expected login failure for empty password")
	}
}

func TestLogin_EmptyConfiguredPasswordNeverMatches(t *testing.T) {
	a := New(map[models.Role]string{
		models.RoleJudge: "judge-pass",
		models.RoleOwner: "",
	})

	if _, _, ok := a.Login("Pat", ""); ok {
		t.Error("an unset role password must not be loginable")
	}
}

func TestSessionFor_Lifecycle(t *testing.T) {
	a := newTestAuth()

	token, _, ok := a.Login("Judge Judy", "judge-pass")
	if !ok {
		t.Fatal("Login failed")
	}

	sess, ok := a.SessionFor(token)
	if !ok {
		t.Fatal("expected valid session")
	}
	if sess.Name != "Judge Judy" || sess.Role != models.RoleJudge {
		t.Errorf("unexpected session: %+v", sess)
	}

	a.Logout(token)
	if _, ok := a.SessionFor(token); ok {
		t.Error("expected session invalid after logout")
	}
}

func TestSessionFor_Expired(t *testing.T) {
	a := newTestAuth()

	token, _, _ := a.Login("Pat", "judge-pass")

	a.mu.Lock()
	sess := a.sessions[token]
	sess.Expires = time.Now().Add(-1 * time.Minute)
	a.sessions[token] = sess
	a.mu.Unlock()

	if _, ok := a.SessionFor(token); ok {
		t.Error("expected expired session to be rejected")
	}
}

func TestActorFromRequest(t *testing.T) {
	a := newTestAuth()
	token, _, _ := a.Login("Coach Kim", "coach-pass")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	actor, ok := a.ActorFromRequest(r)
	if !ok {
		t.Fatal("expected actor from valid session")
	}
	if actor.Name != "Coach Kim" || actor.Role != models.RoleCoach {
		t.Errorf("unexpected actor: %+v", actor)
	}

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := a.ActorFromRequest(bare); ok {
		t.Error("expected no actor without a cookie")
	}
}

func TestRequireRole(t *testing.T) {
	a := newTestAuth()
	handler := a.RequireRole(models.RoleCoach)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// No session: 401
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without session, got %d", w.Code)
	}

	// Judge session: 403
	judgeToken, _, _ := a.Login("Pat", "judge-pass")
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: judgeToken})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for judge, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "coach") {
		t.Errorf("expected the required role in the error, got %s", w.Body.String())
	}

	// Admin session passes a coach gate
	adminToken, _, _ := a.Login("Ada", "admin-pass")
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: adminToken})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for admin, got %d", w.Code)
	}
}

func TestGeneratePassword_Format(t *testing.T) {
	p := GeneratePassword()
	parts := strings.Split(p, "-")
	if len(parts) != 3 {
		t.Errorf("expected 3-word password, got %q", p)
	}
}
