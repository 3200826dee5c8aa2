package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGate(t *testing.T) (*Gate, *TokenMaker) {
	t.Helper()

	jwt := NewTokenMaker("test-secret")
	g, err := NewGate("admin@glowbeauty.com", "admin", jwt)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	return g, jwt
}

func TestGate_AdminPair(t *testing.T) {
	g, jwt := newTestGate(t)

	sess, err := g.Login("Admin@GlowBeauty.com ", "admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Role != RoleAdmin {
		t.Fatalf("role=%s want=admin", sess.Role)
	}

	claims, err := jwt.Parse(sess.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Role != RoleAdmin || claims.UserID != adminUserID {
		t.Fatalf("claims=%+v", claims)
	}
}

func TestGate_AnyNonEmptyPairIsUser(t *testing.T) {
	g, jwt := newTestGate(t)

	sess, err := g.Login("shopper@example.com", "whatever")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Role != RoleUser {
		t.Fatalf("role=%s want=user", sess.Role)
	}

	claims, err := jwt.Parse(sess.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "shopper@example.com" || claims.UserID == "" {
		t.Fatalf("claims=%+v", claims)
	}
}

func TestGate_WrongAdminPasswordIsOrdinaryLogin(t *testing.T) {
	g, _ := newTestGate(t)

	sess, err := g.Login("admin@glowbeauty.com", "nope")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Role != RoleUser {
		t.Fatalf("role=%s want=user", sess.Role)
	}
}

func TestGate_EmptyCredentials(t *testing.T) {
	g, _ := newTestGate(t)

	if _, err := g.Login("", "pw"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("err=%v", err)
	}
	if _, err := g.Login("a@b.c", "   "); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("err=%v", err)
	}
}

func TestTokenMaker_RejectsForeignSecret(t *testing.T) {
	a := NewTokenMaker("secret-a")
	b := NewTokenMaker("secret-b")

	tok, err := a.New("u_1", "x@y.z", RoleUser, sessionTTL)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := b.Parse(tok); err == nil {
		t.Fatalf("parse accepted token signed with a different secret")
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func TestRequireAdmin(t *testing.T) {
	g, jwt := newTestGate(t)
	h := RequireAdmin(jwt)(okHandler())

	do := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do(""); code != http.StatusUnauthorized {
		t.Fatalf("no token code=%d", code)
	}

	userSess, _ := g.Login("shopper@example.com", "pw")
	if code := do(userSess.AccessToken); code != http.StatusForbidden {
		t.Fatalf("user token code=%d", code)
	}

	adminSess, _ := g.Login("admin@glowbeauty.com", "admin")
	if code := do(adminSess.AccessToken); code != http.StatusOK {
		t.Fatalf("admin token code=%d", code)
	}
}

func TestRequireUser(t *testing.T) {
	g, jwt := newTestGate(t)

	var seen User
	h := RequireUser(jwt)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	sess, _ := g.Login("shopper@example.com", "pw")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}
	if seen.Email != "shopper@example.com" || seen.Role != RoleUser {
		t.Fatalf("user=%+v", seen)
	}
}
