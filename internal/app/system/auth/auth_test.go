// internal/app/system/auth/auth_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testSessionKey = "session-signing-material-for-tests-0123456789"

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	sm, err := NewSessionManager(testSessionKey, "toolgate-test", "", 24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager() error = %v", err)
	}
	return sm
}

// issueCookie creates a session and returns the Set-Cookie value.
func issueCookie(t *testing.T, sm *SessionManager, accountID, activityID primitive.ObjectID) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	if err := sm.CreateSession(rec, req, accountID, activityID); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	cookie := rec.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("CreateSession() did not set a cookie")
	}
	return cookie
}

func TestSession_RoundTrip(t *testing.T) {
	sm := newTestManager(t)
	accountID := primitive.NewObjectID()
	activityID := primitive.NewObjectID()

	cookie := issueCookie(t, sm, accountID, activityID)

	var got *Session
	handler := sm.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentSession(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Cookie", cookie)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("LoadSession did not inject a session for a valid cookie")
	}
	if got.Account() != accountID {
		t.Errorf("Account() = %v, want %v", got.Account(), accountID)
	}
	if got.Activity() != activityID {
		t.Errorf("Activity() = %v, want %v", got.Activity(), activityID)
	}
}

func TestSession_TamperedCookieIsAnonymous(t *testing.T) {
	sm := newTestManager(t)
	cookie := issueCookie(t, sm, primitive.NewObjectID(), primitive.NewObjectID())

	// Flip a character in the middle of the signed value (the part between
	// "=" and the first ";") to break the MAC.
	pair, _, _ := strings.Cut(cookie, ";")
	tampered := []byte(cookie)
	mid := strings.Index(pair, "=") + (len(pair)-strings.Index(pair, "="))/2
	if tampered[mid] != 'x' {
		tampered[mid] = 'x'
	} else {
		tampered[mid] = 'y'
	}

	var found bool
	handler := sm.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = CurrentSession(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Cookie", string(tampered))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if found {
		t.Error("tampered cookie produced an authenticated session")
	}
}

func TestSession_MissingCookieIsAnonymous(t *testing.T) {
	sm := newTestManager(t)

	var found bool
	handler := sm.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = CurrentSession(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if found {
		t.Error("request without cookie produced an authenticated session")
	}
}

func TestRequireSignedIn_RedirectsHTML(t *testing.T) {
	sm := newTestManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler ran for anonymous request")
	}))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login") {
		t.Errorf("Location = %q, want /login redirect", loc)
	}
}

func TestRequireSignedIn_JSON401ForAPI(t *testing.T) {
	sm := newTestManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler ran for anonymous request")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if body := rec.Body.String(); !strings.Contains(body, "unauthenticated") {
		t.Errorf("body = %q, want unauthenticated kind", body)
	}
}

func TestRequireSignedIn_PassesAuthenticated(t *testing.T) {
	sm := newTestManager(t)

	var ran bool
	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	req = WithTestSession(req, &Session{
		AccountID:  primitive.NewObjectID().Hex(),
		ActivityID: primitive.NewObjectID().Hex(),
	})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ran {
		t.Error("protected handler did not run for authenticated request")
	}
}

func TestDestroySession_ExpiresCookie(t *testing.T) {
	sm := newTestManager(t)
	cookie := issueCookie(t, sm, primitive.NewObjectID(), primitive.NewObjectID())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Cookie", cookie)
	rec := httptest.NewRecorder()
	sm.DestroySession(rec, req)

	setCookie := rec.Header().Get("Set-Cookie")
	if setCookie == "" {
		t.Fatal("DestroySession() did not rewrite the cookie")
	}
	if !strings.Contains(setCookie, "Max-Age=0") {
		t.Errorf("Set-Cookie = %q, want Max-Age=0", setCookie)
	}
}

func TestNewSessionManager_WeakKeyRejectedInProd(t *testing.T) {
	_, err := NewSessionManager("short", "toolgate-test", "", time.Hour, true, zap.NewNop())
	if err == nil {
		t.Error("NewSessionManager() accepted a weak key in secure mode")
	}

	if _, err := NewSessionManager("", "toolgate-test", "", time.Hour, false, zap.NewNop()); err == nil {
		t.Error("NewSessionManager() accepted an empty key")
	}
}
