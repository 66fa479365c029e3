package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/toolgate/toolgate/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestAccount represents account data for testing HTTP handlers.
type TestAccount struct {
	AccountID  string
	ActivityID string
}

// SignedInAccount returns a TestAccount with fresh identifiers.
func SignedInAccount() TestAccount {
	return TestAccount{
		AccountID:  primitive.NewObjectID().Hex(),
		ActivityID: primitive.NewObjectID().Hex(),
	}
}

// WithAccount adds a session to the request context for testing
// authenticated handlers. This bypasses the cookie middleware and injects
// the session directly.
func WithAccount(r *http.Request, acct TestAccount) *http.Request {
	return auth.WithTestSession(r, &auth.Session{
		AccountID:  acct.AccountID,
		ActivityID: acct.ActivityID,
	})
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a session in context.
func NewAuthenticatedRequest(method, target string, acct TestAccount) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return WithAccount(req, acct)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	body := r.Body.String()
	if !strings.Contains(body, expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
