package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"wedding-rsvp-go/internal/domain/account"
	"wedding-rsvp-go/internal/domain/guest"
	"wedding-rsvp-go/pkg/logger"
)

type stubAuthenticator struct {
	account *account.Account
	err     error
	calls   int
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, credential string) (*account.Account, error) {
	s.calls++
	return s.account, s.err
}

type stubAuthorizer struct {
	guest *guest.Guest
	err   error
}

func (s stubAuthorizer) Authorize(ctx context.Context, accountID int64, publicID string) (*guest.Guest, error) {
	return s.guest, s.err
}

func captureAccount(seen *account.Account, found *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen, *found = AccountFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestOptionalWithoutHeaderSkipsLookup(t *testing.T) {
	stub := &stubAuthenticator{}
	auth := NewBasicAuth(stub, "", logger.Discard())

	var seen account.Account
	var found bool
	rec := httptest.NewRecorder()
	auth.Optional(captureAccount(&seen, &found)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guests", nil))

	if rec.Code != http.StatusOK || found {
		t.Fatalf("expected anonymous pass-through, got %d found=%v", rec.Code, found)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no authentication attempt, got %d", stub.calls)
	}
}

func TestRequireAttachesAccount(t *testing.T) {
	stub := &stubAuthenticator{account: &account.Account{ID: 7, Username: "alice"}}
	auth := NewBasicAuth(stub, "", logger.Discard())

	var seen account.Account
	var found bool
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", account.BasicAuthHeader("alice", "pw"))
	rec := httptest.NewRecorder()
	auth.Require(captureAccount(&seen, &found)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !found || seen.ID != 7 {
		t.Fatalf("expected account 7 attached, got %d %+v", rec.Code, seen)
	}
}

func TestRequireStorageFailure(t *testing.T) {
	stub := &stubAuthenticator{err: errors.New("connection refused")}
	auth := NewBasicAuth(stub, "", logger.Discard())

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", account.BasicAuthHeader("alice", "pw"))
	rec := httptest.NewRecorder()
	auth.Require(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Authentication service error") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if rec.Header().Get("WWW-Authenticate") != "" {
		t.Fatalf("service errors must not challenge the client")
	}
}

func TestGuestAccessMasksOwnershipMismatch(t *testing.T) {
	auth := NewBasicAuth(&stubAuthenticator{}, "Wedding Admin", logger.Discard())

	cases := []struct {
		err    error
		status int
	}{
		{guest.ErrNotOwner, http.StatusUnauthorized},
		{guest.ErrGuestNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := chi.NewRouter()
		r.With(auth.GuestAccess(stubAuthorizer{err: tc.err})).Put("/guest/{publicID}", func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("handler must not run for %v", tc.err)
		})

		req := httptest.NewRequest(http.MethodPut, "/guest/abc", nil)
		req = req.WithContext(WithAccount(req.Context(), account.Account{ID: 1}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		if errors.Is(tc.err, guest.ErrNotOwner) && !strings.Contains(rec.Body.String(), "Invalid credentials") {
			t.Fatalf("expected ownership mismatch to read as invalid credentials, got %s", rec.Body.String())
		}
	}
}

func TestGuestAccessAttachesGuest(t *testing.T) {
	auth := NewBasicAuth(&stubAuthenticator{}, "", logger.Discard())
	owner := int64(1)
	stub := stubAuthorizer{guest: &guest.Guest{ID: 3, PublicID: "abc", OwnerID: &owner}}

	var attached guest.Guest
	r := chi.NewRouter()
	r.With(auth.GuestAccess(stub)).Delete("/guest/{publicID}", func(w http.ResponseWriter, r *http.Request) {
		attached, _ = GuestFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodDelete, "/guest/abc", nil)
	req = req.WithContext(WithAccount(req.Context(), account.Account{ID: 1}))
	r.ServeHTTP(httptest.NewRecorder(), req)

	if attached.ID != 3 {
		t.Fatalf("expected guest 3 in context, got %+v", attached)
	}
}

func TestCORSRejectsUnlistedOrigin(t *testing.T) {
	handler := NewCORS([]string{"https://invite.example"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected allow origin %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestRequestLoggerHidesCredential(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf, Format: "json"})
	handler := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	header := account.BasicAuthHeader("alice", "pw")
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", header)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, strings.TrimPrefix(header, "Basic ")) {
		t.Fatalf("credential leaked into log: %s", out)
	}
	if !strings.Contains(out, `"status":418`) || !strings.Contains(out, `"auth":true`) {
		t.Fatalf("unexpected log line %s", out)
	}
}
