package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"wedding-rsvp-go/internal/domain/account"
	"wedding-rsvp-go/internal/transport/httpserver/envelope"
	"wedding-rsvp-go/pkg/logger"
)

const (
	msgAuthRequired       = "Authentication required"
	msgInvalidCredentials = "Invalid credentials"
	msgAuthServiceError   = "Authentication service error"
)

type contextKey int

const (
	accountKey contextKey = iota
	guestKey
)

type Authenticator interface {
	Authenticate(ctx context.Context, credential string) (*account.Account, error)
}

// BasicAuth resolves the owning account from a Basic Authorization header.
// Every request authenticates on its own; nothing is cached between requests.
type BasicAuth struct {
	accounts Authenticator
	realm    string
	log      logger.Logger
}

func NewBasicAuth(accounts Authenticator, realm string, log logger.Logger) *BasicAuth {
	if realm == "" {
		realm = "Wedding Admin"
	}
	return &BasicAuth{accounts: accounts, realm: realm, log: log}
}

// Require rejects requests that do not carry valid owner credentials.
func (a *BasicAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acc, ok := a.authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), *acc)))
	})
}

// Optional lets anonymous requests through untouched. A request that does
// send an Authorization header must still authenticate.
func (a *BasicAuth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		acc, ok := a.authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), *acc)))
	})
}

func (a *BasicAuth) authenticate(w http.ResponseWriter, r *http.Request) (*account.Account, bool) {
	credential, err := account.ParseBasicAuth(r.Header.Get("Authorization"))
	if err != nil {
		a.log.BusinessError("auth.basic: missing credentials", err, "path", r.URL.Path)
		a.unauthorized(w, msgAuthRequired)
		return nil, false
	}

	acc, err := a.accounts.Authenticate(r.Context(), credential)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			a.log.BusinessError("auth.basic: invalid credentials", err, "path", r.URL.Path)
			a.unauthorized(w, msgInvalidCredentials)
			return nil, false
		}
		a.log.InternalError("auth.basic: account lookup failed", err, "path", r.URL.Path)
		envelope.Error(w, http.StatusInternalServerError, msgAuthServiceError)
		return nil, false
	}
	return acc, true
}

func (a *BasicAuth) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Basic realm="+strconv.Quote(a.realm))
	envelope.Error(w, http.StatusUnauthorized, message)
}

func WithAccount(ctx context.Context, acc account.Account) context.Context {
	return context.WithValue(ctx, accountKey, acc)
}

func AccountFromContext(ctx context.Context) (account.Account, bool) {
	acc, ok := ctx.Value(accountKey).(account.Account)
	if !ok || acc.ID == 0 {
		return account.Account{}, false
	}
	return acc, true
}
