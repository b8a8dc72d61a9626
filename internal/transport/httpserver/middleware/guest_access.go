package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wedding-rsvp-go/internal/domain/guest"
	"wedding-rsvp-go/internal/transport/httpserver/envelope"
)

const PublicIDParam = "publicID"

type GuestAuthorizer interface {
	Authorize(ctx context.Context, accountID int64, publicID string) (*guest.Guest, error)
}

// GuestAccess lets the request through only when the authenticated account
// owns the guest named in the path. A guest owned by someone else is
// reported exactly like a bad credential.
func (a *BasicAuth) GuestAccess(guests GuestAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acc, ok := AccountFromContext(r.Context())
			if !ok {
				a.unauthorized(w, msgAuthRequired)
				return
			}

			publicID := chi.URLParam(r, PublicIDParam)
			g, err := guests.Authorize(r.Context(), acc.ID, publicID)
			if err != nil {
				switch {
				case errors.Is(err, guest.ErrGuestNotFound):
					a.log.BusinessError("auth.guest_access: guest not found", err, "account_id", acc.ID, "public_id", publicID)
					envelope.NotFound(w, "Guest not found")
				case errors.Is(err, guest.ErrNotOwner):
					a.log.BusinessError("auth.guest_access: ownership mismatch", err, "account_id", acc.ID, "public_id", publicID)
					a.unauthorized(w, msgInvalidCredentials)
				default:
					a.log.InternalError("auth.guest_access: lookup failed", err, "account_id", acc.ID, "public_id", publicID)
					envelope.Error(w, http.StatusInternalServerError, "Failed to check guest access")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithGuest(r.Context(), *g)))
		})
	}
}

func WithGuest(ctx context.Context, g guest.Guest) context.Context {
	return context.WithValue(ctx, guestKey, g)
}

func GuestFromContext(ctx context.Context) (guest.Guest, bool) {
	g, ok := ctx.Value(guestKey).(guest.Guest)
	return g, ok
}
