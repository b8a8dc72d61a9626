package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"wedding-rsvp-go/internal/config"
	"wedding-rsvp-go/internal/transport/httpserver/handler"
	"wedding-rsvp-go/internal/transport/httpserver/middleware"
	"wedding-rsvp-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	r.Use(middleware.NewCORS(cfg.CORSOrigins))

	auth := middleware.NewBasicAuth(handlers.Accounts, cfg.Auth.Realm, log)
	guestAccess := auth.GuestAccess(handlers.Guests)
	guestPath := "/guest/{" + middleware.PublicIDParam + "}"

	r.Get("/health", handlers.Health)

	r.Get("/guests/public", handlers.ListPublicGuests)
	r.Get(guestPath, handlers.GetGuest)
	r.Post("/guest_accept/{"+middleware.PublicIDParam+"}", handlers.AcceptInvitation)
	r.Post("/guest_reject/{"+middleware.PublicIDParam+"}", handlers.RejectInvitation)

	r.With(auth.Optional).Get("/guests", handlers.ListGuests)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require)

		r.Get("/user", handlers.GetAccount)
		r.Put("/user/couple", handlers.UpdateCouple)
		r.Put("/user/wedding", handlers.UpdateEvent)

		r.Post("/guest", handlers.CreateGuest)
		r.With(guestAccess).Put(guestPath, handlers.UpdateGuest)
		r.With(guestAccess).Delete(guestPath, handlers.DeleteGuest)
	})

	return r
}
