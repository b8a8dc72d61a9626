package handler

import (
	accountdomain "wedding-rsvp-go/internal/domain/account"
	guestdomain "wedding-rsvp-go/internal/domain/guest"
	"wedding-rsvp-go/pkg/logger"
)

type Handlers struct {
	Accounts *accountdomain.Service
	Guests   *guestdomain.Service
	log      logger.Logger
}

func New(accounts *accountdomain.Service, guests *guestdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Accounts: accounts,
		Guests:   guests,
		log:      log,
	}
}
