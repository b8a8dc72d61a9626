package main

import (
	"context"
	"flag"
	"os"

	"wedding-rsvp-go/internal/app"
	accountdomain "wedding-rsvp-go/internal/domain/account"
	"wedding-rsvp-go/pkg/logger"
)

func main() {
	var input accountdomain.ProvisionInput
	flag.StringVar(&input.Phone, "phone", "", "owner phone number (unique)")
	flag.StringVar(&input.Username, "username", "", "owner username (unique)")
	flag.StringVar(&input.Password, "password", os.Getenv("SEED_PASSWORD"), "owner password, defaults to $SEED_PASSWORD")
	flag.StringVar(&input.Couple.HusbandsName, "husbands-name", "", "husband's display name")
	flag.StringVar(&input.Couple.WifesName, "wifes-name", "", "wife's display name")
	flag.StringVar(&input.Event.Date, "date", "", "wedding date")
	flag.StringVar(&input.Event.Time, "time", "", "wedding time")
	flag.StringVar(&input.Event.Address, "address", "", "wedding address")
	flag.Parse()

	log := logger.NewFromEnv()

	created, err := app.Provision(context.Background(), log, input)
	if err != nil {
		log.Critical("seed: provision failed", "username", input.Username, "err", err)
		os.Exit(1)
	}
	log.Info("seed: done", "account_id", created.ID)
}
