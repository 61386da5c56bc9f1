package main

import (
	"os"

	"github.com/vetclinic/clinic-client/internal/devserver"
	"github.com/vetclinic/clinic-client/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{Level: "debug", Pretty: true})

	srv := devserver.New(log)
	if err := srv.SeedAdmin("00000000A", "Admin123!"); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	addr := os.Getenv("DEVSERVER_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	e := srv.Router()
	log.Info().Str("addr", addr).Msg("devserver listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("devserver stopped")
	}
}
