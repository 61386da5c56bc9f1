package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/api"
	"github.com/vetclinic/clinic-client/internal/api/metrics"
	"github.com/vetclinic/clinic-client/internal/core/ports"
	"github.com/vetclinic/clinic-client/internal/infrastructure/gateway"
	filestore "github.com/vetclinic/clinic-client/internal/infrastructure/store/file"
	redisstore "github.com/vetclinic/clinic-client/internal/infrastructure/store/redis"
	"github.com/vetclinic/clinic-client/internal/pkg/config"
	"github.com/vetclinic/clinic-client/internal/session"
	"github.com/vetclinic/clinic-client/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	records, err := newRecordStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("session record store unavailable")
	}

	sessions := session.NewStore(records, log)
	sessions.Init()
	if sessions.Current() != nil {
		metrics.SessionRestoresTotal.Inc()
	}

	gw := gateway.NewHTTPGateway(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
		log,
	)

	e := api.NewRouter(gw, sessions, log)

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("backend", cfg.Backend.BaseURL).Msg("clinic client listening")
		if err := e.Start(cfg.Addr); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// newRecordStore selects the persistence backend for the session record:
// the local file by default, Redis for kiosk deployments.
func newRecordStore(cfg *config.Config, log zerolog.Logger) (ports.SessionRecordStore, error) {
	switch cfg.Session.Store {
	case "redis":
		client, err := redisstore.Connect(context.Background(), redisstore.Config{
			Addr: cfg.Session.Redis.Addr,
			DB:   cfg.Session.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return redisstore.NewRecordStore(client, cfg.Session.Redis.Key), nil
	default:
		if cfg.Session.Store != "file" {
			log.Warn().Str("store", cfg.Session.Store).Msg("unknown session store, falling back to file")
		}
		return filestore.NewRecordStore(cfg.Session.FilePath), nil
	}
}
